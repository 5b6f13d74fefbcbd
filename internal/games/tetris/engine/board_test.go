package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fillRow fills a board row with p, leaving the listed columns empty.
func fillRow(b *Board, row int, p Piece, holes ...int) {
	skip := make(map[int]bool, len(holes))
	for _, h := range holes {
		skip[h] = true
	}
	for col := 0; col < Cols; col++ {
		if !skip[col] {
			b.Set(row, col, p)
		}
	}
}

func TestBoardGetOutOfRange(t *testing.T) {
	var b Board

	_, ok := b.Get(-1, 0)
	assert.False(t, ok)
	_, ok = b.Get(Rows, 0)
	assert.False(t, ok)
	_, ok = b.Get(0, Cols)
	assert.False(t, ok)

	assert.True(t, b.Occupied(0, -1))
	assert.True(t, b.Occupied(Rows, 3))
	assert.False(t, b.Occupied(0, 0))
}

func TestBoardSetOutOfRangePanics(t *testing.T) {
	var b Board
	require.Panics(t, func() { b.Set(-1, 0, PieceI) })
	require.Panics(t, func() { b.Set(0, Cols, PieceI) })
	require.Panics(t, func() { b.Set(Rows, 0, PieceI) })
}

func TestClearFullRowsNoFullRows(t *testing.T) {
	var b Board
	fillRow(&b, 19, PieceJ, 4)
	fillRow(&b, 18, PieceS, 0, 9)
	b.Set(10, 5, PieceT)
	before := b.Cells()

	assert.Equal(t, 0, b.ClearFullRows())
	assert.Equal(t, before, b.Cells())
	assert.Equal(t, 0, b.ClearFullRows())
	assert.Equal(t, before, b.Cells())
}

func TestClearFullRowsPreservesOrder(t *testing.T) {
	var b Board
	fillRow(&b, 19, PieceI)
	fillRow(&b, 18, PieceJ, 1)
	fillRow(&b, 17, PieceL)
	fillRow(&b, 16, PieceO, 7)
	b.Set(15, 2, PieceT)

	cleared := b.ClearFullRows()
	require.Equal(t, 2, cleared)

	cells := b.Cells()
	assert.Len(t, cells, Rows)

	// Survivors keep their relative order, sinking past the removed rows.
	assert.Equal(t, PieceJ, cells[19][0])
	assert.Equal(t, PieceNone, cells[19][1])
	assert.Equal(t, PieceO, cells[18][0])
	assert.Equal(t, PieceNone, cells[18][7])
	assert.Equal(t, PieceT, cells[17][2])

	for row := 0; row < 17; row++ {
		for col := 0; col < Cols; col++ {
			assert.Equal(t, PieceNone, cells[row][col], "row %d col %d", row, col)
		}
	}
}

func TestClearFullRowsNonContiguous(t *testing.T) {
	var b Board
	fillRow(&b, 19, PieceI)
	fillRow(&b, 18, PieceZ, 3)
	fillRow(&b, 17, PieceL)
	fillRow(&b, 16, PieceO, 6)

	assert.Equal(t, 2, b.ClearFullRows())
	assert.Equal(t, PieceZ, b.cells[19][0])
	assert.Equal(t, PieceO, b.cells[18][0])
	assert.Equal(t, 18, b.FilledCount())
}

func TestClearFullRowsBounded(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		var b Board
		for row := 0; row < Rows; row++ {
			for col := 0; col < Cols; col++ {
				if rng.Intn(10) < 8 {
					b.Set(row, col, PieceT)
				}
			}
		}
		full := 0
		for row := 0; row < Rows; row++ {
			if b.RowFull(row) {
				full++
			}
		}
		assert.Equal(t, full, b.ClearFullRows())
		for row := 0; row < Rows; row++ {
			assert.False(t, b.RowFull(row))
		}
	}
}

func TestBoardString(t *testing.T) {
	var b Board
	b.Set(19, 0, PieceI)
	b.Set(19, 9, PieceZ)
	lines := b.String()
	assert.Contains(t, lines, "I........Z\n")
	assert.Equal(t, Rows*(Cols+1), len(lines))
}
