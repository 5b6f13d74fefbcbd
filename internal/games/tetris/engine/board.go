package engine

import "fmt"

// Board geometry. Fixed for every game.
const (
	Rows = 20
	Cols = 10
)

// Board is the playfield. Each cell holds the identity of the piece that
// locked there, or PieceNone when empty. Row 0 is the top row.
type Board struct {
	cells [Rows][Cols]Piece
}

// InBounds reports whether (row, col) is inside the grid.
func InBounds(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

// Get returns the cell at (row, col). ok is false when the coordinate is
// outside the grid.
func (b *Board) Get(row, col int) (p Piece, ok bool) {
	if !InBounds(row, col) {
		return PieceNone, false
	}
	return b.cells[row][col], true
}

// Occupied reports whether (row, col) blocks placement. Cells outside the
// grid count as occupied.
func (b *Board) Occupied(row, col int) bool {
	p, ok := b.Get(row, col)
	return !ok || p != PieceNone
}

// Set writes a cell. Writing outside the grid means the legality check let
// an illegal placement through, so it panics.
func (b *Board) Set(row, col int, p Piece) {
	if !InBounds(row, col) {
		panic(fmt.Sprintf("engine: board write out of range at row %d, col %d", row, col))
	}
	b.cells[row][col] = p
}

// RowFull reports whether every cell in the row is occupied.
func (b *Board) RowFull(row int) bool {
	for col := 0; col < Cols; col++ {
		if b.cells[row][col] == PieceNone {
			return false
		}
	}
	return true
}

// ClearFullRows removes every full row, shifts the remaining rows down
// keeping their order, and refills the top with empty rows.
// Returns the number of rows removed.
func (b *Board) ClearFullRows() int {
	var next [Rows][Cols]Piece
	write := Rows - 1
	cleared := 0

	for row := Rows - 1; row >= 0; row-- {
		if b.RowFull(row) {
			cleared++
			continue
		}
		next[write] = b.cells[row]
		write--
	}

	if cleared > 0 {
		b.cells = next
	}
	return cleared
}

// Cells returns a copy of the grid.
func (b *Board) Cells() [Rows][Cols]Piece {
	return b.cells
}

// FilledCount returns the number of occupied cells.
func (b *Board) FilledCount() int {
	n := 0
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			if b.cells[row][col] != PieceNone {
				n++
			}
		}
	}
	return n
}

// String renders the board as text, one line per row, '.' for empty cells
// and the piece letter otherwise.
func (b *Board) String() string {
	buf := make([]byte, 0, Rows*(Cols+1))
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			if p := b.cells[row][col]; p == PieceNone {
				buf = append(buf, '.')
			} else {
				buf = append(buf, p.String()[0])
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
