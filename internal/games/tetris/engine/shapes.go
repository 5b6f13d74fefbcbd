package engine

import "fmt"

// Shape is a square occupancy pattern. Row 0 is the top row.
type Shape struct {
	size  int
	cells [4][4]bool
}

// Size returns the width and height of the pattern (4 for I, 2 for O, 3 otherwise).
func (s Shape) Size() int {
	return s.size
}

// Filled reports whether the pattern cell at (row, col) is occupied.
// Coordinates outside the pattern are empty.
func (s Shape) Filled(row, col int) bool {
	if row < 0 || row >= s.size || col < 0 || col >= s.size {
		return false
	}
	return s.cells[row][col]
}

// Offsets returns the occupied cells relative to the anchor, row-major.
func (s Shape) Offsets() []Position {
	offsets := make([]Position, 0, 4)
	for row := 0; row < s.size; row++ {
		for col := 0; col < s.size; col++ {
			if s.cells[row][col] {
				offsets = append(offsets, Position{Col: col, Row: row})
			}
		}
	}
	return offsets
}

// shapeRows is the reference shape data: one layout per (piece, rotation),
// indexed by Rotation. '#' marks an occupied cell.
var shapeRows = map[Piece][rotationCount][]string{
	PieceI: {
		RotationUp: {
			"....",
			"####",
			"....",
			"....",
		},
		RotationRight: {
			"..#.",
			"..#.",
			"..#.",
			"..#.",
		},
		RotationDown: {
			"....",
			"....",
			"####",
			"....",
		},
		RotationLeft: {
			".#..",
			".#..",
			".#..",
			".#..",
		},
	},
	PieceJ: {
		RotationUp: {
			"#..",
			"###",
			"...",
		},
		RotationRight: {
			".##",
			".#.",
			".#.",
		},
		RotationDown: {
			"...",
			"###",
			"..#",
		},
		RotationLeft: {
			".#.",
			".#.",
			"##.",
		},
	},
	PieceL: {
		RotationUp: {
			"..#",
			"###",
			"...",
		},
		RotationRight: {
			".#.",
			".#.",
			".##",
		},
		RotationDown: {
			"...",
			"###",
			"#..",
		},
		RotationLeft: {
			"##.",
			".#.",
			".#.",
		},
	},
	PieceO: {
		RotationUp:    {"##", "##"},
		RotationRight: {"##", "##"},
		RotationDown:  {"##", "##"},
		RotationLeft:  {"##", "##"},
	},
	PieceS: {
		RotationUp: {
			".##",
			"##.",
			"...",
		},
		RotationRight: {
			".#.",
			".##",
			"..#",
		},
		RotationDown: {
			"...",
			".##",
			"##.",
		},
		RotationLeft: {
			"#..",
			"##.",
			".#.",
		},
	},
	PieceZ: {
		RotationUp: {
			"##.",
			".##",
			"...",
		},
		RotationRight: {
			"..#",
			".##",
			".#.",
		},
		RotationDown: {
			"...",
			"##.",
			".##",
		},
		RotationLeft: {
			".#.",
			"##.",
			"#..",
		},
	},
	PieceT: {
		RotationUp: {
			".#.",
			"###",
			"...",
		},
		RotationRight: {
			".#.",
			".##",
			".#.",
		},
		RotationDown: {
			"...",
			"###",
			".#.",
		},
		RotationLeft: {
			".#.",
			"##.",
			".#.",
		},
	},
}

// shapeTable holds the parsed patterns, indexed by [piece-1][rotation].
var shapeTable [pieceCount][rotationCount]Shape

func init() {
	for piece, layouts := range shapeRows {
		for rot, rows := range layouts {
			shapeTable[piece-1][rot] = parseShape(piece, Rotation(rot), rows)
		}
	}
}

func parseShape(p Piece, r Rotation, rows []string) Shape {
	s := Shape{size: len(rows)}
	if s.size < 2 || s.size > 4 {
		panic(fmt.Sprintf("engine: shape %s/%s has %d rows", p, r, s.size))
	}
	filled := 0
	for row, line := range rows {
		if len(line) != s.size {
			panic(fmt.Sprintf("engine: shape %s/%s row %d is not square", p, r, row))
		}
		for col, ch := range line {
			if ch == '#' {
				s.cells[row][col] = true
				filled++
			}
		}
	}
	if filled != 4 {
		panic(fmt.Sprintf("engine: shape %s/%s has %d cells", p, r, filled))
	}
	return s
}

// ShapeOf returns the pattern for a piece in a given orientation.
// It panics for PieceNone, which has no shape.
func ShapeOf(p Piece, r Rotation) Shape {
	if !p.Valid() {
		panic(fmt.Sprintf("engine: no shape for piece %d", p))
	}
	return shapeTable[p-1][int(r)%rotationCount]
}
