// Package engine implements the falling-block game state: the shape table,
// the board, the 7-bag randomizer and the active-piece state machine.
// It has no platform dependencies; the game adapter drives it with
// gravity ticks and player actions and reads it back through Snapshot.
package engine

// Piece identifies one of the seven tetromino types.
// The zero value PieceNone marks an empty board cell or an empty hold slot.
type Piece int8

const (
	PieceNone Piece = iota
	PieceI
	PieceJ
	PieceL
	PieceO
	PieceS
	PieceZ
	PieceT
)

// pieceCount is the number of real piece identities.
const pieceCount = 7

// AllPieces returns the seven piece identities in their canonical order.
func AllPieces() []Piece {
	return []Piece{PieceI, PieceJ, PieceL, PieceO, PieceS, PieceZ, PieceT}
}

// Valid reports whether p is one of the seven identities.
func (p Piece) Valid() bool {
	return p >= PieceI && p <= PieceT
}

// String returns the single-letter name of the piece.
func (p Piece) String() string {
	switch p {
	case PieceI:
		return "I"
	case PieceJ:
		return "J"
	case PieceL:
		return "L"
	case PieceO:
		return "O"
	case PieceS:
		return "S"
	case PieceZ:
		return "Z"
	case PieceT:
		return "T"
	default:
		return "-"
	}
}

// Rotation is one of the four cardinal orientations.
type Rotation int8

const (
	RotationUp Rotation = iota
	RotationRight
	RotationDown
	RotationLeft
)

const rotationCount = 4

// DefaultRotation is the orientation given to every spawned or swapped-in piece.
// It is the 180° state, not the conventional spawn orientation.
const DefaultRotation = RotationDown

// CW returns the next orientation clockwise.
func (r Rotation) CW() Rotation {
	return Rotation((int(r) + 1) % rotationCount)
}

// CCW returns the next orientation counter-clockwise.
func (r Rotation) CCW() Rotation {
	return Rotation((int(r) + rotationCount - 1) % rotationCount)
}

func (r Rotation) String() string {
	switch r {
	case RotationUp:
		return "up"
	case RotationRight:
		return "right"
	case RotationDown:
		return "down"
	case RotationLeft:
		return "left"
	default:
		return "unknown"
	}
}

// Position is a board coordinate. Row grows downward; negative rows are
// above the visible board.
type Position struct {
	Col, Row int
}

// SpawnAnchor is where every new active piece starts. Row -3 keeps the
// tallest piece fully above the visible board.
var SpawnAnchor = Position{Col: 3, Row: -3}

// ActivePiece is the falling piece: identity, orientation and anchor.
type ActivePiece struct {
	Piece    Piece
	Rotation Rotation
	Anchor   Position
}

// Spawned returns a piece of the given identity at the spawn anchor in the
// default orientation.
func Spawned(p Piece) ActivePiece {
	return ActivePiece{
		Piece:    p,
		Rotation: DefaultRotation,
		Anchor:   SpawnAnchor,
	}
}

// Shape returns the occupancy pattern for the piece's current orientation.
func (a ActivePiece) Shape() Shape {
	return ShapeOf(a.Piece, a.Rotation)
}

// Cells returns the absolute board coordinates of every occupied cell,
// in row-major order of the shape pattern.
func (a ActivePiece) Cells() []Position {
	offsets := a.Shape().Offsets()
	cells := make([]Position, len(offsets))
	for i, off := range offsets {
		cells[i] = Position{Col: a.Anchor.Col + off.Col, Row: a.Anchor.Row + off.Row}
	}
	return cells
}

// Shifted returns a copy moved by the given column and row deltas.
func (a ActivePiece) Shifted(dCol, dRow int) ActivePiece {
	a.Anchor.Col += dCol
	a.Anchor.Row += dRow
	return a
}
