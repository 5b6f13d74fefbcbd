package engine

import "math/rand"

// Direction is a horizontal move direction.
type Direction int

const (
	Left Direction = iota
	Right
)

// Spin is a rotation direction.
type Spin int

const (
	Clockwise Spin = iota
	CounterClockwise
)

// Action is an abstract player action. Mapping raw keys to actions is the
// platform's job.
type Action int

const (
	ActionNone Action = iota
	ActionMoveLeft
	ActionMoveRight
	ActionRotateCW
	ActionRotateCCW
	ActionSoftDrop
	ActionHardDrop
	ActionHold
)

func (a Action) String() string {
	switch a {
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionRotateCW:
		return "RotateCW"
	case ActionRotateCCW:
		return "RotateCCW"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionHardDrop:
		return "HardDrop"
	case ActionHold:
		return "Hold"
	default:
		return "None"
	}
}

// lineScores maps lines cleared by one lock to points awarded.
var lineScores = [...]uint64{0, 100, 300, 500, 800}

// LineScore returns the points for clearing n rows with a single lock.
func LineScore(n int) uint64 {
	if n < 0 || n >= len(lineScores) {
		return 0
	}
	return lineScores[n]
}

// Engine owns the complete game state. All transitions run to completion
// synchronously; once GameOver is set every mutating call is a no-op.
type Engine struct {
	board    Board
	active   ActivePiece
	bag      *Bag
	held     Piece
	canHold  bool
	score    uint64
	lines    int
	pieces   int
	gameOver bool
}

// New creates an engine seeded for a reproducible piece sequence.
func New(seed int64) *Engine {
	return NewWithRand(rand.New(rand.NewSource(seed)))
}

// NewWithRand creates an engine drawing every piece from rng.
func NewWithRand(rng *rand.Rand) *Engine {
	e := &Engine{
		bag:     NewBag(rng),
		canHold: true,
	}
	e.active = Spawned(e.bag.Draw())
	return e
}

// Legal reports whether piece may occupy its anchor on board b.
// Cells above the board never collide; cells beside or below it always do.
func Legal(b *Board, piece ActivePiece) bool {
	for _, c := range piece.Cells() {
		if c.Col < 0 || c.Col >= Cols {
			return false
		}
		if c.Row >= Rows {
			return false
		}
		if c.Row < 0 {
			continue
		}
		if b.cells[c.Row][c.Col] != PieceNone {
			return false
		}
	}
	return true
}

// IsLegal reports whether piece may occupy its anchor on the current board.
func (e *Engine) IsLegal(piece ActivePiece) bool {
	return Legal(&e.board, piece)
}

// try replaces the active piece with candidate when it is legal.
func (e *Engine) try(candidate ActivePiece) bool {
	if !e.IsLegal(candidate) {
		return false
	}
	e.active = candidate
	return true
}

// Move shifts the active piece one column. Returns false when blocked.
func (e *Engine) Move(dir Direction) bool {
	if e.gameOver {
		return false
	}
	dCol := -1
	if dir == Right {
		dCol = 1
	}
	return e.try(e.active.Shifted(dCol, 0))
}

// Rotate turns the active piece one step. There are no wall kicks: a
// rotation that would need an offset to fit simply fails.
func (e *Engine) Rotate(spin Spin) bool {
	if e.gameOver {
		return false
	}
	candidate := e.active
	if spin == Clockwise {
		candidate.Rotation = candidate.Rotation.CW()
	} else {
		candidate.Rotation = candidate.Rotation.CCW()
	}
	return e.try(candidate)
}

// SoftDrop moves the active piece down one row, locking it in place when it
// cannot fall further. Returns true if a lock happened. Gravity uses the
// same transition.
func (e *Engine) SoftDrop() bool {
	if e.gameOver {
		return false
	}
	if e.try(e.active.Shifted(0, 1)) {
		return false
	}
	e.lock()
	return true
}

// HardDrop drops the active piece until it locks. Returns the number of
// rows it fell; ok is false when the game was already over.
func (e *Engine) HardDrop() (rows int, ok bool) {
	for !e.gameOver {
		if e.SoftDrop() {
			return rows, true
		}
		rows++
	}
	return rows, false
}

// Hold swaps the active piece with the held one, or stashes it and draws a
// fresh piece when nothing is held. Allowed once per lock.
func (e *Engine) Hold() bool {
	if e.gameOver || !e.canHold {
		return false
	}
	next := e.held
	if next == PieceNone {
		next = e.bag.Draw()
	}
	e.held = e.active.Piece
	e.active = Spawned(next)
	e.canHold = false
	return true
}

// lock commits the active piece to the board. Cells are visited in
// row-major order; the first cell above the board ends the game, leaving
// any cells already written in place.
func (e *Engine) lock() {
	for _, c := range e.active.Cells() {
		if c.Row < 0 {
			e.gameOver = true
			return
		}
		e.board.Set(c.Row, c.Col, e.active.Piece)
	}

	cleared := e.board.ClearFullRows()
	e.score += LineScore(cleared)
	e.lines += cleared
	e.pieces++
	e.canHold = true
	e.active = Spawned(e.bag.Draw())
}

// Apply performs a player action. Returns true if the action locked a piece.
func (e *Engine) Apply(a Action) bool {
	switch a {
	case ActionMoveLeft:
		e.Move(Left)
	case ActionMoveRight:
		e.Move(Right)
	case ActionRotateCW:
		e.Rotate(Clockwise)
	case ActionRotateCCW:
		e.Rotate(CounterClockwise)
	case ActionSoftDrop:
		return e.SoftDrop()
	case ActionHardDrop:
		_, locked := e.HardDrop()
		return locked
	case ActionHold:
		e.Hold()
	}
	return false
}

// GhostRow returns the anchor row where the active piece would land if hard
// dropped. The engine state is not touched.
func (e *Engine) GhostRow() int {
	ghost := e.active
	for e.IsLegal(ghost.Shifted(0, 1)) {
		ghost.Anchor.Row++
	}
	return ghost.Anchor.Row
}

// Ghost returns the active piece moved to its landing row.
func (e *Engine) Ghost() ActivePiece {
	ghost := e.active
	ghost.Anchor.Row = e.GhostRow()
	return ghost
}

// Board returns a copy of the playfield.
func (e *Engine) Board() Board {
	return e.board
}

// Active returns the falling piece.
func (e *Engine) Active() ActivePiece {
	return e.active
}

// Held returns the held identity; ok is false when nothing is held.
func (e *Engine) Held() (p Piece, ok bool) {
	return e.held, e.held != PieceNone
}

// CanHold reports whether Hold is currently allowed.
func (e *Engine) CanHold() bool {
	return e.canHold
}

// Next returns the identity the next spawn will receive.
func (e *Engine) Next() Piece {
	return e.bag.Peek()
}

// Score returns the accumulated score.
func (e *Engine) Score() uint64 {
	return e.score
}

// Lines returns the total number of rows cleared.
func (e *Engine) Lines() int {
	return e.lines
}

// Pieces returns the number of pieces locked without topping out.
func (e *Engine) Pieces() int {
	return e.pieces
}

// GameOver reports whether the game has ended.
func (e *Engine) GameOver() bool {
	return e.gameOver
}
