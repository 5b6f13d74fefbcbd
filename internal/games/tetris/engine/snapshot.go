package engine

// Snapshot is a read-only copy of everything a renderer or a determinism
// check needs from one frame.
type Snapshot struct {
	Board    [Rows][Cols]Piece
	Active   ActivePiece
	GhostRow int
	Held     Piece // PieceNone when nothing is held
	CanHold  bool
	Next     Piece
	Score    uint64
	Lines    int
	Pieces   int
	GameOver bool
}

// Snapshot captures the current state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Board:    e.board.Cells(),
		Active:   e.active,
		GhostRow: e.GhostRow(),
		Held:     e.held,
		CanHold:  e.canHold,
		Next:     e.bag.Peek(),
		Score:    e.score,
		Lines:    e.lines,
		Pieces:   e.pieces,
		GameOver: e.gameOver,
	}
}
