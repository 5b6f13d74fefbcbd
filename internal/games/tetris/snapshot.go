package tetris

import "github.com/vovakirdan/blockfall/internal/games/tetris/engine"

// Snapshot contains the adapter state plus the engine state for replay
// comparison and determinism testing.
type Snapshot struct {
	Tick      uint64
	Countdown int
	Paused    bool
	Engine    engine.Snapshot
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.tickCount,
		Countdown: g.countdown,
		Paused:    g.paused,
		Engine:    g.eng.Snapshot(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	e := &snap.Engine

	h := snap.Tick
	h = h*31 + uint64(snap.Countdown) //#nosec G115 -- hash computation
	h = h*31 + boolBit(snap.Paused)
	h = h*31 + e.Score
	h = h*31 + uint64(e.Lines)  //#nosec G115 -- hash computation
	h = h*31 + uint64(e.Pieces) //#nosec G115 -- hash computation
	h = h*31 + uint64(e.Active.Piece)
	h = h*31 + uint64(e.Active.Rotation)
	h = h*31 + uint64(e.Active.Anchor.Col) //#nosec G115 -- hash computation
	h = h*31 + uint64(e.Active.Anchor.Row) //#nosec G115 -- hash computation
	h = h*31 + uint64(e.Held)
	h = h*31 + boolBit(e.CanHold)
	h = h*31 + uint64(e.Next)
	h = h*31 + boolBit(e.GameOver)

	for row := range e.Board {
		for _, p := range e.Board[row] {
			h = h*31 + uint64(p)
		}
	}

	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
