package engine

import "math/rand"

// Bag is the 7-bag randomizer. Each cycle hands out all seven identities
// once in shuffled order; an empty bag is refilled from the same random
// source, so a seed fixes the whole piece sequence.
type Bag struct {
	rng     *rand.Rand
	pending []Piece
}

// NewBag creates a bag drawing from rng.
func NewBag(rng *rand.Rand) *Bag {
	return &Bag{rng: rng}
}

// refill loads all seven identities and shuffles them.
func (b *Bag) refill() {
	b.pending = AllPieces()
	b.rng.Shuffle(len(b.pending), func(i, j int) {
		b.pending[i], b.pending[j] = b.pending[j], b.pending[i]
	})
}

// Draw removes and returns the next identity.
func (b *Bag) Draw() Piece {
	if len(b.pending) == 0 {
		b.refill()
	}
	p := b.pending[0]
	b.pending = b.pending[1:]
	return p
}

// Peek returns the identity the next Draw will return without consuming it.
func (b *Bag) Peek() Piece {
	if len(b.pending) == 0 {
		b.refill()
	}
	return b.pending[0]
}

// Remaining returns the undrawn identities of the current cycle.
func (b *Bag) Remaining() []Piece {
	out := make([]Piece, len(b.pending))
	copy(out, b.pending)
	return out
}
