package core

import "time"

// DefaultTickRate is the simulation rate used when none is configured.
const DefaultTickRate = 60

// RuntimeConfig is what the front end hands a game on Reset: the space it
// may draw in, how often Step is called and the seed for its randomness.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Step calls per second
	Seed     int64 // 0 means the front end picks one from the clock
}

// DefaultConfig returns an 80x24 config at the default tick rate.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: DefaultTickRate,
	}
}

// Normalized returns c with a usable tick rate and no negative sizes.
func (c RuntimeConfig) Normalized() RuntimeConfig {
	if c.TickRate <= 0 {
		c.TickRate = DefaultTickRate
	}
	c.ScreenW = max(c.ScreenW, 0)
	c.ScreenH = max(c.ScreenH, 0)
	return c
}

// TickInterval is the wall-clock time between two Step calls.
func (c RuntimeConfig) TickInterval() time.Duration {
	return time.Second / time.Duration(c.Normalized().TickRate)
}

// GameState is the summary a game reports to the front end after each tick.
type GameState struct {
	Score    int
	Lines    int // Rows cleared so far
	Pieces   int // Pieces locked so far
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State  GameState
	Locked bool // A piece was committed to the board this tick
	Clears int  // Rows removed this tick
}
