// Package config provides YAML-based game configuration loading and
// difficulty presets for blockfall.
package config

import (
	"fmt"
	"time"
)

// TetrisConfig contains all configuration for the falling-block game.
type TetrisConfig struct {
	Gravity TetrisGravity `yaml:"gravity"`
	Display TetrisDisplay `yaml:"display"`
}

// TetrisGravity defines the automatic fall cadence.
type TetrisGravity struct {
	IntervalMS int `yaml:"interval_ms"` // Milliseconds between gravity steps
}

// TetrisDisplay defines how the board is drawn.
type TetrisDisplay struct {
	Ghost       bool `yaml:"ghost"`        // Draw the landing projection
	NextPreview bool `yaml:"next_preview"` // Show the upcoming piece
	CellWidth   int  `yaml:"cell_width"`   // Terminal columns per board cell (1 or 2)
}

// Interval returns the gravity interval as a duration.
func (g TetrisGravity) Interval() time.Duration {
	return time.Duration(g.IntervalMS) * time.Millisecond
}

// Ticks converts the gravity interval to a whole number of simulation ticks
// at the given tick rate, rounding to nearest. Never returns less than 1.
func (g TetrisGravity) Ticks(tickRate int) int {
	if tickRate <= 0 {
		tickRate = 60
	}
	ticks := (g.IntervalMS*tickRate + 500) / 1000
	if ticks < 1 {
		ticks = 1
	}
	return ticks
}

// Validate checks that all values are usable.
func (c TetrisConfig) Validate() error {
	if c.Gravity.IntervalMS <= 0 {
		return fmt.Errorf("config: gravity.interval_ms must be positive, got %d", c.Gravity.IntervalMS)
	}
	if c.Display.CellWidth != 1 && c.Display.CellWidth != 2 {
		return fmt.Errorf("config: display.cell_width must be 1 or 2, got %d", c.Display.CellWidth)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficultyPreset maps a flag value to a preset.
// An empty string means no preset.
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return "", nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// GravityIntervalForPreset returns the gravity interval in milliseconds for
// a preset, or 0 for an unknown one. Gravity is fixed for the whole game.
func GravityIntervalForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 500
	case DifficultyNormal:
		return 333
	case DifficultyHard:
		return 200
	default:
		return 0
	}
}
