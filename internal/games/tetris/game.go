// Package tetris adapts the falling-block engine to the registry game contract:
// it turns fixed simulation ticks into gravity, routes player actions to the
// engine and draws the board into a core.Screen.
package tetris

import (
	"math/rand"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/tetris/engine"
	"github.com/vovakirdan/blockfall/internal/registry"
)

// GameID is the registry and score-table identifier.
const GameID = "tetris"

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParseDifficultyPreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// playerOrder is the fixed order in which one tick's actions reach the engine.
var playerOrder = []struct {
	in  core.Action
	out engine.Action
}{
	{core.ActionHold, engine.ActionHold},
	{core.ActionRotateCW, engine.ActionRotateCW},
	{core.ActionRotateCCW, engine.ActionRotateCCW},
	{core.ActionMoveLeft, engine.ActionMoveLeft},
	{core.ActionMoveRight, engine.ActionMoveRight},
	{core.ActionSoftDrop, engine.ActionSoftDrop},
	{core.ActionHardDrop, engine.ActionHardDrop},
}

// Game drives one engine at the platform tick rate.
type Game struct {
	eng *engine.Engine
	rng *rand.Rand // seeds each new engine

	runtime core.RuntimeConfig
	cfg     config.TetrisConfig

	gravityTicks int // ticks between gravity steps
	countdown    int // ticks until the next gravity step
	paused       bool
	tickCount    uint64

	layout         layout
	screenTooSmall bool
}

// New creates a new game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Blockfall"
}

// Reset loads the configuration and starts a fresh game seeded from
// runtime.Seed.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime.Normalized()

	cfg, err := config.LoadTetris(configPath)
	if err != nil {
		cfg = config.DefaultTetrisConfig()
	}
	if difficultyPreset != "" {
		config.ApplyTetrisPreset(&cfg, difficultyPreset)
	}
	g.applyConfig(cfg)

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.newEngine()
}

// applyConfig installs cfg and recomputes everything derived from it.
func (g *Game) applyConfig(cfg config.TetrisConfig) {
	g.cfg = cfg
	g.gravityTicks = cfg.Gravity.Ticks(g.runtime.TickRate)
	g.layout = computeLayout(cfg.Display, g.runtime.ScreenW, g.runtime.ScreenH)
	g.screenTooSmall = g.layout.tooSmall
}

// Resize adapts the layout to a new window size without restarting.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.layout = computeLayout(g.cfg.Display, width, height)
	g.screenTooSmall = g.layout.tooSmall
}

// newEngine replaces the engine with a fresh one drawn from the game's RNG.
func (g *Game) newEngine() {
	g.eng = engine.NewWithRand(rand.New(rand.NewSource(g.rng.Int63())))
	g.countdown = g.gravityTicks
	g.paused = false
	g.tickCount = 0
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle restart
	if in.Has(core.ActionRestart) && g.eng.GameOver() {
		g.newEngine()
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) && !g.eng.GameOver() {
		g.paused = !g.paused
	}

	if g.paused || g.eng.GameOver() {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	linesBefore := g.eng.Lines()

	locked := false
	for _, a := range playerOrder {
		if in.Has(a.in) && g.eng.Apply(a.out) {
			locked = true
		}
	}

	// A lock caused by the player re-arms gravity so the next piece gets a
	// full interval. Moves and rotations leave the countdown alone.
	if locked {
		g.countdown = g.gravityTicks
	} else {
		g.countdown--
		if g.countdown <= 0 {
			g.countdown = g.gravityTicks
			locked = g.eng.SoftDrop()
		}
	}

	return core.StepResult{
		State:  g.State(),
		Locked: locked,
		Clears: g.eng.Lines() - linesBefore,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.eng == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    int(g.eng.Score()), //#nosec G115 -- score stays far below MaxInt
		Lines:    g.eng.Lines(),
		Pieces:   g.eng.Pieces(),
		GameOver: g.eng.GameOver(),
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
