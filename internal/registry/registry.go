// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Game is the core interface that all games must implement.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "tetris").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display (e.g., "Blockfall").
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start and again when restarting after game over.
	// The RuntimeConfig provides screen dimensions and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	// Input is abstracted to platform-level actions (HardDrop, Pause, etc.).
	// Returns the result of this tick including current game state.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current game state (score, game over, paused).
	State() core.GameState
}

// Resizer is implemented by games that can adapt to a new window size
// without restarting. Games without it are Reset on resize.
type Resizer interface {
	Resize(width, height int)
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

// Catalog is a set of game factories keyed by game ID. It is safe for
// concurrent use; SSH sessions create games from it in parallel.
type Catalog struct {
	mu      sync.RWMutex
	entries map[string]entry
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{entries: make(map[string]entry)}
}

// Register adds a game factory. The title is read from one throwaway
// instance. Panics on an empty or duplicate ID.
func (c *Catalog) Register(id string, f Factory) {
	if id == "" {
		panic("registry: empty game id")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	c.entries[id] = entry{
		info:    GameInfo{ID: id, Title: f().Title()},
		factory: f,
	}
}

// List returns all registered games sorted by ID.
func (c *Catalog) List() []GameInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make([]GameInfo, 0, len(c.entries))
	for _, e := range c.entries {
		result = append(result, e.info)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Info returns the metadata of a registered game without creating it.
func (c *Catalog) Info(id string) (GameInfo, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[id]
	return e.info, ok
}

// Create instantiates a new game by its ID.
func (c *Catalog) Create(id string) (Game, error) {
	c.mu.RLock()
	e, ok := c.entries[id]
	c.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func (c *Catalog) Exists(id string) bool {
	_, ok := c.Info(id)
	return ok
}

// games is the process-wide catalog that game packages register into.
var games = NewCatalog()

// Register adds a game to the default catalog.
// Typically called from a game's init() function.
func Register(id string, f Factory) { games.Register(id, f) }

// List returns the games of the default catalog, sorted by ID.
func List() []GameInfo { return games.List() }

// Info looks up a game in the default catalog.
func Info(id string) (GameInfo, bool) { return games.Info(id) }

// Create instantiates a game from the default catalog.
func Create(id string) (Game, error) { return games.Create(id) }

// Exists checks the default catalog for id.
func Exists(id string) bool { return games.Exists(id) }
