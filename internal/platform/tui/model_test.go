package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/storage"
)

// scriptedGame is a registry.Game whose state is set by the test.
type scriptedGame struct {
	state   core.GameState
	resets  int
	resized int
	inputs  []core.InputFrame
}

func (g *scriptedGame) ID() string { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }
func (g *scriptedGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *scriptedGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "scripted") }
func (g *scriptedGame) State() core.GameState { return g.state }
func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in.Clone())
	return core.StepResult{State: g.state}
}

type resizableGame struct {
	scriptedGame
}

func (g *resizableGame) Resize(int, int) { g.resized++ }

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("unexpected model type %T", next)
	}
	return model
}

func TestModelSavesScoreOnceOnGameOver(t *testing.T) {
	store := openStore(t)
	game := &scriptedGame{}
	m := NewModel(game, store, core.DefaultConfig(), "alice")

	m = update(t, m, TickMsg{})
	game.state = core.GameState{Score: 900, Lines: 6, Pieces: 31, GameOver: true}
	for i := 0; i < 5; i++ {
		m = update(t, m, TickMsg{})
	}

	scores, err := store.TopScores("scripted", 10)
	if err != nil {
		t.Fatalf("top scores: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("expected one saved score, got %d", len(scores))
	}
	got := scores[0]
	if got.Player != "alice" || got.Score != 900 || got.Lines != 6 || got.Pieces != 31 {
		t.Errorf("unexpected entry %+v", got)
	}
	if m.SaveErr() != nil {
		t.Errorf("unexpected save error: %v", m.SaveErr())
	}
}

func TestModelSavesAgainAfterRestart(t *testing.T) {
	store := openStore(t)
	game := &scriptedGame{}
	m := NewModel(game, store, core.DefaultConfig(), "bob")

	game.state = core.GameState{Score: 100, GameOver: true}
	m = update(t, m, TickMsg{})
	game.state = core.GameState{}
	m = update(t, m, TickMsg{})
	game.state = core.GameState{Score: 300, GameOver: true}
	update(t, m, TickMsg{})

	scores, err := store.TopScores("scripted", 10)
	if err != nil {
		t.Fatalf("top scores: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("expected two saved scores, got %d", len(scores))
	}
}

func TestModelSkipsZeroScore(t *testing.T) {
	store := openStore(t)
	game := &scriptedGame{state: core.GameState{GameOver: true}}
	m := NewModel(game, store, core.DefaultConfig(), "carol")
	update(t, m, TickMsg{})

	best, err := store.HighScore("scripted")
	if err != nil {
		t.Fatalf("high score: %v", err)
	}
	if best != 0 {
		t.Errorf("expected no score, got %d", best)
	}
}

func TestModelForwardsKeysToNextTick(t *testing.T) {
	game := &scriptedGame{}
	m := NewModel(game, nil, core.DefaultConfig(), "")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = update(t, m, TickMsg{})
	update(t, m, TickMsg{})

	if len(game.inputs) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(game.inputs))
	}
	first := game.inputs[0]
	if !first.Has(core.ActionMoveLeft) || !first.Has(core.ActionHardDrop) {
		t.Error("first tick should carry both actions")
	}
	if game.inputs[1].Has(core.ActionMoveLeft) {
		t.Error("input must be cleared after a tick")
	}
}

func TestModelQuitKey(t *testing.T) {
	m := NewModel(&scriptedGame{}, nil, core.DefaultConfig(), "")
	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if !next.(Model).IsQuitting() {
		t.Error("model should be quitting")
	}
	if next.(Model).View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelBackOnlyWhenPausedOrOver(t *testing.T) {
	game := &scriptedGame{}
	m := NewModel(game, nil, core.DefaultConfig(), "")

	m = update(t, m, TickMsg{})
	m = update(t, m, runeKey('b'))
	if m.BackToMenu() {
		t.Fatal("back must be ignored during play")
	}

	game.state.Paused = true
	m = update(t, m, TickMsg{})
	m = update(t, m, runeKey('b'))
	if !m.BackToMenu() {
		t.Error("back should work while paused")
	}
}

func TestModelStandaloneBackQuits(t *testing.T) {
	game := &scriptedGame{state: core.GameState{GameOver: true}}
	m := NewModel(game, nil, core.DefaultConfig(), "")
	m.standalone = true

	m = update(t, m, TickMsg{})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	if cmd == nil {
		t.Error("standalone back should quit the program")
	}
}

func TestModelResize(t *testing.T) {
	plain := &scriptedGame{}
	m := NewModel(plain, nil, core.DefaultConfig(), "")
	update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if plain.resets != 1 {
		t.Errorf("game without Resize should be reset, got %d resets", plain.resets)
	}

	resizable := &resizableGame{}
	m = NewModel(resizable, nil, core.DefaultConfig(), "")
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if resizable.resized != 1 || resizable.resets != 0 {
		t.Errorf("resizable game: resized=%d resets=%d", resizable.resized, resizable.resets)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 40 {
		t.Errorf("screen not resized: %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestModelView(t *testing.T) {
	m := NewModel(&scriptedGame{}, nil, core.DefaultConfig(), "")
	if got := m.View(); got == "" {
		t.Error("expected rendered view")
	}
}
