package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/tetris"
)

func TestMenuShowsBestScore(t *testing.T) {
	store := openStore(t)
	seedScores(t, store)

	m := NewMenuModel(store, core.DefaultConfig())
	var item *MenuItem
	for i := range m.items {
		if m.items[i].GameID == tetris.GameID {
			item = &m.items[i]
		}
	}
	if item == nil {
		t.Fatal("tetris missing from menu")
	}
	if item.Best != 1200 {
		t.Errorf("Best = %d, want 1200", item.Best)
	}
	if !strings.Contains(m.View(), "best 1200") {
		t.Error("menu should show the best score")
	}
}

func TestMenuResults(t *testing.T) {
	cfg := core.DefaultConfig()

	tests := []struct {
		name  string
		msg   tea.KeyMsg
		check func(MenuResult) bool
	}{
		{"select", tea.KeyMsg{Type: tea.KeyEnter}, func(r MenuResult) bool { return r.GameID == tetris.GameID }},
		{"scoreboard", tea.KeyMsg{Type: tea.KeyTab}, func(r MenuResult) bool { return r.WantsScoreboard }},
		{"quit", runeKey('q'), func(r MenuResult) bool { return r.Quit }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			next, cmd := NewMenuModel(nil, cfg).Update(tc.msg)
			if cmd == nil {
				t.Error("expected the menu to finish")
			}
			if r := resultFrom(next.(MenuModel)); !tc.check(r) {
				t.Errorf("unexpected result %+v", r)
			}
		})
	}
}

func TestMenuTracksWindowSize(t *testing.T) {
	next, _ := NewMenuModel(nil, core.DefaultConfig()).Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	cfg := next.(MenuModel).Config()
	if cfg.ScreenW != 120 || cfg.ScreenH != 40 {
		t.Errorf("config size = %dx%d", cfg.ScreenW, cfg.ScreenH)
	}
}
