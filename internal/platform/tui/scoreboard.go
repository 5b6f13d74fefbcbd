package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 84  // below this the stats panel moves under the table
	sidebarWidth       = 24  // stats panel width, border included
	tableMinWidth      = 50  // width the default columns need
	maxScores          = 100 // rows loaded per game
)

var boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

var boardDimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

var boardFrameStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240")).
	Padding(0, 1)

var boardActiveStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("229")).
	Background(lipgloss.Color("57")).
	Padding(0, 1)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextGame, k.PrevGame},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		NextGame: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next game"),
		),
		PrevGame: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev game"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows the best finished games per registered game,
// with player, score, lines and date, next to aggregate stats.
type ScoreboardModel struct {
	games      []registry.GameInfo
	gameCursor int
	store      *storage.Store
	scores     []storage.ScoreEntry
	stats      *storage.GameStats
	table      table.Model
	help       help.Model
	keys       ScoreboardKeyMap
	width      int
	height     int
	quitting   bool
	goingBack  bool
}

// NewScoreboardModel creates a scoreboard for every registered game.
// store may be nil; the board is then empty.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.table = m.newTable()

	if len(m.games) > 0 {
		m.load()
	}
	return m
}

func (m ScoreboardModel) wide() bool {
	return m.width >= minWidthForSidebar
}

// newTable builds the score table sized for the current window.
func (m *ScoreboardModel) newTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Player", Width: 12},
		{Title: "Score", Width: 9},
		{Title: "Lines", Width: 6},
		{Title: "Date", Width: 13},
	}

	available := m.width - 4
	if m.wide() {
		available -= sidebarWidth + 2
	}
	// Spare width goes to the player column
	if spare := available - tableMinWidth; spare > 0 {
		columns[1].Width += min(spare, 12)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-9)), // title, help and frame
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads scores and stats for the selected game. Storage errors leave
// the board empty.
func (m *ScoreboardModel) load() {
	m.scores = nil
	m.stats = nil

	gameID := m.games[m.gameCursor].ID
	if m.store != nil {
		if scores, err := m.store.TopScores(gameID, maxScores); err == nil {
			m.scores = scores
		}
		if stats, err := m.store.GetGameStats(gameID); err == nil && stats.GamesCount > 0 {
			m.stats = stats
		}
	}
	m.fillRows()
}

// fillRows copies the loaded scores into the table.
func (m *ScoreboardModel) fillRows() {
	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			s.Player,
			fmt.Sprintf("%d", s.Score),
			fmt.Sprintf("%d", s.Lines),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// switchGame moves the game cursor by delta, wrapping around.
func (m *ScoreboardModel) switchGame(delta int) {
	if len(m.games) < 2 {
		return
	}
	m.gameCursor = (m.gameCursor + delta + len(m.games)) % len(m.games)
	m.load()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextGame):
			m.switchGame(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevGame):
			m.switchGame(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.fillRows()
		return m, nil
	}

	// Scrolling is handled by the table
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := "HIGH SCORES"
	if len(m.games) > 0 {
		title += " - " + m.games[m.gameCursor].Title
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(boardTitleStyle.Render(title), m.width))
	b.WriteString("\n")
	if tabs := m.renderTabs(); tabs != "" {
		b.WriteString(centerText(tabs, m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	scores := boardFrameStyle.Render(m.renderScores())
	if m.wide() {
		panel := boardFrameStyle.Width(sidebarWidth - 2).Render(m.renderStats())
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, scores, "  ", panel))
	} else {
		b.WriteString(scores)
		if m.stats != nil {
			b.WriteString("\n")
			b.WriteString(boardDimStyle.Render(m.statsLine()))
		}
	}

	b.WriteString("\n")
	b.WriteString(boardDimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// renderTabs lists the games when there is more than one to choose from.
func (m ScoreboardModel) renderTabs() string {
	if len(m.games) < 2 {
		return ""
	}

	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.gameCursor {
			tabs[i] = boardActiveStyle.Render(g.Title)
		} else {
			tabs[i] = boardDimStyle.Render(" " + g.Title + " ")
		}
	}
	line := strings.Join(tabs, " ")
	if lipgloss.Width(line) > m.width-4 {
		line = fmt.Sprintf("< %s >", m.games[m.gameCursor].Title)
	}
	return line
}

// renderScores renders the table or an empty message.
func (m ScoreboardModel) renderScores() string {
	if len(m.scores) == 0 {
		return boardDimStyle.Italic(true).Padding(2, 4).
			Render("No scores recorded yet.\nClear some lines to set a high score!")
	}
	return m.table.View()
}

// renderStats renders the aggregate panel for the wide layout.
func (m ScoreboardModel) renderStats() string {
	if m.stats == nil {
		return boardDimStyle.Render("No games played")
	}

	s := m.stats
	lines := []string{
		boardTitleStyle.Render("Stats"),
		"",
		fmt.Sprintf("Games       %d", s.GamesCount),
		fmt.Sprintf("Best        %d", s.HighScore),
		fmt.Sprintf("Average     %.0f", s.AvgScore),
		fmt.Sprintf("Best lines  %d", s.BestLines),
		fmt.Sprintf("All lines   %d", s.TotalLines),
	}
	if !s.LastPlayed.IsZero() {
		lines = append(lines, "", boardDimStyle.Render("Last "+s.LastPlayed.Format("Jan 02 15:04")))
	}
	return strings.Join(lines, "\n")
}

// statsLine is the one-line stats summary for the narrow layout.
func (m ScoreboardModel) statsLine() string {
	s := m.stats
	return fmt.Sprintf("%d games  |  avg %.0f  |  best lines %d  |  total lines %d",
		s.GamesCount, s.AvgScore, s.BestLines, s.TotalLines)
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewScoreboardModel(store, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("tui: scoreboard: %w", err)
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
