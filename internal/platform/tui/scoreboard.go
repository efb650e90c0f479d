package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/box-arcade/internal/registry"
	"github.com/vovakirdan/box-arcade/internal/storage"
)

const (
	minWidthForSidebar = 80  // narrower terminals get tabs instead
	scoresSidebarWidth = 20
	maxScores          = 100
	allBoards          = "all boards"
)

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).MarginBottom(1)
	boardFrameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardPickStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardTabStyle   = boardPickStyle.Background(lipgloss.Color("57")).Padding(0, 1)
	boardEmptyStyle = boardDimStyle.Italic(true).Padding(2, 4)
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Board    key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.Board, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextGame, k.PrevGame},
		{k.Board, k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "scroll up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "scroll down")),
		NextGame: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next game")),
		PrevGame: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev game")),
		Board:    key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "board")),
		Back:     key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel lists the best scores of one game at a time, optionally
// narrowed to one board.
type ScoreboardModel struct {
	games  []registry.GameInfo
	game   int
	board  int // 0 is every board, i > 0 is Variants[i-1]
	store  *storage.Store
	scores []storage.ScoreEntry
	stats  storage.GameStats
	table  table.Model
	help   help.Model
	keys   ScoreboardKeyMap
	width  int
	height int

	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard showing the first registered game.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.newTable()
	m.reload()
	return m
}

func (m ScoreboardModel) sidebar() bool {
	return m.width >= minWidthForSidebar
}

func (m *ScoreboardModel) newTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Board", Width: 8},
		{Title: "Date", Width: 18},
	}

	avail := m.width - 4
	if m.sidebar() {
		avail -= scoresSidebarWidth + 3
	}
	if avail > 48 {
		columns[1].Width = 12
		columns[3].Width = min(avail-30, 20)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)), // title, stats line, help
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

// Game returns the game being shown.
func (m ScoreboardModel) Game() (registry.GameInfo, bool) {
	if len(m.games) == 0 {
		return registry.GameInfo{}, false
	}
	return m.games[m.game], true
}

// Board returns the board filter, "" for every board.
func (m ScoreboardModel) Board() string {
	g, ok := m.Game()
	if !ok || m.board == 0 || m.board > len(g.Variants) {
		return ""
	}
	return g.Variants[m.board-1].ID
}

// Scores returns the rows currently loaded.
func (m ScoreboardModel) Scores() []storage.ScoreEntry {
	return m.scores
}

// reload fetches the scores and stats of the current game and board.
func (m *ScoreboardModel) reload() {
	m.scores = nil
	g, ok := m.Game()
	if !ok {
		m.fillTable()
		return
	}
	m.stats = storage.GameStats{GameID: g.ID}

	if m.store != nil {
		var (
			scores []storage.ScoreEntry
			err    error
		)
		if board := m.Board(); board != "" {
			scores, err = m.store.VariantScores(g.ID, board, maxScores)
		} else {
			scores, err = m.store.TopScores(g.ID, maxScores)
		}
		if err == nil {
			m.scores = scores
		}
		if stats, err := m.store.Stats(g.ID); err == nil {
			m.stats = stats
		}
	}
	m.fillTable()
}

func (m *ScoreboardModel) fillTable() {
	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Score),
			variantLabel(s.Variant),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// moveGame steps through the games, wrapping at both ends. The board
// filter starts over for the new game.
func (m *ScoreboardModel) moveGame(delta int) {
	n := len(m.games)
	if n == 0 {
		return
	}
	m.game = ((m.game+delta)%n + n) % n
	m.board = 0
	m.reload()
}

// nextBoard cycles every board -> first variant -> ... -> every board.
func (m *ScoreboardModel) nextBoard() {
	g, ok := m.Game()
	if !ok || len(g.Variants) == 0 {
		return
	}
	m.board = (m.board + 1) % (len(g.Variants) + 1)
	m.reload()
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
			m.moveGame(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevGame):
			m.moveGame(-1)
			return m, nil
		case key.Matches(msg, m.keys.Board):
			m.nextBoard()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table = m.newTable()
		m.fillTable()
		m.help.Width = msg.Width
		return m, nil
	}

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
	if g, ok := m.Game(); ok {
		title = fmt.Sprintf("HIGH SCORES - %s", g.Title)
		if len(g.Variants) > 0 {
			board := m.Board()
			if board == "" {
				board = allBoards
			}
			title += fmt.Sprintf(" (%s)", board)
		}
	}

	var b strings.Builder
	b.WriteString(boardTitleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")
	if m.sidebar() {
		b.WriteString(m.wideView())
	} else {
		b.WriteString(m.narrowView())
	}
	b.WriteString("\n")

	if m.stats.GamesCount > 0 {
		b.WriteString(centerText(fmt.Sprintf("%d games  |  best %d  |  average %.1f  |  last %s",
			m.stats.GamesCount, m.stats.HighScore, m.stats.AvgScore,
			m.stats.LastPlayed.Format("Jan 02 15:04")), m.width))
		b.WriteString("\n")
	}
	b.WriteString(boardDimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// wideView puts a game list left of the table.
func (m ScoreboardModel) wideView() string {
	var list strings.Builder
	list.WriteString("Games\n")
	list.WriteString(strings.Repeat("-", scoresSidebarWidth-4))
	list.WriteString("\n")

	for i, g := range m.games {
		name := truncate(g.Title, scoresSidebarWidth-6)
		if i == m.game {
			list.WriteString(boardPickStyle.Render("> " + name))
		} else {
			list.WriteString("  " + name)
		}
		list.WriteString("\n")
	}

	side := boardFrameStyle.Width(scoresSidebarWidth).Render(list.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, side, "  ", boardFrameStyle.Render(m.tableView()))
}

// narrowView puts one tab per game above the table.
func (m ScoreboardModel) narrowView() string {
	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		name := truncate(g.Title, 10)
		if i == m.game {
			tabs[i] = boardTabStyle.Render(name)
		} else {
			tabs[i] = boardDimStyle.Render(" " + name + " ")
		}
	}
	line := strings.Join(tabs, " ")
	if g, ok := m.Game(); ok && lipgloss.Width(line) > m.width-4 {
		line = fmt.Sprintf("< %s >", g.Title)
	}

	var b strings.Builder
	b.WriteString(centerText(line, m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(boardFrameStyle.Render(m.tableView()), m.width))
	return b.String()
}

func (m ScoreboardModel) tableView() string {
	if len(m.scores) == 0 {
		return boardEmptyStyle.Render("No scores recorded yet.\nPlay a game to set a high score!")
	}
	return m.table.View()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "."
}

// variantLabel names the board a score was set on.
func variantLabel(v string) string {
	if v == "" {
		return "-"
	}
	return v
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
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
