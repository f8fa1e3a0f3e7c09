package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tilemerge/internal/games/t2048"
	"github.com/vovakirdan/tilemerge/internal/registry"
	"github.com/vovakirdan/tilemerge/internal/storage"
)

const (
	resultLimit    = 50 // Rows loaded per board
	statsWidth     = 22 // Stats panel content width
	sideBySideMinW = 76 // Narrower terminals stack the stats above the table
	tileColumnW    = 7
)

var (
	boardTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Padding(0, 1)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("16")).
			Background(lipgloss.Color("220")).
			Padding(0, 1)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1)

	statLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Width(11)
)

// boardResults is what the scoreboard shows for one board variant.
type boardResults struct {
	ID      string
	Title   string
	Entries []storage.ScoreEntry
	Stats   storage.GameStats
}

// loadBoardResults reads the best results and aggregates of every
// registered variant. A nil store yields empty boards.
func loadBoardResults(store *storage.Store) []boardResults {
	games := registry.List()
	boards := make([]boardResults, len(games))

	var stats map[string]*storage.GameStats
	if store != nil {
		if all, err := store.GetAllGamesStats(); err == nil {
			stats = all
		}
	}

	for i, g := range games {
		b := boardResults{ID: g.ID, Title: g.Title, Stats: storage.GameStats{GameID: g.ID}}
		if s, ok := stats[g.ID]; ok {
			b.Stats = *s
		}
		if store != nil {
			if entries, err := store.TopScores(g.ID, resultLimit); err == nil {
				b.Entries = entries
			}
		}
		boards[i] = b
	}
	return boards
}

// newResultsTable builds the results table for entries to fit width x height.
func newResultsTable(entries []storage.ScoreEntry, width, height int) table.Model {
	// Score takes whatever the fixed columns leave, within reason.
	fixed := 3 + tileColumnW + 6 + 12 + 10 // rank, tile, moves, date, cell padding
	scoreW := min(max(width-fixed, 6), 12)

	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Score", Width: scoreW},
		{Title: "Tile", Width: tileColumnW},
		{Title: "Moves", Width: 6},
		{Title: "Played", Width: 12},
	}

	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", e.Score),
			t2048.Label(e.BestRank, tileColumnW),
			fmt.Sprintf("%d", e.Moves),
			e.CreatedAt.Format("Jan 02 15:04"),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(height, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("238")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("16")).
		Background(lipgloss.Color("208")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// renderStats formats the aggregate panel for one board.
func renderStats(st storage.GameStats) string {
	row := func(label, value string) string {
		return statLabelStyle.Render(label) + value
	}

	if st.GamesCount == 0 {
		return lipgloss.NewStyle().Width(statsWidth).Render(row("Games", "0"))
	}

	lines := []string{
		row("Games", fmt.Sprintf("%d", st.GamesCount)),
		row("High score", fmt.Sprintf("%d", st.HighScore)),
		row("Best tile", t2048.Label(st.BestRank, 8)),
		row("Average", fmt.Sprintf("%.0f", st.AvgScore)),
		row("Moves", fmt.Sprintf("%d", st.TotalMoves)),
	}
	if !st.LastPlayed.IsZero() {
		lines = append(lines, row("Last game", st.LastPlayed.Format("Jan 02")))
	}
	return lipgloss.NewStyle().Width(statsWidth).Render(strings.Join(lines, "\n"))
}

// ScoreboardModel is the Bubble Tea model for the results screen.
type ScoreboardModel struct {
	boards    []boardResults
	cursor    int
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel loads every board's results from store, which may be nil.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		boards: loadBoardResults(store),
		help:   help.New(),
		keys:   DefaultScoreboardKeyMap(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.rebuildTable()
	return m
}

// sideBySide reports whether the stats panel fits next to the table.
func (m ScoreboardModel) sideBySide() bool {
	return m.width >= sideBySideMinW
}

// current returns the selected board, or an empty one when nothing is registered.
func (m ScoreboardModel) current() boardResults {
	if len(m.boards) == 0 {
		return boardResults{}
	}
	return m.boards[m.cursor]
}

// rebuildTable sizes the table for the window and the selected board.
func (m *ScoreboardModel) rebuildTable() {
	// Title, tabs, help and the panel border
	height := m.height - 9
	width := m.width - 4
	if m.sideBySide() {
		width -= statsWidth + 6
	} else {
		height -= 8
	}
	m.table = newResultsTable(m.current().Entries, width, height)
}

// selectBoard moves the cursor by delta, wrapping around.
func (m *ScoreboardModel) selectBoard(delta int) {
	if len(m.boards) == 0 {
		return
	}
	m.cursor = (m.cursor + delta + len(m.boards)) % len(m.boards)
	m.rebuildTable()
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
		case key.Matches(msg, m.keys.NextBoard):
			m.selectBoard(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevBoard):
			m.selectBoard(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.rebuildTable()
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

	title := menuTitleStyle.Render("HIGH SCORES")

	var results string
	if len(m.current().Entries) == 0 {
		results = menuDimStyle.Italic(true).Render("No results yet.\nLose a game to record one.")
	} else {
		results = m.table.View()
	}

	stats := panelStyle.Render(renderStats(m.current().Stats))
	var body string
	if m.sideBySide() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, stats, " ", panelStyle.Render(results))
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, stats, panelStyle.Render(results))
	}

	return lipgloss.JoinVertical(lipgloss.Center,
		title,
		m.renderTabs(),
		"",
		body,
		"",
		m.help.View(m.keys),
	)
}

// renderTabs draws one tab per board with its game count. When the strip
// is wider than the window only the selected board is shown.
func (m ScoreboardModel) renderTabs() string {
	tabs := make([]string, len(m.boards))
	for i, b := range m.boards {
		label := fmt.Sprintf("%s (%d)", b.Title, b.Stats.GamesCount)
		if i == m.cursor {
			tabs[i] = activeTabStyle.Render(label)
		} else {
			tabs[i] = boardTabStyle.Render(label)
		}
	}

	strip := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	if m.width > 0 && lipgloss.Width(strip) > m.width {
		return activeTabStyle.Render("← " + m.current().Title + " →")
	}
	return strip
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the results screen on its own.
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
