package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tilemerge/internal/storage"
)

// squash collapses runs of whitespace so padded columns compare as words.
func squash(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func openResults(t *testing.T, results ...storage.Result) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	for _, r := range results {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult: %v", err)
		}
	}
	return store
}

func TestScoreboardShowsResults(t *testing.T) {
	store := openResults(t,
		storage.Result{GameID: "2048", Score: 2340, BestRank: 8, Moves: 210},
		storage.Result{GameID: "2048", Score: 512, BestRank: 6, Moves: 80},
	)

	m := NewScoreboardModel(store, 100, 30)
	out := squash(m.View())

	for _, want := range []string{"2340", "512", "Games 2", "Best tile 256", "High score 2340", "Moves 290", "2048 (2)"} {
		if !strings.Contains(out, want) {
			t.Errorf("scoreboard missing %q:\n%s", want, out)
		}
	}
}

func TestResultsTableRows(t *testing.T) {
	played := time.Date(2026, 3, 4, 15, 6, 0, 0, time.UTC)
	entries := []storage.ScoreEntry{
		{GameID: "2048", Score: 4096, BestRank: 9, Moves: 300, CreatedAt: played},
		{GameID: "2048", Score: 128, BestRank: 5, Moves: 40, CreatedAt: played},
	}

	tbl := newResultsTable(entries, 60, 10)
	rows := tbl.Rows()
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}

	if got := strings.Join(rows[0], " "); got != "1 4096 512 300 Mar 04 15:06" {
		t.Errorf("first row = %q", got)
	}
	if got := rows[1][2]; got != "32" {
		t.Errorf("second row tile = %q, want 32", got)
	}
}

func TestRenderStats(t *testing.T) {
	tests := []struct {
		name  string
		stats storage.GameStats
		want  []string
	}{
		{
			name:  "no games",
			stats: storage.GameStats{GameID: "2048"},
			want:  []string{"Games 0"},
		},
		{
			name: "played",
			stats: storage.GameStats{
				GameID:     "2048",
				GamesCount: 3,
				HighScore:  900,
				BestRank:   7,
				AvgScore:   450.4,
				TotalMoves: 120,
				LastPlayed: time.Date(2026, 5, 9, 0, 0, 0, 0, time.UTC),
			},
			want: []string{"Games 3", "High score 900", "Best tile 128", "Average 450", "Moves 120", "Last game May 09"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := squash(renderStats(tt.stats))
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("stats missing %q: %q", w, got)
				}
			}
		})
	}
}

func TestScoreboardSwitchesBoards(t *testing.T) {
	store := openResults(t,
		storage.Result{GameID: "2048", Score: 700, BestRank: 7, Moves: 90},
		storage.Result{GameID: "2048_big", Score: 3100, BestRank: 9, Moves: 260},
	)
	m := NewScoreboardModel(store, 100, 30)

	tests := []struct {
		name string
		msg  tea.KeyMsg
		id   string
		rows int
	}{
		{"right", tea.KeyMsg{Type: tea.KeyRight}, "2048_big", 1},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, "2048_custom", 0},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, "2048_big", 1},
		{"h", runeKey('h'), "2048", 1},
		{"wraps back", runeKey('h'), "2048_wide", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, _ := m.Update(tt.msg)
			m = next.(ScoreboardModel)
			if got := m.current().ID; got != tt.id {
				t.Errorf("board = %q, want %q", got, tt.id)
			}
			if got := len(m.table.Rows()); got != tt.rows {
				t.Errorf("rows = %d, want %d", got, tt.rows)
			}
		})
	}
}

func TestScoreboardLayout(t *testing.T) {
	tests := []struct {
		name       string
		width      int
		sideBySide bool
	}{
		{"wide", 100, true},
		{"narrow", 50, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewScoreboardModel(nil, tt.width, 30)
			if got := m.sideBySide(); got != tt.sideBySide {
				t.Errorf("sideBySide = %v, want %v", got, tt.sideBySide)
			}
			if out := m.View(); !strings.Contains(out, "No results yet.") {
				t.Errorf("empty board message missing:\n%s", out)
			}
		})
	}

	narrow := NewScoreboardModel(nil, 20, 30)
	if got := narrow.renderTabs(); !strings.Contains(got, "← 2048 →") {
		t.Errorf("narrow tabs = %q, want the selected board only", got)
	}
}

func TestScoreboardResize(t *testing.T) {
	m := NewScoreboardModel(nil, 100, 30)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 20})
	sm := next.(ScoreboardModel)
	if sm.sideBySide() {
		t.Error("40 columns should stack the stats panel")
	}
	if sm.help.Width != 40 {
		t.Errorf("help width = %d, want 40", sm.help.Width)
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := NewScoreboardModel(nil, 100, 30)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if sm := next.(ScoreboardModel); !sm.IsGoingBack() {
		t.Error("esc should go back")
	}

	next, _ = m.Update(runeKey('q'))
	if sm := next.(ScoreboardModel); !sm.IsQuitting() {
		t.Error("q should quit")
	}
}
