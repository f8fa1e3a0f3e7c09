package t2048

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tilemerge/internal/board"
	"github.com/vovakirdan/tilemerge/internal/config"
	"github.com/vovakirdan/tilemerge/internal/core"
	"github.com/vovakirdan/tilemerge/internal/registry"
	"github.com/vovakirdan/tilemerge/internal/session"
)

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     42,
	}
}

// newTestGame creates a classic game whose session starts from rows.
func newTestGame(t *testing.T, rows [][]int) *Game {
	t.Helper()

	v, _ := config.LookupVariant("2048")
	g, err := New(v, config.DefaultPuzzleConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := g.Reset(testConfig()); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	grid, err := board.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	ctrl, err := session.New(g.cfg.Session(), rand.New(rand.NewSource(1)), session.WithGrid(grid))
	if err != nil {
		t.Fatalf("session.New: %v", err)
	}
	g.ctrl = ctrl
	return g
}

func frameAt(now time.Time, actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Push(a, now)
	}
	f.Now = now
	return f
}

func TestVariantsRegistered(t *testing.T) {
	for _, v := range config.Variants {
		if !registry.Exists(v.ID) {
			t.Errorf("variant %q not registered", v.ID)
			continue
		}

		g, err := registry.Create(v.ID, config.DefaultPuzzleConfig())
		if err != nil {
			t.Fatalf("Create(%q): %v", v.ID, err)
		}
		if err := g.Reset(testConfig()); err != nil {
			t.Fatalf("Reset(%q): %v", v.ID, err)
		}

		snap := g.(*Game).Snapshot()
		if got, want := fmt.Sprintf("%dx%d", snap.Rows, snap.Cols), v.Size(config.DefaultPuzzleConfig()); got != want {
			t.Errorf("%s: board %s, want %s", v.ID, got, want)
		}
		if g.Title() != v.Name {
			t.Errorf("%s: Title() = %q, want %q", v.ID, g.Title(), v.Name)
		}
	}
}

func TestCustomVariantUsesConfiguredBoard(t *testing.T) {
	cfg := config.DefaultPuzzleConfig()
	cfg.Board.Rows, cfg.Board.Cols = 3, 5

	g, err := registry.Create(config.CustomVariantID, cfg)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := g.Reset(testConfig()); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if snap := g.(*Game).Snapshot(); snap.Rows != 3 || snap.Cols != 5 {
		t.Errorf("custom board = %dx%d, want 3x5", snap.Rows, snap.Cols)
	}

	// Presets ignore the configured shape.
	classic, _ := registry.Create("2048", cfg)
	if err := classic.Reset(testConfig()); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if snap := classic.(*Game).Snapshot(); snap.Rows != 4 || snap.Cols != 4 {
		t.Errorf("classic board = %dx%d, want 4x4", snap.Rows, snap.Cols)
	}
}

func TestResetStartsFreshBoard(t *testing.T) {
	v, _ := config.LookupVariant("2048")
	g, _ := New(v, config.DefaultPuzzleConfig())
	if err := g.Reset(testConfig()); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	snap := g.Snapshot()
	tiles := 0
	for _, row := range snap.Board {
		for _, r := range row {
			if r != 0 {
				tiles++
				if r != board.SpawnRank {
					t.Errorf("start tile has rank %d", r)
				}
			}
		}
	}
	if tiles != 2 {
		t.Errorf("fresh board has %d tiles, want 2", tiles)
	}
	if snap.Score != 0 || snap.State != StatePlaying {
		t.Errorf("snapshot = %+v, want a playing board with score 0", snap)
	}
}

func TestDeterministicWithSeed(t *testing.T) {
	play := func() Snapshot {
		v, _ := config.LookupVariant("2048")
		g, _ := New(v, config.DefaultPuzzleConfig())
		if err := g.Reset(testConfig()); err != nil {
			t.Fatal(err)
		}
		now := t0
		for _, a := range []core.Action{core.ActionLeft, core.ActionUp, core.ActionRight, core.ActionDown} {
			g.Step(frameAt(now, a))
			now = now.Add(400 * time.Millisecond)
			g.Step(frameAt(now))
		}
		return g.Snapshot()
	}

	a, b := play(), play()
	if a.Score != b.Score || a.Moves != b.Moves {
		t.Fatalf("runs diverged: %+v vs %+v", a, b)
	}
	for r := range a.Board {
		for c := range a.Board[r] {
			if a.Board[r][c] != b.Board[r][c] {
				t.Fatalf("runs diverged at (%d,%d)", r, c)
			}
		}
	}
}

func TestStepFeedsController(t *testing.T) {
	g := newTestGame(t, [][]int{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{1, 1, 0, 2},
	})

	res := g.Step(frameAt(t0, core.ActionLeft))
	if res.State.Score != 4 || res.State.Moves != 1 || res.State.BestRank != 2 {
		t.Errorf("state = %+v, want score 4, 1 move, best rank 2", res.State)
	}
	if snap := g.Snapshot(); snap.State != StateAnimating || snap.UndoDepth != 1 {
		t.Errorf("snapshot = %+v, want animating with one undo entry", snap)
	}

	g.Step(frameAt(t0.Add(350 * time.Millisecond)))
	g.Step(frameAt(t0.Add(400*time.Millisecond), core.ActionUndo))
	if st := g.State(); st.Score != 0 || st.Moves != 0 {
		t.Errorf("after undo state = %+v, want score and moves rolled back", st)
	}
}

func TestLossOverlayAndAcknowledge(t *testing.T) {
	g := newTestGame(t, [][]int{
		{1, 2, 1, 2},
		{2, 1, 2, 1},
		{1, 2, 1, 2},
		{2, 1, 2, 1},
	})

	if !g.Step(frameAt(t0)).State.GameOver {
		t.Fatal("full board without merges should be lost")
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "You lost") || !strings.Contains(out, "Press any key to continue") {
		t.Errorf("loss overlay missing:\n%s", out)
	}

	later := t0.Add(time.Second)
	if g.Step(frameAt(later, core.ActionAcknowledge)).State.GameOver {
		t.Error("any key should dismiss the loss screen")
	}
	if snap := g.Snapshot(); snap.State != StatePlaying || snap.Score != 0 {
		t.Errorf("after acknowledge snapshot = %+v", snap)
	}
}

func TestTooSmallDropsInput(t *testing.T) {
	g := newTestGame(t, [][]int{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 1},
	})
	g.Resize(20, 10)

	g.Step(frameAt(t0, core.ActionLeft))
	if snap := g.Snapshot(); snap.State != StatePausedSmall || snap.Moves != 0 || snap.Pending != 0 {
		t.Errorf("snapshot = %+v, want paused with no move and nothing buffered", snap)
	}

	screen := core.NewScreen(20, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected the too-small message")
	}

	g.Resize(80, 24)
	g.Step(frameAt(t0.Add(time.Second), core.ActionLeft))
	if g.State().Moves != 1 {
		t.Error("input should be accepted again after growing the window")
	}
}

func TestRenderShowsTilesAndHUD(t *testing.T) {
	g := newTestGame(t, [][]int{
		{1, 0, 0, 0},
		{0, 11, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 17},
	})
	g.Step(frameAt(t0))

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"2048", "128k", "Score: 0", "Moves: 0", "Best: 131072"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}

	// The rank-11 tile uses its band colour.
	idx := strings.Index(screen.Row(hudHeight+1+cellHeight+1), "2048")
	if idx < 0 {
		t.Fatal("2048 label not on the expected row")
	}
	x := len([]rune(screen.Row(hudHeight + 1 + cellHeight + 1)[:idx]))
	if c := screen.GetCell(x, hudHeight+1+cellHeight+1); c.Color != RankColor(11) {
		t.Errorf("label colour = %v, want %v", c.Color, RankColor(11))
	}
}

func TestRenderDuringSlide(t *testing.T) {
	g := newTestGame(t, [][]int{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 3},
	})
	g.Step(frameAt(t0, core.ActionLeft))
	g.Step(frameAt(t0.Add(75 * time.Millisecond)))

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	row := screen.Row(hudHeight + 1 + 3*cellHeight + 1)
	if strings.Count(row, "8") != 1 {
		t.Errorf("expected exactly one sliding 8 on the bottom row, got %q", row)
	}
}
