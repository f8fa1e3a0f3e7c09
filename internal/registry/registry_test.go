package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tilemerge/internal/config"
	"github.com/vovakirdan/tilemerge/internal/core"
)

type stubGame struct {
	id   string
	rows int
}

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig) error       { return nil }
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

var errRejected = errors.New("rejected")

func init() {
	Register("zz_stub", "Stub", func(cfg config.PuzzleConfig) (Game, error) {
		return &stubGame{id: "zz_stub", rows: cfg.Board.Rows}, nil
	})
	Register("zz_failing", "Failing", func(config.PuzzleConfig) (Game, error) {
		return nil, errRejected
	})
}

func TestCreatePassesConfig(t *testing.T) {
	cfg := config.DefaultPuzzleConfig()
	cfg.Board.Rows = 7

	g, err := Create("zz_stub", cfg)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if got := g.(*stubGame).rows; got != 7 {
		t.Errorf("factory saw %d rows, want 7", got)
	}
}

func TestCreateErrors(t *testing.T) {
	if _, err := Create("missing", config.DefaultPuzzleConfig()); err == nil {
		t.Error("unknown ID should fail")
	}
	if _, err := Create("zz_failing", config.DefaultPuzzleConfig()); !errors.Is(err, errRejected) {
		t.Errorf("factory error should be wrapped, got %v", err)
	}
}

func TestListSortedWithTitles(t *testing.T) {
	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}

	found := false
	for _, info := range list {
		if info.ID == "zz_stub" {
			found = info.Title == "Stub"
		}
	}
	if !found {
		t.Error("zz_stub missing from List() or has the wrong title")
	}
	if !Exists("zz_failing") || Exists("nope") {
		t.Error("Exists() mismatch")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz_stub", "Again", nil)
}
