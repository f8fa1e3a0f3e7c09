// Package t2048 implements the sliding tile puzzle as a registry game.
// Each board variant registers its own ID; all of them share one
// implementation driven by a session.Controller.
package t2048

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tilemerge/internal/config"
	"github.com/vovakirdan/tilemerge/internal/core"
	"github.com/vovakirdan/tilemerge/internal/registry"
	"github.com/vovakirdan/tilemerge/internal/session"
)

// Game adapts a session controller to the registry.Game interface.
type Game struct {
	variant config.Variant
	cfg     config.PuzzleConfig
	ctrl    *session.Controller
	tiles   *TileSet

	tick uint64
	now  time.Time // Timestamp of the latest frame

	// Screen dimensions
	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a game for variant v. The variant's board shape overrides
// the dimensions in cfg.
func New(v config.Variant, cfg config.PuzzleConfig) (*Game, error) {
	if err := config.ApplyVariant(&cfg, v.ID); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Game{
		variant: v,
		cfg:     cfg,
		tiles:   NewTileSet(labelWidth),
	}, nil
}

func init() {
	for _, v := range config.Variants {
		registry.Register(v.ID, v.Name, func(cfg config.PuzzleConfig) (registry.Game, error) {
			return New(v, cfg)
		})
	}
}

// ID returns the variant identifier.
func (g *Game) ID() string { return g.variant.ID }

// Title returns the display name.
func (g *Game) Title() string { return g.variant.Name }

// Reset starts a fresh session.
func (g *Game) Reset(cfg core.RuntimeConfig) error {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var opts []session.Option
	if cfg.Logger != nil {
		opts = append(opts, session.WithLogger(cfg.Logger.WithPrefix(g.variant.ID)))
	}

	ctrl, err := session.New(g.cfg.Session(), rand.New(rand.NewSource(seed)), opts...)
	if err != nil {
		return err
	}

	g.ctrl = ctrl
	g.tick = 0
	g.now = time.Time{}
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.checkScreenSize()
	return nil
}

// Resize adapts to a new terminal size without touching the session.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	w, h := g.boardSize()
	g.tooSmall = g.screenW < w+2 || g.screenH < h+hudHeight
}

// Step queues the frame's input and advances the session to in.Now.
// Input is dropped while the window is too small.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.ctrl == nil {
		return core.StepResult{}
	}
	g.tick++
	if !in.Now.IsZero() {
		g.now = in.Now
	}

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	for _, e := range in.Events {
		g.ctrl.Enqueue(e.Action, e.At)
	}
	g.ctrl.Tick(g.now)

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.ctrl == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.ctrl.Score(),
		BestRank: g.ctrl.BestRank(),
		Moves:    g.ctrl.Moves(),
		GameOver: g.ctrl.Lost(),
	}
}
