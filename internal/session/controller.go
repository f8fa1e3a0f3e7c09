// Package session drives one puzzle game: it buffers timestamped input,
// applies moves through the merge engine, keeps the undo history, runs the
// move animation and detects the loss state. It is single-threaded and
// advanced once per frame with Tick.
package session

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tilemerge/internal/anim"
	"github.com/vovakirdan/tilemerge/internal/board"
	"github.com/vovakirdan/tilemerge/internal/core"
)

// ErrInvalidConfig is returned by New for malformed configuration.
var ErrInvalidConfig = errors.New("session: invalid config")

// State is the controller's mode.
type State int

const (
	StateIdle      State = iota // Serving buffered requests
	StateAnimating              // Playing a move animation; requests wait
	StateLost                   // No move possible; waiting for any key
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAnimating:
		return "animating"
	case StateLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Config describes a session.
type Config struct {
	Rows       int
	Cols       int
	StartTiles int           // Tiles placed on a fresh board
	MaxBuffer  time.Duration // Requests this old are discarded unserved
	Timing     anim.Timing
	UndoLimit  int // 0 keeps every snapshot
}

// DefaultConfig returns the classic 4x4 session.
func DefaultConfig() Config {
	return Config{
		Rows:       4,
		Cols:       4,
		StartTiles: 2,
		MaxBuffer:  200 * time.Millisecond,
		Timing:     anim.DefaultTiming(),
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	switch {
	case c.Rows <= 0 || c.Cols <= 0:
		return fmt.Errorf("%w: board %dx%d", ErrInvalidConfig, c.Rows, c.Cols)
	case c.StartTiles < 0 || c.StartTiles > c.Rows*c.Cols:
		return fmt.Errorf("%w: %d start tiles on a %dx%d board", ErrInvalidConfig, c.StartTiles, c.Rows, c.Cols)
	case c.MaxBuffer <= 0:
		return fmt.Errorf("%w: max buffer %v must be positive", ErrInvalidConfig, c.MaxBuffer)
	case c.UndoLimit < 0:
		return fmt.Errorf("%w: negative undo limit %d", ErrInvalidConfig, c.UndoLimit)
	}
	if err := c.Timing.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Animation is the move currently being played.
type Animation struct {
	Before       board.Grid
	After        board.Grid
	Direction    board.Direction
	Spawn        board.Cell
	Start        time.Time
	Displacement board.Displacement
	Pulses       []board.Cell // Merge targets followed by the spawn cell
}

func (a *Animation) pulses(c board.Cell) bool {
	for _, p := range a.Pulses {
		if p == c {
			return true
		}
	}
	return false
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for debug records.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// WithGrid starts the session from g instead of a random layout.
func WithGrid(g board.Grid) Option {
	return func(c *Controller) {
		c.initial = &g
	}
}

// Controller owns the grid and everything needed to advance it.
type Controller struct {
	cfg    Config
	engine *board.Engine
	log    *log.Logger

	grid  board.Grid
	score int
	moves int

	state  State
	queue  Queue
	undo   *UndoStack
	anim   *Animation
	lostAt time.Time

	initial *board.Grid
}

// New creates a session. Spawn cells are drawn from rng; a nil rng is
// seeded from the wall clock.
func New(cfg Config, rng *rand.Rand, opts ...Option) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	c := &Controller{
		cfg:    cfg,
		engine: board.NewEngine(rng),
		log:    log.New(io.Discard),
		undo:   NewUndoStack(cfg.UndoLimit),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.initial != nil {
		g := c.initial.Clone()
		c.initial = nil
		if g.Rows() != cfg.Rows || g.Cols() != cfg.Cols {
			return nil, fmt.Errorf("%w: initial grid is %dx%d, want %dx%d",
				ErrInvalidConfig, g.Rows(), g.Cols(), cfg.Rows, cfg.Cols)
		}
		c.grid = g
		return c, nil
	}

	g, err := c.engine.Start(cfg.Rows, cfg.Cols, cfg.StartTiles)
	if err != nil {
		return nil, fmt.Errorf("session: start: %w", err)
	}
	c.grid = g
	return c, nil
}

// Config returns the session configuration.
func (c *Controller) Config() Config { return c.cfg }

// Grid returns a copy of the current grid. While animating this is
// already the post-move grid.
func (c *Controller) Grid() board.Grid { return c.grid.Clone() }

// Score returns the points earned by merges so far.
func (c *Controller) Score() int { return c.score }

// Moves returns the number of successful moves.
func (c *Controller) Moves() int { return c.moves }

// BestRank returns the highest rank on the board.
func (c *Controller) BestRank() int { return c.grid.MaxRank() }

// State returns the current mode.
func (c *Controller) State() State { return c.state }

// Lost reports whether the session is in the loss state.
func (c *Controller) Lost() bool { return c.state == StateLost }

// Animation returns the move being played, if any.
func (c *Controller) Animation() (*Animation, bool) {
	return c.anim, c.anim != nil
}

// UndoDepth returns how many moves can be undone.
func (c *Controller) UndoDepth() int { return c.undo.Len() }

// Pending returns the number of buffered requests.
func (c *Controller) Pending() int { return c.queue.Len() }

// Enqueue buffers a request that arrived at at. Requests are served in
// arrival order, one per idle tick.
func (c *Controller) Enqueue(a core.Action, at time.Time) {
	if a == core.ActionNone {
		return
	}
	c.queue.Enqueue(a, at)
}

// Tick advances the session to now.
func (c *Controller) Tick(now time.Time) {
	switch c.state {
	case StateAnimating:
		if c.cfg.Timing.Done(now.Sub(c.anim.Start)) {
			c.anim = nil
			c.state = StateIdle
		}
	case StateLost:
		c.tickLost(now)
	default:
		c.tickIdle(now)
	}
}

// Reset starts a fresh board and forgets score, history and input.
func (c *Controller) Reset() error {
	g, err := c.engine.Start(c.cfg.Rows, c.cfg.Cols, c.cfg.StartTiles)
	if err != nil {
		return fmt.Errorf("session: reset: %w", err)
	}
	c.grid = g
	c.score = 0
	c.moves = 0
	c.queue.Clear()
	c.undo.Clear()
	c.anim = nil
	c.state = StateIdle
	c.log.Debug("reset", "rows", c.cfg.Rows, "cols", c.cfg.Cols)
	return nil
}

func (c *Controller) tickIdle(now time.Time) {
	if board.IsLost(c.grid) {
		c.state = StateLost
		c.lostAt = now
		c.queue.Clear()
		c.undo.Clear()
		c.log.Debug("lost", "score", c.score, "moves", c.moves, "best", board.Value(c.BestRank()))
		return
	}

	if n := c.queue.Prune(now, c.cfg.MaxBuffer); n > 0 {
		c.log.Debug("dropped stale input", "count", n)
	}

	req, ok := c.queue.Pop()
	if !ok {
		return
	}

	switch req.Action {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		c.move(directionOf(req.Action), now)
	case core.ActionUndo:
		c.undoMove()
	}
}

func (c *Controller) tickLost(now time.Time) {
	acked := false
	for _, r := range c.queue.Requests() {
		if !r.At.Before(c.lostAt) {
			acked = true
			break
		}
	}
	c.queue.Clear()
	if !acked {
		return
	}
	if err := c.Reset(); err != nil {
		c.log.Error("reset failed", "err", err)
	}
}

func (c *Controller) move(d board.Direction, now time.Time) {
	res := c.engine.Apply(c.grid, d)
	if !res.Moved {
		c.log.Debug("no-op move", "dir", d)
		return
	}

	// Pushed only once the move is known to change the grid, so a no-op
	// never evicts the oldest snapshot from a capped stack.
	c.undo.Push(Snapshot{Grid: c.grid, Score: c.score, Moves: c.moves})

	disp := board.Displace(c.grid, d)
	a := &Animation{
		Before:       c.grid,
		After:        res.Grid.Clone(),
		Direction:    d,
		Spawn:        res.Spawn,
		Start:        now,
		Displacement: disp,
	}
	a.Pulses = append(disp.MergeTargets(), res.Spawn)

	c.grid = res.Grid
	c.score += res.Score
	c.moves++
	c.anim = a
	c.state = StateAnimating
	c.log.Debug("move", "dir", d, "gained", res.Score, "spawn", res.Spawn)
}

func (c *Controller) undoMove() {
	s, ok := c.undo.Pop()
	if !ok {
		c.log.Debug("nothing to undo")
		return
	}
	c.grid = s.Grid
	c.score = s.Score
	c.moves = s.Moves
	c.log.Debug("undo", "depth", c.undo.Len())
}

func directionOf(a core.Action) board.Direction {
	switch a {
	case core.ActionUp:
		return board.Up
	case core.ActionDown:
		return board.Down
	case core.ActionLeft:
		return board.Left
	default:
		return board.Right
	}
}
