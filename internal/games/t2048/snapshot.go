package t2048

import "github.com/vovakirdan/tilemerge/internal/session"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateAnimating   GameStateType = "animating"
	StateLost        GameStateType = "lost"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Variant   string
	Rows      int
	Cols      int
	Score     int
	Moves     int
	BestRank  int
	Board     [][]int
	UndoDepth int
	Pending   int // Buffered requests not yet served
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:    g.tick,
		Variant: g.variant.ID,
		Rows:    g.cfg.Board.Rows,
		Cols:    g.cfg.Board.Cols,
		State:   StatePlaying,
	}
	if g.ctrl == nil {
		return snap
	}

	grid := g.ctrl.Grid()
	snap.Score = g.ctrl.Score()
	snap.Moves = g.ctrl.Moves()
	snap.BestRank = g.ctrl.BestRank()
	snap.Board = grid.Ranks()
	snap.UndoDepth = g.ctrl.UndoDepth()
	snap.Pending = g.ctrl.Pending()

	switch {
	case g.tooSmall:
		snap.State = StatePausedSmall
	case g.ctrl.Lost():
		snap.State = StateLost
	case g.ctrl.State() == session.StateAnimating:
		snap.State = StateAnimating
	}
	return snap
}
