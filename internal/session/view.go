package session

import (
	"time"

	"github.com/vovakirdan/tilemerge/internal/anim"
	"github.com/vovakirdan/tilemerge/internal/core"
)

// Sprite is one tile as it should be drawn: position in fractional cell
// units and a scale about its own centre.
type Sprite struct {
	Rank  int
	Row   float64
	Col   float64
	Scale float64
	Pulse bool // Merge target or spawned tile
}

// Frame returns the animation frame at now. Outside an animation it is
// always PhaseDone.
func (c *Controller) Frame(now time.Time) anim.Frame {
	if c.anim == nil {
		return anim.Frame{Phase: anim.PhaseDone, Progress: 1}
	}
	return c.cfg.Timing.At(now.Sub(c.anim.Start))
}

// Sprites returns the tiles to draw at now. While sliding, the pre-move
// tiles travel toward their destinations and the spawned tile is hidden.
// Afterwards the post-move grid is shown with merge targets and the spawn
// cell pulsing.
func (c *Controller) Sprites(now time.Time) []Sprite {
	f := c.Frame(now)

	if c.anim != nil && f.Phase == anim.PhaseSlide {
		t := c.cfg.Timing.Offset(f)
		out := make([]Sprite, 0, len(c.anim.Displacement.Moves))
		for _, mv := range c.anim.Displacement.Moves {
			out = append(out, Sprite{
				Rank:  mv.Rank,
				Row:   core.Lerp(float64(mv.From.Row), float64(mv.To.Row), t),
				Col:   core.Lerp(float64(mv.From.Col), float64(mv.To.Col), t),
				Scale: 1,
			})
		}
		return out
	}

	var out []Sprite
	for _, cell := range c.grid.Occupied() {
		s := Sprite{
			Rank:  c.grid.At(cell),
			Row:   float64(cell.Row),
			Col:   float64(cell.Col),
			Scale: 1,
		}
		if c.anim != nil && c.anim.pulses(cell) {
			s.Pulse = true
			s.Scale = c.cfg.Timing.Scale(f)
		}
		out = append(out, s)
	}
	return out
}
