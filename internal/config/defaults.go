package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/tilemerge/internal/anim"
	"github.com/vovakirdan/tilemerge/internal/session"
)

//go:embed defaults/puzzle.yaml
var defaultPuzzleYAML []byte

// DefaultPuzzleConfig returns the default puzzle configuration.
func DefaultPuzzleConfig() PuzzleConfig {
	return PuzzleConfig{
		Board: BoardConfig{
			Rows:       4,
			Cols:       4,
			StartTiles: 2,
		},
		Animation: AnimationConfig{
			SlideMs:  150,
			GrowMs:   100,
			ShrinkMs: 100,
			MinScale: 0.5,
			MaxScale: 1.1,
		},
		Input: InputConfig{
			MaxBufferMs: 200,
		},
	}
}

// Timing converts the animation section.
func (c PuzzleConfig) Timing() anim.Timing {
	return anim.Timing{
		Slide:    time.Duration(c.Animation.SlideMs) * time.Millisecond,
		Grow:     time.Duration(c.Animation.GrowMs) * time.Millisecond,
		Shrink:   time.Duration(c.Animation.ShrinkMs) * time.Millisecond,
		MinScale: c.Animation.MinScale,
		MaxScale: c.Animation.MaxScale,
	}
}

// Session converts the configuration for session.New.
func (c PuzzleConfig) Session() session.Config {
	return session.Config{
		Rows:       c.Board.Rows,
		Cols:       c.Board.Cols,
		StartTiles: c.Board.StartTiles,
		MaxBuffer:  time.Duration(c.Input.MaxBufferMs) * time.Millisecond,
		Timing:     c.Timing(),
		UndoLimit:  c.Undo.Limit,
	}
}
