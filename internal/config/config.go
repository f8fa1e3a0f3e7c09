// Package config provides YAML-based puzzle configuration loading and the
// board variant presets.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("config: invalid config")

// PuzzleConfig contains all configuration for the tile puzzle.
type PuzzleConfig struct {
	Board     BoardConfig     `yaml:"board"`
	Animation AnimationConfig `yaml:"animation"`
	Input     InputConfig     `yaml:"input"`
	Undo      UndoConfig      `yaml:"undo"`
}

// BoardConfig defines the grid.
type BoardConfig struct {
	Rows       int `yaml:"rows"`
	Cols       int `yaml:"cols"`
	StartTiles int `yaml:"start_tiles"` // Rank-1 tiles on a fresh board
}

// AnimationConfig defines the move animation phases.
type AnimationConfig struct {
	SlideMs  int     `yaml:"slide_ms"`
	GrowMs   int     `yaml:"grow_ms"`
	ShrinkMs int     `yaml:"shrink_ms"`
	MinScale float64 `yaml:"min_scale"` // Pulse start size
	MaxScale float64 `yaml:"max_scale"` // Pulse overshoot, > 1
}

// InputConfig defines input buffering.
type InputConfig struct {
	MaxBufferMs int `yaml:"max_buffer_ms"` // Older key presses are dropped
}

// UndoConfig defines the undo history.
type UndoConfig struct {
	Limit int `yaml:"limit"` // 0 = unlimited
}

// Validate checks every section.
func (c PuzzleConfig) Validate() error {
	switch {
	case c.Board.Rows <= 0 || c.Board.Cols <= 0:
		return fmt.Errorf("%w: board %dx%d", ErrInvalidConfig, c.Board.Rows, c.Board.Cols)
	case c.Board.StartTiles < 0 || c.Board.StartTiles > c.Board.Rows*c.Board.Cols:
		return fmt.Errorf("%w: %d start tiles on a %dx%d board", ErrInvalidConfig,
			c.Board.StartTiles, c.Board.Rows, c.Board.Cols)
	case c.Animation.SlideMs < 0 || c.Animation.GrowMs < 0 || c.Animation.ShrinkMs < 0:
		return fmt.Errorf("%w: negative animation duration", ErrInvalidConfig)
	case c.Animation.MinScale <= 0 || c.Animation.MaxScale <= 1 || c.Animation.MinScale > c.Animation.MaxScale:
		return fmt.Errorf("%w: scale range [%v, %v]", ErrInvalidConfig, c.Animation.MinScale, c.Animation.MaxScale)
	case c.Input.MaxBufferMs <= 0:
		return fmt.Errorf("%w: max_buffer_ms %d must be positive", ErrInvalidConfig, c.Input.MaxBufferMs)
	case c.Undo.Limit < 0:
		return fmt.Errorf("%w: negative undo limit %d", ErrInvalidConfig, c.Undo.Limit)
	}
	return nil
}
