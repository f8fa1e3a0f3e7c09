package core

import "github.com/charmbracelet/log"

// RuntimeConfig is passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second driving Step (default 60)
	Seed     int64 // RNG seed; 0 means the platform picks one from the clock

	Logger *log.Logger // Optional; games stay silent when nil
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is reported to the platform after every step.
type GameState struct {
	Score    int  // Current score
	BestRank int  // Highest tile rank on the board
	Moves    int  // Successful moves this session
	GameOver bool // The session is lost and waiting for acknowledgment
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State GameState
}
