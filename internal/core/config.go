package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickRateOrDefault returns the tick rate, falling back to 60 when unset.
func (c RuntimeConfig) TickRateOrDefault() int {
	if c.TickRate <= 0 {
		return 60
	}
	return c.TickRate
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended (won or lost)
	Won      bool // Whether the game ended in a win
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

// RunResult describes a finished game for score storage.
type RunResult struct {
	Rows     int
	Cols     int
	Seed     int64
	Moves    int
	Par      int // Minimum possible moves, -1 if unknown
	Duration time.Duration
	Score    int
}

// SeedReporter is implemented by games whose current board comes from a seed
// that can change during play, e.g. after a restart.
type SeedReporter interface {
	Seed() int64
}

// ResultReporter is implemented by games that can describe a finished run.
// The bool is false while no run has been completed.
type ResultReporter interface {
	Result() (RunResult, bool)
}
