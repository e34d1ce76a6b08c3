package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed, 0 means use current time
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// TickDuration converts a tick count to wall time at this tick rate.
func (c RuntimeConfig) TickDuration(ticks uint64) time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return time.Duration(ticks) * time.Second / time.Duration(rate)
}

// GameState is what the platform needs to know about a game after a tick.
type GameState struct {
	Phase     string // current phase name
	Pitfalls  int    // pits fallen into on this map
	Collected int    // pieces found on this map
	Total     int    // pieces on the map
	Won       bool   // every piece found
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

// RunResult describes a finished run for the run history.
type RunResult struct {
	RunID            string
	Difficulty       string
	HazardsRequested int
	HazardsPlaced    int
	Pitfalls         int
	Moves            int
	Duration         time.Duration
	Seed             int64
}
