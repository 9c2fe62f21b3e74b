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

// DefaultTickRate is used whenever a RuntimeConfig carries no tick rate.
const DefaultTickRate = 60

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: DefaultTickRate,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Rate returns the tick rate, falling back to DefaultTickRate.
func (c RuntimeConfig) Rate() int {
	if c.TickRate <= 0 {
		return DefaultTickRate
	}
	return c.TickRate
}

// TickDuration is the fixed frame delta implied by the tick rate.
func (c RuntimeConfig) TickDuration() time.Duration {
	return time.Second / time.Duration(c.Rate())
}

// Ticks converts a duration in seconds to a whole number of ticks (at least 1
// for any positive duration).
func (c RuntimeConfig) Ticks(seconds float64) int {
	if seconds <= 0 {
		return 0
	}
	n := int(seconds*float64(c.Rate()) + 0.5)
	if n < 1 {
		n = 1
	}
	return n
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
