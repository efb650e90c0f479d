package core

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int    // Screen width in characters
	ScreenH  int    // Screen height in characters
	TickRate int    // Simulation ticks per second (default 60)
	Seed     int64  // RNG seed for deterministic gameplay
	Variant  string // Game-specific variant, e.g. "4x4" for board sizes

	ConfigPath string // Custom YAML config for the game, empty for the search path
	Difficulty string // Difficulty preset name, empty for the config's own

	// Logger receives game diagnostics. Nil discards them.
	Logger *log.Logger
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

var discard = log.New(io.Discard)

// Log returns the configured logger or one that discards everything.
func (c RuntimeConfig) Log() *log.Logger {
	if c.Logger == nil {
		return discard
	}
	return c.Logger
}

// Ticks converts a duration into a whole number of ticks, at least 1.
func (c RuntimeConfig) Ticks(d time.Duration) int {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	n := int(d.Seconds()*float64(rate) + 0.5)
	return max(n, 1)
}

// TickDuration is the simulated time that passes per Step.
func (c RuntimeConfig) TickDuration() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Sounds []Sound // effects triggered during this tick
}
