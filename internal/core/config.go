package core

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

// TickDurationMs returns the wall-clock length of one simulation tick.
func (c RuntimeConfig) TickDurationMs() int64 {
	if c.TickRate <= 0 {
		return 1000 / 60
	}
	return int64(1000 / c.TickRate)
}

// GameState represents the current state of a game.
// Returned by the game to communicate status to the platform.
type GameState struct {
	Score    int  // Current score (may be negative)
	Level    int  // Current level, 1-based
	GameOver bool // Whether the game has ended (won or lost)
	Won      bool // Whether the game ended with every level cleared
	Paused   bool // Whether the game is waiting (window too small, etc.)
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
