package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; 0 means use current time in the platform layer
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

// GameState summarizes the current session for the platform layer.
type GameState struct {
	Score    int  // Current score
	Level    int  // Current difficulty level
	Lives    int  // Remaining lives (clamped at 0 for display)
	GameOver bool // Whether the session has finalized
	Paused   bool // Whether the game is paused
}
