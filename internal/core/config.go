package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The platform uses it to size the terminal view and pick the RNG seed.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; 0 means seed from the clock
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

// GameState is the coarse status the platform polls after every tick.
type GameState struct {
	Score     int  // Current score
	HighScore int  // Best score this process
	GameOver  bool // Whether the run has ended
	Quit      bool // Whether the game asked the host to exit
}
