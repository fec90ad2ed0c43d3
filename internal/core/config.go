package core

// RuntimeConfig contains settings passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Frontend surface width (pixels or terminal columns)
	ScreenH  int   // Frontend surface height (pixels or terminal rows)
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; resolved from the wall clock at process start when 0
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  1280,
		ScreenH:  720,
		TickRate: 60,
		Seed:     0,
	}
}
