package core

// RuntimeConfig contains configuration passed from the platform layer.
// Field geometry lives in the game config; this only describes the host.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters (terminal front end)
	ScreenH  int   // Screen height in characters (terminal front end)
	TickRate int   // Frame callbacks per second (default 60)
	Seed     int64 // RNG seed for deterministic pipe placement
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
