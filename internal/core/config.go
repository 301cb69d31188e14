package core

// RuntimeConfig contains configuration shared by the frame loop and the
// terminal backend.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frame cap in iterations per second (default 30)
	Seed     int64 // RNG seed for clan generation and moon events
}

// DefaultTickRate is the frame cap used when none is configured.
const DefaultTickRate = 30

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: DefaultTickRate,
		Seed:     0, // 0 means use current time
	}
}
