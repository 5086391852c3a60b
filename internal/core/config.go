package core

// RuntimeConfig contains the parameters a game is created with.
type RuntimeConfig struct {
	GridW    int    // Grid width in cells
	GridH    int    // Grid height in cells
	StartX   int    // Starting snake column
	StartY   int    // Starting snake row
	StartDir string // "up", "down", "left" or "right"
	Seed     int64  // Food placement seed; 0 means use the wall clock
}

// DefaultConfig returns the classic 20x10 board with the snake at (5, 5).
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		GridW:    20,
		GridH:    10,
		StartX:   5,
		StartY:   5,
		StartDir: "right",
		Seed:     0,
	}
}
