package game

import "time"

// Playfield bounds shared by spawning, wandering and movement clamps.
const (
	PlayfieldWidth  = 600
	PlayfieldHeight = 700

	// spawnFloor keeps enemies away from the player's lane at the bottom.
	spawnFloor = 500
)

// Config holds game configuration constants
type Config struct {
	// ScreenWidth is the logical surface width in pixels
	ScreenWidth int

	// ScreenHeight is the logical surface height in pixels
	ScreenHeight int

	// TPS is the number of simulation ticks per second
	TPS int

	// Seed seeds the shared random source. Zero picks a time based seed.
	Seed int64

	// EnemyTablePath overrides the embedded enemy parameter table
	EnemyTablePath string

	// AssetRoot is the directory textures and sounds are resolved against
	AssetRoot string

	// ProfileDir enables overrun profiling into this directory when set
	ProfileDir string
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		ScreenWidth:  PlayfieldWidth,
		ScreenHeight: PlayfieldHeight,
		TPS:          120,
		AssetRoot:    "assets",
	}
}

// FrameBudget returns the target duration of a single tick
func (c Config) FrameBudget() time.Duration {
	if c.TPS <= 0 {
		return time.Second / 120
	}
	return time.Second / time.Duration(c.TPS)
}

// ResolveSeed returns the configured seed or a time based one
func (c Config) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
