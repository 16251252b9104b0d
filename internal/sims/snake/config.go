package snake

const (
	// MinRows and MinCols are the smallest board that seats the initial
	// three-segment snake with one cell left for food.
	MinRows = 1
	MinCols = 4

	initialLength = 3
	maxPending    = 2
)

// Config controls the simulation dimensions and randomness.
type Config struct {
	Rows int
	Cols int
	Seed int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Rows: 20, Cols: 20, Seed: 1}
}

// Option adjusts a Config before construction.
type Option func(*Config)

// WithSeed fixes the seed used for food placement.
func WithSeed(seed int64) Option {
	return func(c *Config) { c.Seed = seed }
}
