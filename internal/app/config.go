package app

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"mad-snake/internal/sims/snake"
)

// ErrInvalidConfig is returned when a configuration value is out of range.
var ErrInvalidConfig = errors.New("invalid config")

const maxMovesPerSecond = 30

// Config represents the command-line and file parameters for the application.
type Config struct {
	Rows           int    `yaml:"rows"`
	Cols           int    `yaml:"cols"`
	Scale          int    `yaml:"scale"`
	TPS            int    `yaml:"tps"`
	MovesPerSecond int    `yaml:"moves_per_second"`
	Seed           int64  `yaml:"seed"`
	HUDWidth       int    `yaml:"hud_width"`
	ConfigPath     string `yaml:"-"`
}

// NewConfig returns a Config populated with sensible defaults. A zero Seed
// picks a fresh seed from the clock for every run.
func NewConfig() *Config {
	return &Config{Rows: 20, Cols: 30, Scale: 20, TPS: 60, MovesPerSecond: 8, HUDWidth: 220}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "board rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "board columns")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.IntVar(&c.MovesPerSecond, "speed", c.MovesPerSecond, "snake moves per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "food placement seed (0 = random per run)")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels (0 hides it)")
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "optional YAML config file")
}

// LoadFile overlays the values present in a YAML file onto c.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config YAML %s: %w", path, err)
	}
	return nil
}

// Validate checks every value is usable.
func (c *Config) Validate() error {
	switch {
	case c.Rows < snake.MinRows:
		return fmt.Errorf("%w: rows must be at least %d, got %d", ErrInvalidConfig, snake.MinRows, c.Rows)
	case c.Cols < snake.MinCols:
		return fmt.Errorf("%w: cols must be at least %d, got %d", ErrInvalidConfig, snake.MinCols, c.Cols)
	case c.Scale < 1:
		return fmt.Errorf("%w: scale must be positive, got %d", ErrInvalidConfig, c.Scale)
	case c.TPS < 1:
		return fmt.Errorf("%w: tps must be positive, got %d", ErrInvalidConfig, c.TPS)
	case c.MovesPerSecond < 1 || c.MovesPerSecond > maxMovesPerSecond:
		return fmt.Errorf("%w: speed must be within 1..%d, got %d", ErrInvalidConfig, maxMovesPerSecond, c.MovesPerSecond)
	case c.HUDWidth < 0:
		return fmt.Errorf("%w: hud width must not be negative, got %d", ErrInvalidConfig, c.HUDWidth)
	}
	return nil
}

// SimConfig projects the board settings onto a simulation config.
func (c *Config) SimConfig(seed int64) snake.Config {
	return snake.Config{Rows: c.Rows, Cols: c.Cols, Seed: seed}
}

// Load builds a Config from command-line arguments. When -config names a
// file its values are applied first and flags given on the command line
// override them.
func Load(args []string) (*Config, error) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("snake", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.ConfigPath != "" {
		if err := cfg.LoadFile(cfg.ConfigPath); err != nil {
			return nil, err
		}
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
