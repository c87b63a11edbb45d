package config

import (
	"errors"
	"fmt"
	"os"

	"snake-astar/game/types"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every Validate failure
var ErrInvalidConfig = errors.New("invalid config")

// Fallback policies when the goal is unreachable
const (
	// FallbackPartial walks toward the last explored cell
	FallbackPartial = "partial"
	// FallbackEscape plans strictly and steps onto any free neighbour
	FallbackEscape = "escape"
)

// Config drives a headless run
//
// Example file:
//
//	width: 32
//	height: 24
//	initialLength: 3
//	games: 10
//	seed: 42
//	maxSteps: 5000
//	maxStallTicks: 3
//	fallback: partial
//	statsFile: data/stats.json
type Config struct {
	// Width, Height are the board size in cells
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// InitialLength is the starting body length
	InitialLength int `yaml:"initialLength"`

	// Games to play back to back
	Games int `yaml:"games"`

	// Seed for goal placement; 0 picks one from the clock
	Seed uint64 `yaml:"seed"`

	// MaxSteps caps one game's ticks; 0 means unbounded
	MaxSteps int `yaml:"maxSteps"`

	// MaxStallTicks is how many consecutive no-move ticks end a game
	MaxStallTicks int `yaml:"maxStallTicks"`

	// Fallback is FallbackPartial or FallbackEscape
	Fallback string `yaml:"fallback"`

	// StatsFile is where game records are saved; empty disables saving
	StatsFile string `yaml:"statsFile"`

	Verbose bool `yaml:"verbose"`
}

// Default returns the configuration of the classic 640x480 board
func Default() Config {
	return Config{
		Width:         types.DefaultWidth,
		Height:        types.DefaultHeight,
		InitialLength: types.DefaultInitialLength,
		Games:         1,
		MaxSteps:      100000,
		MaxStallTicks: 3,
		Fallback:      FallbackPartial,
	}
}

// Load reads a YAML file on top of Default and validates the result
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the values a game needs to start
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: board %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.InitialLength < 1 {
		return fmt.Errorf("%w: initialLength %d must be at least 1", ErrInvalidConfig, c.InitialLength)
	}
	// Body is laid out leftward from the centre
	if c.InitialLength > c.Width/2+1 {
		return fmt.Errorf("%w: initialLength %d does not fit a board %d wide", ErrInvalidConfig, c.InitialLength, c.Width)
	}
	if c.Games < 1 {
		return fmt.Errorf("%w: games %d must be at least 1", ErrInvalidConfig, c.Games)
	}
	if c.MaxSteps < 0 {
		return fmt.Errorf("%w: maxSteps %d is negative", ErrInvalidConfig, c.MaxSteps)
	}
	if c.MaxStallTicks < 1 {
		return fmt.Errorf("%w: maxStallTicks %d must be at least 1", ErrInvalidConfig, c.MaxStallTicks)
	}
	switch c.Fallback {
	case FallbackPartial, FallbackEscape:
	default:
		return fmt.Errorf("%w: unknown fallback %q", ErrInvalidConfig, c.Fallback)
	}
	return nil
}

// Board returns the grid bounds
func (c Config) Board() types.Grid {
	return types.Grid{Width: c.Width, Height: c.Height}
}
