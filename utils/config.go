package utils

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// Initial grid strategies
const (
	InitRandom  = "random"
	InitPattern = "pattern"
	InitClear   = "clear"
)

// ErrInvalidConfig is returned by Validate
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for a run
type Config struct {
	Width  int `json:"width"`
	Height int `json:"height"`

	// Initial grid
	InitMode    string   `json:"init_mode"`
	Seed        int64    `json:"seed"`
	Density     float64  `json:"density"`
	PatternName string   `json:"pattern_name"`
	Pattern     [][2]int `json:"pattern"`
	OffsetX     int      `json:"offset_x"`
	OffsetY     int      `json:"offset_y"`

	// Stepping
	UseParallel    bool `json:"use_parallel"`
	Workers        int  `json:"workers"`
	UseBoundedGrid bool `json:"use_bounded_grid"`
	UseMemoryPool  bool `json:"use_memory_pool"`

	// Run loop
	MaxGenerations      int  `json:"max_generations"`
	StagnationThreshold int  `json:"stagnation_threshold"`
	PrintGrid           bool `json:"print_grid"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               60,
		Height:              30,
		InitMode:            InitRandom,
		Seed:                1,
		Density:             0.5,
		UseParallel:         true,
		UseMemoryPool:       true,
		UseBoundedGrid:      false,
		MaxGenerations:      1000,
		StagnationThreshold: 5,
	}
}

// LoadConfig loads configuration from JSON file over the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] file: %+v", filename)
	}

	return config, nil
}

// Validate checks the fields that do not depend on the grid itself
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] width: %d, height: %d", c.Width, c.Height)
	}
	switch c.InitMode {
	case InitRandom, InitPattern, InitClear:
	default:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] init_mode: %q", c.InitMode)
	}
	if c.Density < 0 || c.Density > 1 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] density: %v", c.Density)
	}
	if c.Workers < 0 || c.MaxGenerations < 0 || c.StagnationThreshold < 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] workers: %d, max_generations: %d, stagnation_threshold: %d",
			c.Workers, c.MaxGenerations, c.StagnationThreshold)
	}
	return nil
}
