// Package config loads cleanbot configuration from an optional YAML file
// and CLEANBOT_* environment variables.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/cleanbot/grid"
	"github.com/katalvlaran/cleanbot/navigator"
)

// Defaults.
const (
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "console"
	DefaultStrategy   = navigator.StrategyBestFirst
	DefaultIterations = 1000
	DefaultWidth      = 24
	DefaultHeight     = 12
	DefaultFacing     = "up"
)

// DefaultDelay is the default pause between replayed steps.
const DefaultDelay = Duration(40 * time.Millisecond)

// Default returns a Config with every default applied.
func Default() *Config {
	var cfg Config
	applyDefaults(&cfg)
	return &cfg
}

// applyDefaults sets default values for missing configuration fields.
func applyDefaults(cfg *Config) {
	// Log defaults
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}

	// Run defaults
	if cfg.Run.Strategy == "" {
		cfg.Run.Strategy = DefaultStrategy
	}

	// Bench defaults
	if cfg.Bench.Iterations == 0 {
		cfg.Bench.Iterations = DefaultIterations
	}
	if len(cfg.Bench.Strategies) == 0 {
		cfg.Bench.Strategies = navigator.Strategies()
	}

	// Generate defaults
	if cfg.Generate.Width == 0 {
		cfg.Generate.Width = DefaultWidth
	}
	if cfg.Generate.Height == 0 {
		cfg.Generate.Height = DefaultHeight
	}
	if cfg.Generate.Facing == "" {
		cfg.Generate.Facing = DefaultFacing
	}

	// Watch defaults
	if cfg.Watch.Delay == 0 {
		cfg.Watch.Delay = DefaultDelay
	}
}

// Validate checks ranges and names. Every error wraps ErrInvalid.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log level %q (must be debug, info, warn or error)", ErrInvalid, c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "console", "json":
	default:
		return fmt.Errorf("%w: log format %q (must be console or json)", ErrInvalid, c.Log.Format)
	}

	if _, err := navigator.Lookup(c.Run.Strategy); err != nil {
		return fmt.Errorf("%w: run strategy: %w", ErrInvalid, err)
	}
	if c.Run.MaxMoves < 0 {
		return fmt.Errorf("%w: max moves %d (must be >= 0)", ErrInvalid, c.Run.MaxMoves)
	}

	if c.Bench.Iterations < 1 {
		return fmt.Errorf("%w: bench iterations %d (must be >= 1)", ErrInvalid, c.Bench.Iterations)
	}
	for _, name := range c.Bench.Strategies {
		if _, err := navigator.Lookup(name); err != nil {
			return fmt.Errorf("%w: bench strategies: %w", ErrInvalid, err)
		}
	}

	g := c.Generate
	if g.Width < 1 || g.Height < 1 {
		return fmt.Errorf("%w: generate size %dx%d", ErrInvalid, g.Width, g.Height)
	}
	if g.Density < 0 || g.Density >= 1 {
		return fmt.Errorf("%w: generate density %v (must be in [0, 1))", ErrInvalid, g.Density)
	}
	if g.Braiding < 0 || g.Braiding > 1 {
		return fmt.Errorf("%w: generate braiding %v (must be in [0, 1])", ErrInvalid, g.Braiding)
	}
	if _, err := grid.ParseDirection(g.Facing); err != nil {
		return fmt.Errorf("%w: generate facing: %w", ErrInvalid, err)
	}

	return nil
}

// NavigatorOptions translates the run settings into explorer options.
func (c *Config) NavigatorOptions() []navigator.Option {
	var opts []navigator.Option
	if c.Run.MaxMoves > 0 {
		opts = append(opts, navigator.WithMaxMoves(c.Run.MaxMoves))
	}
	if c.Run.ShortestTurns {
		opts = append(opts, navigator.WithShortestTurns())
	}
	return opts
}
