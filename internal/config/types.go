package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config holds the complete cleanbot configuration.
type Config struct {
	Log      LogConfig      `koanf:"log"`
	Run      RunConfig      `koanf:"run"`
	Bench    BenchConfig    `koanf:"bench"`
	Generate GenerateConfig `koanf:"generate"`
	Watch    WatchConfig    `koanf:"watch"`
}

// LogConfig selects the logger.
type LogConfig struct {
	Level       string `koanf:"level"`  // debug, info, warn, error
	Format      string `koanf:"format"` // console or json
	Development bool   `koanf:"development"`
}

// RunConfig holds the exploration settings shared by run, bench and watch.
type RunConfig struct {
	Strategy      string `koanf:"strategy"`
	Layout        string `koanf:"layout"`    // path; empty means a generated room
	MaxMoves      int    `koanf:"max_moves"` // 0 = unlimited
	ShortestTurns bool   `koanf:"shortest_turns"`
}

// BenchConfig controls the timing harness.
type BenchConfig struct {
	Iterations int      `koanf:"iterations"`
	Strategies []string `koanf:"strategies"`
}

// GenerateConfig describes the room generated when no layout is given.
type GenerateConfig struct {
	Width    int     `koanf:"width"`
	Height   int     `koanf:"height"`
	Density  float64 `koanf:"density"`
	Maze     bool    `koanf:"maze"`
	Braiding float64 `koanf:"braiding"`
	Facing   string  `koanf:"facing"`
	Seed     int64   `koanf:"seed"`
}

// WatchConfig controls the terminal replay.
type WatchConfig struct {
	Delay Duration `koanf:"delay"` // pause between replayed steps
}

// Duration wraps time.Duration for text unmarshaling (YAML, env vars).
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	if parsed < 0 {
		return fmt.Errorf("duration cannot be negative: %s", text)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration().String()), nil
}

// Duration returns the underlying time.Duration.
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}
