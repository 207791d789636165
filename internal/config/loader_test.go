package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cleanbot/navigator"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cleanbot.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, DefaultLogFormat, cfg.Log.Format)
	assert.Equal(t, navigator.StrategyBestFirst, cfg.Run.Strategy)
	assert.Equal(t, DefaultIterations, cfg.Bench.Iterations)
	assert.Equal(t, []string{"bestfirst", "dfs"}, cfg.Bench.Strategies)
	assert.Equal(t, DefaultWidth, cfg.Generate.Width)
	assert.Equal(t, 40*time.Millisecond, cfg.Watch.Delay.Duration())
	assert.Empty(t, cfg.NavigatorOptions())
	assert.Equal(t, Default(), cfg)
}

func TestLoad_ValidYAML(t *testing.T) {
	path := writeConfig(t, `
log:
  level: debug
  format: json
run:
  strategy: dfs
  layout: rooms/office.txt
  max_moves: 500
  shortest_turns: true
bench:
  iterations: 10
  strategies: [dfs]
generate:
  width: 31
  height: 15
  maze: true
  braiding: 0.25
  facing: right
  seed: 7
watch:
  delay: 5ms
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "dfs", cfg.Run.Strategy)
	assert.Equal(t, "rooms/office.txt", cfg.Run.Layout)
	assert.Equal(t, 500, cfg.Run.MaxMoves)
	assert.True(t, cfg.Run.ShortestTurns)
	assert.Equal(t, 10, cfg.Bench.Iterations)
	assert.Equal(t, []string{"dfs"}, cfg.Bench.Strategies)
	assert.Equal(t, GenerateConfig{Width: 31, Height: 15, Maze: true, Braiding: 0.25, Facing: "right", Seed: 7}, cfg.Generate)
	assert.Equal(t, 5*time.Millisecond, cfg.Watch.Delay.Duration())
	assert.Len(t, cfg.NavigatorOptions(), 2)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "run:\n  strategy: dfs\nbench:\n  iterations: 10\n")
	t.Setenv("CLEANBOT_RUN_STRATEGY", "bestfirst")
	t.Setenv("CLEANBOT_RUN_MAX_MOVES", "42")
	t.Setenv("CLEANBOT_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "bestfirst", cfg.Run.Strategy)
	assert.Equal(t, 42, cfg.Run.MaxMoves)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 10, cfg.Bench.Iterations, "file value survives")
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeConfig(t, "log: [unclosed\n"))
	assert.ErrorContains(t, err, "config: parse")

	_, err = Load(writeConfig(t, "run:\n  strategy: spiral\n"))
	assert.ErrorIs(t, err, ErrInvalid)
	assert.ErrorIs(t, err, navigator.ErrUnknownStrategy)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"log level":       func(c *Config) { c.Log.Level = "verbose" },
		"log format":      func(c *Config) { c.Log.Format = "xml" },
		"max moves":       func(c *Config) { c.Run.MaxMoves = -1 },
		"iterations":      func(c *Config) { c.Bench.Iterations = -3 },
		"bench strategy":  func(c *Config) { c.Bench.Strategies = []string{"dfs", "astar"} },
		"size":            func(c *Config) { c.Generate.Width = 0 },
		"density":         func(c *Config) { c.Generate.Density = 1 },
		"braiding":        func(c *Config) { c.Generate.Braiding = 1.5 },
		"facing":          func(c *Config) { c.Generate.Facing = "north-east" },
		"empty strategy":  func(c *Config) { c.Run.Strategy = "" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}

	cfg := Default()
	cfg.Run.Strategy = "DFS"
	cfg.Log.Level = "DEBUG"
	assert.NoError(t, cfg.Validate())
}

func TestDuration_UnmarshalText(t *testing.T) {
	var d Duration
	require.NoError(t, d.UnmarshalText([]byte("1.5s")))
	assert.Equal(t, 1500*time.Millisecond, d.Duration())

	assert.Error(t, d.UnmarshalText([]byte("-1s")))
	assert.Error(t, d.UnmarshalText([]byte("soon")))

	text, err := d.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "1.5s", string(text))
}
