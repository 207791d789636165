// Package main implements the cleanbot CLI: explore rooms with a simulated
// cleaning robot, time the strategies, replay a run in the terminal and
// generate layouts.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/cleanbot/grid"
	"github.com/katalvlaran/cleanbot/internal/config"
	"github.com/katalvlaran/cleanbot/internal/logging"
	"github.com/katalvlaran/cleanbot/layout"
)

// version information
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app carries what the persistent pre-run resolved for the subcommands.
type app struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg    *config.Config
	logger *zap.Logger
	runID  string
}

func newRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "cleanbot",
		Short: "Cover unknown rooms with a simulated cleaning robot",
		Long: `cleanbot drives a simulated robot over a grid room using only local
sensing, with a depth-first or a best-first strategy, and scores the run.

Rooms are text layouts ('#' barrier, '.' floor, one of ^ > v < for the
start) or are generated from the configuration.`,
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = logging.Sync(a.logger)
			}
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file (CLEANBOT_* variables override it)")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&a.logFormat, "log-format", "", "log format: console or json")

	rootCmd.AddCommand(newRunCmd(a))
	rootCmd.AddCommand(newBenchCmd(a))
	rootCmd.AddCommand(newWatchCmd(a))
	rootCmd.AddCommand(newGenerateCmd(a))
	return rootCmd
}

// setup loads the configuration, applies flag overrides and builds the
// run-scoped logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger, a.runID = logging.WithRunID(logger.Named("cleanbot"))
	a.logger.Debug("configuration loaded",
		zap.String("command", cmd.Name()),
		zap.String("config", a.configPath),
		zap.String("strategy", cfg.Run.Strategy),
	)
	return nil
}

// loadRoom reads the configured layout file, or generates a room when
// none is set.
func (a *app) loadRoom() (*layout.Layout, error) {
	if path := a.cfg.Run.Layout; path != "" {
		room, err := layout.ParseFile(path)
		if err != nil {
			return nil, err
		}
		a.logger.Info("layout loaded", zap.String("path", path),
			zap.Int("width", room.Width()), zap.Int("height", room.Height()))
		return room, nil
	}
	return a.generate()
}

func (a *app) generate() (*layout.Layout, error) {
	g := a.cfg.Generate
	facing, err := grid.ParseDirection(g.Facing)
	if err != nil {
		return nil, err
	}
	room, err := layout.Generate(layout.GenerateConfig{
		Width:    g.Width,
		Height:   g.Height,
		Density:  g.Density,
		Maze:     g.Maze,
		Braiding: g.Braiding,
		Facing:   facing,
		Seed:     g.Seed,
	})
	if err != nil {
		return nil, fmt.Errorf("generate room: %w", err)
	}
	a.logger.Info("room generated",
		zap.Int("width", room.Width()),
		zap.Int("height", room.Height()),
		zap.Bool("maze", g.Maze),
		zap.Int64("seed", room.Seed()),
	)
	return room, nil
}
