package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/cleanbot/internal/render"
	"github.com/katalvlaran/cleanbot/navigator"
	"github.com/katalvlaran/cleanbot/simulator"
)

// newScreen is replaced in tests by a simulation screen.
var newScreen = tcell.NewScreen

func newWatchCmd(a *app) *cobra.Command {
	var (
		strategy string
		exit     bool
	)
	cmd := &cobra.Command{
		Use:   "watch [layout]",
		Short: "Replay a run in the terminal",
		Long: `Explore a room, then replay every move and turn in the terminal.

Keys: space pauses, q / Esc / Ctrl-C quits.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				a.cfg.Run.Layout = args[0]
			}
			if strategy != "" {
				a.cfg.Run.Strategy = strategy
			}
			return a.watch(cmd.Context(), exit)
		},
	}
	cmd.Flags().StringVar(&strategy, "strategy", "", "exploration strategy")
	cmd.Flags().BoolVar(&exit, "exit", false, "quit when the replay ends")
	return cmd
}

func (a *app) watch(ctx context.Context, exitWhenDone bool) error {
	s, err := navigator.Lookup(a.cfg.Run.Strategy)
	if err != nil {
		return err
	}
	room, err := a.loadRoom()
	if err != nil {
		return err
	}

	// 1. Record
	r := simulator.New(room, simulator.WithTrace())
	if err = s(r, append(a.cfg.NavigatorOptions(), navigator.WithLogger(a.logger))...); err != nil {
		return fmt.Errorf("%s: %w", a.cfg.Run.Strategy, err)
	}
	a.logger.Info("run recorded", zap.Int("steps", len(r.Trace())))

	// 2. Replay
	screen, err := newScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err = screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return render.Play(ctx, render.NewReplay(screen, room, r.Trace()), render.PlayOptions{
		Delay:        a.cfg.Watch.Delay.Duration(),
		ExitWhenDone: exitWhenDone,
	})
}
