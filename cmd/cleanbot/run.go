package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/cleanbot/grid"
	"github.com/katalvlaran/cleanbot/navigator"
	"github.com/katalvlaran/cleanbot/simulator"
)

// errIncomplete is returned by run --strict when reachable cells were missed.
var errIncomplete = errors.New("coverage incomplete")

func newRunCmd(a *app) *cobra.Command {
	var (
		strict   bool
		showRoom bool
		strategy string
	)
	cmd := &cobra.Command{
		Use:   "run [layout]",
		Short: "Explore one room and print the coverage report",
		Long: `Explore one room with the configured strategy and print the coverage report.

Examples:
  # Best-first over a layout file
  cleanbot run rooms/office.txt

  # Depth-first over a generated room
  cleanbot run --strategy dfs`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				a.cfg.Run.Layout = args[0]
			}
			if strategy != "" {
				a.cfg.Run.Strategy = strategy
			}
			return a.run(cmd, strict, showRoom)
		},
	}
	cmd.Flags().StringVar(&strategy, "strategy", "", "exploration strategy: "+strings.Join(navigator.Strategies(), ", "))
	cmd.Flags().BoolVar(&strict, "strict", false, "fail unless every reachable cell was cleaned")
	cmd.Flags().BoolVar(&showRoom, "show", false, "print the room with cleaned cells marked")
	return cmd
}

func (a *app) run(cmd *cobra.Command, strict, showRoom bool) error {
	s, err := navigator.Lookup(a.cfg.Run.Strategy)
	if err != nil {
		return err
	}
	room, err := a.loadRoom()
	if err != nil {
		return err
	}

	r := simulator.New(room)
	opts := append(a.cfg.NavigatorOptions(), navigator.WithLogger(a.logger.Named(a.cfg.Run.Strategy)))
	if err = s(r, opts...); err != nil {
		return fmt.Errorf("%s: %w", a.cfg.Run.Strategy, err)
	}

	rep, err := simulator.Evaluate(r)
	if err != nil {
		return err
	}
	a.logger.Info("run finished",
		zap.String("strategy", a.cfg.Run.Strategy),
		zap.Float64("coverage", rep.Coverage),
		zap.Int("moves", rep.Moves),
		zap.Int("turns", rep.Turns),
		zap.Int("unreachable_regions", len(rep.Unreachable)),
	)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run %s\nstrategy: %s\n%s\n", a.runID, a.cfg.Run.Strategy, rep)
	for _, region := range rep.Unreachable {
		fmt.Fprintf(out, "unreachable: %d cells from %s, %d barrier(s) to clear\n",
			len(region.Cells), region.Cells[0], region.Clearance)
	}
	if showRoom {
		fmt.Fprint(out, cleanedMap(r))
	}

	if strict && !rep.Complete {
		return fmt.Errorf("%w: %d cell(s) missed", errIncomplete, len(rep.Missed))
	}
	return nil
}

// cleanedMap renders the room with '*' on every cleaned cell.
func cleanedMap(r *simulator.Robot) string {
	room := r.Room()
	buf := make([]byte, 0, (room.Width()+1)*room.Height())
	for y := 0; y < room.Height(); y++ {
		for x := 0; x < room.Width(); x++ {
			p := grid.Pos(x, y)
			switch {
			case !room.Open(p):
				buf = append(buf, '#')
			case r.Cleaned(p):
				buf = append(buf, '*')
			default:
				buf = append(buf, '.')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
