package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cleanbot/bench"
)

func newBenchCmd(a *app) *cobra.Command {
	var (
		iterations  int
		strategies  []string
		showMetrics bool
	)
	cmd := &cobra.Command{
		Use:   "bench [layout]",
		Short: "Time the strategies on the same room",
		Long: `Run every strategy once per iteration on the same room and report
mean, min and max wall time per strategy.

Examples:
  # 1000 iterations (the default) on a layout file
  cleanbot bench rooms/office.txt

  # 50 iterations of depth-first only, with Prometheus metrics
  cleanbot bench --iterations 50 --strategies dfs --metrics`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				a.cfg.Run.Layout = args[0]
			}
			if cmd.Flags().Changed("iterations") {
				a.cfg.Bench.Iterations = iterations
			}
			if len(strategies) > 0 {
				a.cfg.Bench.Strategies = strategies
			}
			return a.bench(cmd.OutOrStdout(), showMetrics)
		},
	}
	cmd.Flags().IntVar(&iterations, "iterations", 0, "iterations per strategy (default from config)")
	cmd.Flags().StringSliceVar(&strategies, "strategies", nil, "strategies to time (default: all)")
	cmd.Flags().BoolVar(&showMetrics, "metrics", false, "print the collected metrics in Prometheus text format")
	return cmd
}

func (a *app) bench(out io.Writer, showMetrics bool) error {
	room, err := a.loadRoom()
	if err != nil {
		return err
	}
	trials, err := bench.StrategyTrials(a.cfg.Bench.Strategies, room, a.cfg.NavigatorOptions()...)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	h, err := bench.New(a.cfg.Bench.Iterations,
		bench.WithLogger(a.logger.Named("bench")),
		bench.WithRegisterer(reg),
	)
	if err != nil {
		return err
	}
	results, err := h.Run(trials...)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "run %s\n", a.runID)
	fmt.Fprintln(tw, "STRATEGY\tITERATIONS\tMEAN\tMIN\tMAX")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%d\t%v\t%v\t%v\n", r.Name, r.Iterations, r.Mean, r.Min, r.Max)
	}
	if err = tw.Flush(); err != nil {
		return err
	}

	if showMetrics {
		return writeMetrics(out, reg)
	}
	return nil
}

// writeMetrics dumps everything gathered by reg in the text exposition format.
func writeMetrics(out io.Writer, reg prometheus.Gatherer) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err = expfmt.MetricFamilyToText(out, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}
