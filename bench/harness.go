package bench

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Harness runs trials and records their timings.
type Harness struct {
	iterations int
	opts       Options
	duration   *prometheus.HistogramVec
	failures   *prometheus.CounterVec
}

// New builds a harness that runs every trial iterations times and
// registers its metrics. Collectors already registered on the same
// Registerer by an earlier harness are reused.
func New(iterations int, opts ...Option) (*Harness, error) {
	if iterations < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidIterations, iterations)
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	duration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "cleanbot",
			Name:      "trial_duration_seconds",
			Help:      "Duration of a single trial run in seconds",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
		},
		[]string{"trial"},
	)
	failures := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cleanbot",
			Name:      "trial_failures_total",
			Help:      "Total number of trial runs that returned an error",
		},
		[]string{"trial"},
	)

	var err error
	if duration, err = register(o.Registerer, duration); err != nil {
		return nil, err
	}
	if failures, err = register(o.Registerer, failures); err != nil {
		return nil, err
	}

	return &Harness{iterations: iterations, opts: o, duration: duration, failures: failures}, nil
}

// register adds c to reg, or returns the collector that already holds
// its name.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	err := reg.Register(c)
	if err == nil {
		return c, nil
	}
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(C); ok {
			return existing, nil
		}
	}
	return c, fmt.Errorf("bench: register metrics: %w", err)
}

// Iterations returns the configured iteration count.
func (h *Harness) Iterations() int {
	return h.iterations
}

// Durations returns the per-trial duration histogram.
func (h *Harness) Durations() *prometheus.HistogramVec {
	return h.duration
}

// Failures returns the per-trial failure counter.
func (h *Harness) Failures() *prometheus.CounterVec {
	return h.failures
}

// Run times trials and returns one Result per trial, in the given order.
// On the first error it stops and returns the results gathered so far
// together with the error.
func (h *Harness) Run(trials ...Trial) ([]Result, error) {
	if len(trials) == 0 {
		return nil, ErrNoTrials
	}
	results := make([]Result, len(trials))
	seen := make(map[string]struct{}, len(trials))
	for i, tr := range trials {
		if _, dup := seen[tr.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateTrial, tr.Name)
		}
		seen[tr.Name] = struct{}{}
		results[i].Name = tr.Name
	}
	log := h.opts.Logger

	// 1. Interleave: one pass over all trials per iteration
	for it := 1; it <= h.iterations; it++ {
		for i, tr := range trials {
			start := h.opts.Now()
			err := tr.Run()
			elapsed := h.opts.Now().Sub(start)

			if err != nil {
				h.failures.WithLabelValues(tr.Name).Inc()
				log.Error("trial failed",
					zap.String("trial", tr.Name),
					zap.Int("iteration", it),
					zap.Error(err),
				)
				return finish(results), fmt.Errorf("bench: trial %q iteration %d: %w", tr.Name, it, err)
			}

			// 2. Accumulate
			h.duration.WithLabelValues(tr.Name).Observe(elapsed.Seconds())
			r := &results[i]
			r.Iterations++
			r.Total += elapsed
			if r.Iterations == 1 || elapsed < r.Min {
				r.Min = elapsed
			}
			if elapsed > r.Max {
				r.Max = elapsed
			}
		}
	}

	// 3. Summarize
	results = finish(results)
	for _, r := range results {
		log.Info("trial timed",
			zap.String("trial", r.Name),
			zap.Int("iterations", r.Iterations),
			zap.Duration("mean", r.Mean),
			zap.Duration("min", r.Min),
			zap.Duration("max", r.Max),
		)
	}

	return results, nil
}

func finish(results []Result) []Result {
	for i := range results {
		if n := results[i].Iterations; n > 0 {
			results[i].Mean = results[i].Total / time.Duration(n)
		}
	}
	return results
}
