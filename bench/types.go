package bench

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

var (
	// ErrInvalidIterations indicates an iteration count below one.
	ErrInvalidIterations = errors.New("bench: iterations must be positive")
	// ErrNoTrials indicates Run was called with nothing to time.
	ErrNoTrials = errors.New("bench: no trials")
	// ErrDuplicateTrial indicates two trials with the same name.
	ErrDuplicateTrial = errors.New("bench: duplicate trial name")
	// ErrIncomplete is returned by an ExplorerTrial whose run left
	// reachable cells uncleaned.
	ErrIncomplete = errors.New("bench: coverage incomplete")
)

// Trial is one named unit of work.
type Trial struct {
	Name string
	Run  func() error
}

// Result aggregates the timings of one trial.
type Result struct {
	Name       string
	Iterations int
	Total      time.Duration
	Mean       time.Duration
	Min        time.Duration
	Max        time.Duration
}

// Option configures a Harness.
type Option func(*Options)

// Options holds Harness settings.
type Options struct {
	Logger     *zap.Logger
	Registerer prometheus.Registerer
	// Now is the clock used for timing; tests substitute a fake one.
	Now func() time.Time
}

// DefaultOptions returns a no-op logger, a private registry and time.Now.
func DefaultOptions() Options {
	return Options{
		Logger:     zap.NewNop(),
		Registerer: prometheus.NewRegistry(),
		Now:        time.Now,
	}
}

// WithLogger sets the logger; nil keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithRegisterer registers the harness metrics on reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *Options) {
		if reg != nil {
			o.Registerer = reg
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(o *Options) {
		if now != nil {
			o.Now = now
		}
	}
}
