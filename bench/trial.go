package bench

import (
	"fmt"

	"github.com/katalvlaran/cleanbot/layout"
	"github.com/katalvlaran/cleanbot/navigator"
	"github.com/katalvlaran/cleanbot/simulator"
)

// ExplorerTrial returns a trial that places a fresh robot in room, runs
// strategy s with opts and fails with ErrIncomplete unless every cell
// reachable from the start was cleaned.
func ExplorerTrial(name string, s navigator.Strategy, room *layout.Layout, opts ...navigator.Option) Trial {
	return Trial{
		Name: name,
		Run: func() error {
			r := simulator.New(room)
			if err := s(r, opts...); err != nil {
				return err
			}
			rep, err := simulator.Evaluate(r)
			if err != nil {
				return err
			}
			if !rep.Complete {
				return fmt.Errorf("%w: %s", ErrIncomplete, rep)
			}
			return nil
		},
	}
}

// StrategyTrials builds one ExplorerTrial per strategy name.
func StrategyTrials(names []string, room *layout.Layout, opts ...navigator.Option) ([]Trial, error) {
	trials := make([]Trial, 0, len(names))
	for _, name := range names {
		s, err := navigator.Lookup(name)
		if err != nil {
			return nil, err
		}
		trials = append(trials, ExplorerTrial(name, s, room, opts...))
	}
	return trials, nil
}
