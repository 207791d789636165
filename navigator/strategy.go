package navigator

import (
	"fmt"
	"sort"
	"strings"
)

// Strategy names accepted by Lookup.
const (
	StrategyDepthFirst = "dfs"
	StrategyBestFirst  = "bestfirst"
)

// Strategy is the single entry point of an exploration algorithm: it runs
// to completion and returns nil, or an invariant violation.
type Strategy func(r Robot, opts ...Option) error

var strategies = map[string]Strategy{
	StrategyDepthFirst: DepthFirst,
	StrategyBestFirst:  BestFirst,
}

// Lookup returns the strategy registered under name (case-insensitive).
func Lookup(name string) (Strategy, error) {
	s, ok := strategies[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownStrategy, name, strings.Join(Strategies(), ", "))
	}
	return s, nil
}

// Strategies returns the registered strategy names in sorted order.
func Strategies() []string {
	names := make([]string, 0, len(strategies))
	for n := range strategies {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
