// Package bench times exploration strategies against each other.
//
// What:
//
//	A Harness runs a fixed list of trials for N iterations. Within one
//	iteration every trial runs once, in the order given, so slow drift of
//	the machine affects all trials alike. Each trial is timed separately
//	and the harness reports total, mean, min and max per trial.
//
// Why:
//
//	Timing lives outside the navigator: the explorers only explore. A trial
//	is any func() error, typically built with ExplorerTrial, which loads a
//	fresh simulated robot, runs a strategy and checks the evaluator's
//	verdict.
//
// Metrics:
//
//	cleanbot_trial_duration_seconds{trial}  histogram of single runs
//	cleanbot_trial_failures_total{trial}    trials that returned an error
//
// Both are registered on the Registerer given with WithRegisterer
// (default: a private registry, so harnesses never collide).
//
// Errors:
//
//   - ErrInvalidIterations  if iterations < 1.
//   - ErrNoTrials           if Run is called without trials.
//   - ErrDuplicateTrial     if two trials share a name.
//   - the first trial error, wrapped with the trial name and iteration;
//     the run stops there.
package bench
