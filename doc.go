// Package cleanbot covers unknown rooms with a cleaning robot that only
// senses what is directly ahead of it.
//
// What is cleanbot?
//
//	A small toolkit built around one question: how does a robot that knows
//	its own coordinates, its facing and whether the next cell is blocked
//	visit every floor cell it can reach? It brings together:
//		• grid       directions, positions, packed keys, adjacency deltas
//		• navigator  the two exploration strategies (depth-first, best-first)
//		• layout     text room format, parser and seeded room/maze generator
//		• simulator  an in-memory robot plus the coverage evaluator
//		• gridgraph  global room analysis: regions, BFS distances, bridges
//		• bench      interleaved timing harness with Prometheus metrics
//
// Under cmd/cleanbot sits the command line: run, bench, watch (terminal
// replay) and generate.
//
// Quick start:
//
//	room, _ := layout.ParseString("#######\n#>....#\n#######\n")
//	r := simulator.New(room)
//	if err := navigator.BestFirst(r); err != nil {
//		log.Fatal(err)
//	}
//	rep, _ := simulator.Evaluate(r)
//	fmt.Println(rep) // cleaned 5/5 reachable cells (100.0%), ...
//
// The navigator never sees the room: everything it learns comes through
// the navigator.Robot interface, and scoring a run is the simulator's job.
package cleanbot
