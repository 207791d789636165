// Package navigator_test shows how to drive a simulated robot with either strategy.
package navigator_test

import (
	"fmt"

	"github.com/katalvlaran/cleanbot/grid"
	"github.com/katalvlaran/cleanbot/layout"
	"github.com/katalvlaran/cleanbot/navigator"
	"github.com/katalvlaran/cleanbot/simulator"
)

// ExampleDepthFirst cleans a 1×5 corridor. Every tree edge is walked
// twice, so the robot needs 2·(5−1) moves and ends where it started.
func ExampleDepthFirst() {
	// 1) Load the room; '>' is the start cell, facing east.
	room, err := layout.ParseString("#######\n#>....#\n#######\n")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) Explore.
	r := simulator.New(room)
	if err = navigator.DepthFirst(r); err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Score.
	rep, _ := simulator.Evaluate(r)
	fmt.Printf("cleaned %d cells in %d moves, back at %s\n", rep.Cleaned, rep.Moves, r.Position())
	// Output: cleaned 5 cells in 8 moves, back at (1,1)
}

// ExampleBestFirstExplorer_Table inspects the routing table the robot
// built on its start cell of a 2×2 room.
func ExampleBestFirstExplorer_Table() {
	room, _ := layout.ParseString("^.\n..\n")
	r := simulator.New(room)

	e := navigator.NewBestFirst(r)
	if err := e.Explore(); err != nil {
		fmt.Println("error:", err)
		return
	}

	t, _ := e.Table(grid.Pos(0, 0))
	for _, target := range t.Targets() {
		en, _ := t.Lookup(target)
		fmt.Printf("%s: %d step(s), go %s\n", target, en.Steps, en.Direction)
	}
	fmt.Println("moves:", e.Stats().Moves)
	// Output:
	// (1,0): 1 step(s), go right
	// (0,1): 1 step(s), go down
	// moves: 3
}

// ExampleLookup picks a strategy by name, as the command line does.
func ExampleLookup() {
	_, err := navigator.Lookup("zigzag")
	fmt.Println(err)
	// Output: navigator: unknown strategy: "zigzag" (want one of bestfirst, dfs)
}
