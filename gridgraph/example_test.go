// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/cleanbot/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: ConnectedComponents
////////////////////////////////////////////////////////////////////////////////

// ExampleGridGraph_ConnectedComponents demonstrates how to split a room
// into the regions a robot could reach from different starting cells.
// Scenario:
//
//   - '.' = floor, '#' = barrier
//   - 4-directional adjacency only: the robot never moves diagonally
//   - Expect two regions separated by the middle wall column.
func ExampleGridGraph_ConnectedComponents() {
	room := parse(
		"..#.",
		"..#.",
	)
	gg, _ := gridgraph.NewGridGraph(room)

	comps := gg.ConnectedComponents()
	fmt.Println("components:", len(comps))
	for i, comp := range comps {
		fmt.Printf("component %d:", i)
		for _, idx := range comp {
			x, y := gg.Coordinate(idx)
			fmt.Printf(" (%d,%d)", x, y)
		}
		fmt.Println()
	}

	blockers, _ := gg.Bridge(comps, 0, 1)
	fmt.Println("barriers to clear:", blockers)

	// Output:
	// components: 2
	// component 0: (0,0) (1,0) (0,1) (1,1)
	// component 1: (3,0) (3,1)
	// barriers to clear: [(2,0)]
}
