// Package gridgraph treats a room's 2D grid of open and barrier cells as a
// 4-connected graph, giving the owner of the room the global view the
// robot itself never has.
//
// What:
//
//   - GridGraph wraps a rectangular [][]bool grid (true = open floor).
//   - Identifies connected components ("regions") of open cells.
//   - Computes BFS step distances from a cell over open floor.
//   - Finds the fewest barrier cells to clear to join two regions.
//
// Why:
//
//   - Coverage scoring: only cells in the start region are reachable.
//   - Route checking: a navigator's step counts can be compared with
//     true shortest distances.
//   - Diagnostics: how thick is the wall hiding a missed region.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H), Memory: O(W×H).
//   - Distances:           O(W×H), Memory: O(W×H).
//   - Bridge:              O(W×H), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: a cell outside the grid was requested.
//   - ErrBlocked: a BFS was started from a barrier cell.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrNoPath: no path exists between the specified components.
package gridgraph
