// Package navigator drives a cleaning robot across an unknown, axis-aligned
// grid using nothing but local sensing: its facing, a barrier probe, the
// coordinates of its own cell and of the cell ahead, single-cell moves and
// 90° turns.
//
// Two strategies share one data model:
//
//   - DepthFirst: an explicit stack of frames {position, remaining
//     directions}. Directions are consumed last-first from the order
//     [Up, Right, Down, Left], so Left is tried first and Up last. When a
//     frame runs out of directions it is popped and the robot walks back
//     to the new top, re-deriving the direction from the position delta
//     (no path history is kept).
//   - BestFirst: every time a cell becomes current the robot probes the
//     four directions and builds an immutable Table for that cell: one
//     step to each open neighbor, plus one more step than each entry of
//     an already visited neighbor's Table. It then steps once toward the
//     nearest known-but-unvisited (frontier) cell and repeats. Neighbor
//     tables may predate later discoveries, so a step count is an upper
//     bound on the distance, not always the minimum.
//
// Both run until there is nothing left to explore (empty stack, no
// reachable frontier) and return nil. Neither reports coverage: scoring a
// run is the job of whoever owns the room (see package simulator).
//
// Complexity (n = reachable cells):
//
//   - DepthFirst: O(n) iterations, O(n) memory, exactly 2·(n−1) moves.
//   - BestFirst:  O(n) ticks per newly visited cell in the worst case,
//     O(n) work per tick for table composition, O(n²) memory for tables.
//
// Options:
//
//   - WithLogger(l)          structured logging sink (default: no-op).
//   - WithOnVisit(fn)        hook run when a cell first becomes current;
//     an error aborts the run.
//   - WithMaxMoves(n)        abort with ErrMoveLimit after n moves (n < 0: unlimited).
//   - WithShortestTurns()    one left turn instead of three right turns.
//
// Errors:
//
//   - ErrNilRobot               if the robot is nil.
//   - ErrUnreachableDirection   if a turn target or reported facing is not cardinal.
//   - grid.ErrInvalidAdjacency  if a backtrack crosses non-adjacent cells.
//   - ErrMoveLimit              if WithMaxMoves is exceeded.
//   - grid.ErrKeyRange          if the robot reports a cell outside the int32 range.
//   - any error returned by the OnVisit hook.
//
// None of these occur when the robot behaves as documented; they are
// invariant checks, not control flow.
package navigator
