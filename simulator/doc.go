// Package simulator provides an in-memory robot that implements
// navigator.Robot over a layout.Layout, and the evaluator that scores a
// finished run.
//
// The robot owns everything the navigator must not know: the room's
// geometry, the obstacles, and the set of cells it has cleaned (every
// cell it stands on). It also counts moves, turns and collisions. A Move
// into a barrier leaves the robot in place and counts as a collision,
// which a correct navigator never causes.
//
// Evaluate compares the cleaned set with the region reachable from the
// start cell and reports coverage, the missed regions and, for each
// region the robot could not reach, how many barrier cells separate it
// from the start region.
package simulator
