// Package layout reads, writes and generates room layouts for the robot
// simulator.
//
// Text format, one grid row per line (x = column, y = row, y grows down):
//
//	#   barrier
//	.   open floor (a space is accepted too)
//	^   start cell, robot facing up
//	>   start cell, robot facing right
//	v   start cell, robot facing down
//	<   start cell, robot facing left
//
// Exactly one start glyph is required. Short rows are padded with
// barriers, and every cell outside the grid is a barrier as well, so a
// layout need not draw its outer walls. Lines starting with ';' are
// comments; trailing blank lines are ignored.
//
// Example (a 1×5 corridor, start at the left end facing right):
//
//	#######
//	#>....#
//	#######
//
// Generate builds seeded random rooms (scattered obstacles) or mazes
// (recursive backtracker with optional braiding).
package layout
