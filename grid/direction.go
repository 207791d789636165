package grid

import (
	"fmt"
	"strings"
)

// Valid reports whether d is one of the four cardinal directions.
func (d Direction) Valid() bool {
	return d < numDirections
}

// TurnRight returns the direction 90° clockwise from d.
// The result for an invalid d is invalid as well.
func (d Direction) TurnRight() Direction {
	if !d.Valid() {
		return d
	}
	return (d + 1) % numDirections
}

// TurnLeft returns the direction 90° counter-clockwise from d.
func (d Direction) TurnLeft() Direction {
	if !d.Valid() {
		return d
	}
	return (d + numDirections - 1) % numDirections
}

// Opposite returns the direction 180° from d.
func (d Direction) Opposite() Direction {
	if !d.Valid() {
		return d
	}
	return (d + 2) % numDirections
}

// Offset returns the unit (dx, dy) step for d, or (0, 0) if d is invalid.
func (d Direction) Offset() (dx, dy int) {
	if !d.Valid() {
		return 0, 0
	}
	return offsets[d][0], offsets[d][1]
}

// String returns the lower-case name of d.
func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
	return directionNames[d]
}

// ParseDirection parses a direction name as produced by String.
// Matching is case-insensitive.
func ParseDirection(s string) (Direction, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for d, n := range directionNames {
		if n == name {
			return Direction(d), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

// RightTurns returns how many 90° right turns take facing from to facing to.
// The result is in [0, 3]. It fails with ErrInvalidDirection when either
// argument is outside the closed set.
func RightTurns(from, to Direction) (int, error) {
	if !from.Valid() {
		return 0, fmt.Errorf("%w: from %s", ErrInvalidDirection, from)
	}
	if !to.Valid() {
		return 0, fmt.Errorf("%w: to %s", ErrInvalidDirection, to)
	}
	return int((to + numDirections - from) % numDirections), nil
}
