package grid

import (
	"fmt"
	"math"
)

// Pos is shorthand for Position{X: x, Y: y}.
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

// Step returns the neighbor of p one cell away in direction d.
// An invalid d returns p unchanged.
func (p Position) Step(d Direction) Position {
	dx, dy := d.Offset()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Key returns the packed map key of p. Both coordinates must lie in the
// int32 range (see InKeyRange); outside it they are truncated and distinct
// positions can share a key.
func (p Position) Key() Key {
	return Key(uint64(uint32(int32(p.X)))<<32 | uint64(uint32(int32(p.Y))))
}

// InKeyRange reports whether Key encodes p without loss.
func (p Position) InKeyRange() bool {
	return p.X >= math.MinInt32 && p.X <= math.MaxInt32 &&
		p.Y >= math.MinInt32 && p.Y <= math.MaxInt32
}

// String formats p as "(x,y)". It is for display only, never for keys.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Position unpacks k back into the Position it was built from.
func (k Key) Position() Position {
	return Position{
		X: int(int32(uint32(k >> 32))),
		Y: int(int32(uint32(k))),
	}
}

// DeltaToDirection returns the cardinal direction leading from `from` to
// the adjacent cell `to`. Cells that differ on both axes, on neither, or
// by more than one unit yield an error wrapping ErrInvalidAdjacency.
func DeltaToDirection(from, to Position) (Direction, error) {
	dx, dy := to.X-from.X, to.Y-from.Y
	switch {
	case dx == 0 && dy == -1:
		return Up, nil
	case dx == 1 && dy == 0:
		return Right, nil
	case dx == 0 && dy == 1:
		return Down, nil
	case dx == -1 && dy == 0:
		return Left, nil
	}

	return 0, fmt.Errorf("%w: %s -> %s", ErrInvalidAdjacency, from, to)
}
