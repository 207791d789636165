package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrInvalidAdjacency indicates two positions that are not 4-neighbors:
	// diagonal, identical, or more than one cell apart.
	ErrInvalidAdjacency = errors.New("grid: positions are not adjacent")
	// ErrInvalidDirection indicates a Direction outside {Up, Right, Down, Left}.
	ErrInvalidDirection = errors.New("grid: invalid direction")
	// ErrKeyRange indicates a Position with a coordinate outside int32,
	// which Key cannot encode.
	ErrKeyRange = errors.New("grid: position outside key range")
)

// Direction is a cardinal facing. The zero value is Up.
type Direction uint8

const (
	// Up faces toward decreasing Y.
	Up Direction = iota
	// Right faces toward increasing X.
	Right
	// Down faces toward increasing Y.
	Down
	// Left faces toward decreasing X.
	Left

	numDirections = 4
)

// Directions lists the four cardinal directions in clockwise order.
// It is the default exploration order of the depth-first navigator.
var Directions = [numDirections]Direction{Up, Right, Down, Left}

// Position is an integer grid coordinate. Coordinates must fit in int32
// for Key to be lossless.
type Position struct {
	X, Y int
}

// Key is the canonical packed encoding of a Position: the high 32 bits
// hold X, the low 32 bits hold Y (both two's complement).
type Key uint64

// offsets maps each Direction to its (dx, dy) unit step.
var offsets = [numDirections][2]int{
	Up:    {0, -1},
	Right: {1, 0},
	Down:  {0, 1},
	Left:  {-1, 0},
}

var directionNames = [numDirections]string{
	Up:    "up",
	Right: "right",
	Down:  "down",
	Left:  "left",
}
