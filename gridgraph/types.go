package gridgraph

import (
	"errors"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrOutOfBounds indicates a cell outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: cell out of bounds")
	// ErrBlocked indicates a search started on a barrier cell.
	ErrBlocked = errors.New("gridgraph: cell is a barrier")
	// ErrComponentIndex indicates a requested component index is out of range.
	ErrComponentIndex = errors.New("gridgraph: component index out of range")
	// ErrNoPath indicates no path exists between two components.
	ErrNoPath = errors.New("gridgraph: no path between specified components")
)

// Unreachable is the Distances value of cells that cannot be reached.
const Unreachable = -1

// GridGraph treats a 2D open/barrier grid as a graph. It is immutable once built.
// Width and Height define dimensions; open[y][x] reports floor at (x, y).
// Cells are numbered row-major: index = y*Width + x.
type GridGraph struct {
	Width, Height int
	open          [][]bool
}

// neighborOffsets lists the 4-connected unit steps: N, E, S, W.
var neighborOffsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
