package gridgraph

import (
	"github.com/katalvlaran/cleanbot/grid"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice
// where open[y][x] is true for floor cells.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(open [][]bool) (*GridGraph, error) {
	if len(open) == 0 || len(open[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(open), len(open[0])
	for _, row := range open {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]bool, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]bool, w)
		copy(cells[y], open[y])
	}

	return &GridGraph{Width: w, Height: h, open: cells}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Open reports whether p is a floor cell. Cells outside the grid are barriers.
// Complexity: O(1).
func (gg *GridGraph) Open(p grid.Position) bool {
	return gg.InBounds(p.X, p.Y) && gg.open[p.Y][p.X]
}

// OpenCount returns the number of floor cells.
// Complexity: O(W×H).
func (gg *GridGraph) OpenCount() int {
	n := 0
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if gg.open[y][x] {
				n++
			}
		}
	}
	return n
}

// Index maps p to its row-major index, or -1 when p is out of bounds.
// Complexity: O(1).
func (gg *GridGraph) Index(p grid.Position) int {
	if !gg.InBounds(p.X, p.Y) {
		return -1
	}
	return gg.index(p.X, p.Y)
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

// Position converts a row-major index back to a grid.Position.
// Complexity: O(1).
func (gg *GridGraph) Position(idx int) grid.Position {
	x, y := gg.Coordinate(idx)
	return grid.Pos(x, y)
}
