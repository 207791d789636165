package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/cleanbot/grid"
)

// ConnectedComponents finds all contiguous regions of open cells under
// 4-connectivity. Regions are ordered by their first cell in row-major
// order; each region lists cell-indices (row-major) in BFS order from
// that first cell.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	total := gg.Width * gg.Height
	seen := make([]bool, total)
	var comps [][]int

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.open[y][x] {
				continue // barrier
			}
			i0 := gg.index(x, y)
			if seen[i0] {
				continue
			}
			// BFS to collect component
			queue := []int{i0}
			seen[i0] = true

			for qi := 0; qi < len(queue); qi++ {
				ux, uy := gg.Coordinate(queue[qi])
				for _, d := range neighborOffsets {
					vx, vy := ux+d[0], uy+d[1]
					if !gg.InBounds(vx, vy) || !gg.open[vy][vx] {
						continue
					}
					vi := gg.index(vx, vy)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			comps = append(comps, queue)
		}
	}
	return comps
}

// ComponentOf returns the index into comps of the region containing p.
// Returns ErrOutOfBounds for cells outside the grid and ErrBlocked for barriers.
func (gg *GridGraph) ComponentOf(comps [][]int, p grid.Position) (int, error) {
	if !gg.InBounds(p.X, p.Y) {
		return -1, fmt.Errorf("%w: %s", ErrOutOfBounds, p)
	}
	if !gg.open[p.Y][p.X] {
		return -1, fmt.Errorf("%w: %s", ErrBlocked, p)
	}
	target := gg.index(p.X, p.Y)
	for ci, comp := range comps {
		for _, idx := range comp {
			if idx == target {
				return ci, nil
			}
		}
	}
	return -1, fmt.Errorf("%w: %s in no component", ErrComponentIndex, p)
}

// Distances returns the BFS step count from p to every cell (row-major),
// with Unreachable for barriers and cells in other regions.
//
// Time:   O(W·H).
// Memory: O(W·H).
func (gg *GridGraph) Distances(p grid.Position) ([]int, error) {
	if !gg.InBounds(p.X, p.Y) {
		return nil, fmt.Errorf("%w: %s", ErrOutOfBounds, p)
	}
	if !gg.open[p.Y][p.X] {
		return nil, fmt.Errorf("%w: %s", ErrBlocked, p)
	}

	dist := make([]int, gg.Width*gg.Height)
	for i := range dist {
		dist[i] = Unreachable
	}
	src := gg.index(p.X, p.Y)
	dist[src] = 0
	queue := []int{src}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		ux, uy := gg.Coordinate(u)
		for _, d := range neighborOffsets {
			vx, vy := ux+d[0], uy+d[1]
			if !gg.InBounds(vx, vy) || !gg.open[vy][vx] {
				continue
			}
			v := gg.index(vx, vy)
			if dist[v] == Unreachable {
				dist[v] = dist[u] + 1
				queue = append(queue, v)
			}
		}
	}
	return dist, nil
}
