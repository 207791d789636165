package gridgraph

import "github.com/katalvlaran/cleanbot/grid"

// Bridge returns the fewest barrier cells that must be cleared to join
// region srcComp to region dstComp, as indexed in comps (from
// ConnectedComponents). The cells are listed in walking order from the
// source region; their count is the clearance.
//
// Behavior:
//  1. Validate component indices.
//  2. Expand in layers of equal clearance, starting from every srcComp
//     cell at clearance 0:
//     • an open neighbor joins the current layer,
//     • a barrier neighbor is deferred to the next layer.
//  3. Stop when any dstComp cell is dequeued.
//  4. Walk predecessors back and keep the barrier cells.
//
// Complexity: O(W·H) time, every cell is enqueued at most once.
// Memory:     O(W·H) for the seen and predecessor slices.
func (gg *GridGraph) Bridge(comps [][]int, srcComp, dstComp int) ([]grid.Position, error) {
	if srcComp < 0 || srcComp >= len(comps) || dstComp < 0 || dstComp >= len(comps) {
		return nil, ErrComponentIndex
	}

	n := gg.Width * gg.Height
	isDst := make([]bool, n)
	for _, i := range comps[dstComp] {
		isDst[i] = true
	}
	seen := make([]bool, n)
	prev := make([]int, n)
	for i := range prev {
		prev[i] = -1
	}

	layer := make([]int, 0, len(comps[srcComp]))
	for _, i := range comps[srcComp] {
		seen[i] = true
		layer = append(layer, i)
	}

	target := -1
	for len(layer) > 0 && target < 0 {
		var next []int
		for qi := 0; qi < len(layer); qi++ {
			u := layer[qi]
			if isDst[u] {
				target = u
				break
			}
			ux, uy := gg.Coordinate(u)
			for _, d := range neighborOffsets {
				vx, vy := ux+d[0], uy+d[1]
				if !gg.InBounds(vx, vy) {
					continue
				}
				v := gg.index(vx, vy)
				if seen[v] {
					continue
				}
				seen[v] = true
				prev[v] = u
				if gg.open[vy][vx] {
					layer = append(layer, v)
				} else {
					next = append(next, v)
				}
			}
		}
		layer = next
	}

	if target < 0 {
		return nil, ErrNoPath
	}

	var blockers []grid.Position
	for at := target; at >= 0; at = prev[at] {
		x, y := gg.Coordinate(at)
		if !gg.open[y][x] {
			blockers = append(blockers, grid.Pos(x, y))
		}
	}
	for i, j := 0, len(blockers)-1; i < j; i, j = i+1, j-1 {
		blockers[i], blockers[j] = blockers[j], blockers[i]
	}
	return blockers, nil
}
