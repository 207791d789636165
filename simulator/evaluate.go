package simulator

import (
	"fmt"

	"github.com/katalvlaran/cleanbot/grid"
)

// Region is a connected area of floor the robot did not reach at all.
type Region struct {
	// Cells lists the region's cells in BFS order from its first cell.
	Cells []grid.Position
	// Blockers are the fewest barrier cells that would have to be removed
	// to join the region to the start region, from the start side out.
	Blockers []grid.Position
	// Clearance is len(Blockers).
	Clearance int
}

// Report scores a finished run.
type Report struct {
	// Open counts all floor cells of the room.
	Open int
	// Reachable counts floor cells connected to the start cell.
	Reachable int
	// Cleaned counts distinct cells the robot stood on.
	Cleaned int
	// Coverage is the fraction of reachable cells cleaned.
	Coverage float64
	// Complete is true when every reachable cell was cleaned.
	Complete bool
	// Missed lists reachable cells that were never cleaned.
	Missed []grid.Position
	// Unreachable lists floor regions disconnected from the start.
	Unreachable []Region

	Counters
}

// String renders a one-line summary.
func (rep Report) String() string {
	return fmt.Sprintf("cleaned %d/%d reachable cells (%.1f%%), %d open, %d unreachable regions, moves=%d turns=%d collisions=%d",
		rep.Cleaned, rep.Reachable, 100*rep.Coverage, rep.Open, len(rep.Unreachable),
		rep.Moves, rep.Turns, rep.Collisions)
}

// Evaluate scores the run recorded by r against its room.
func Evaluate(r *Robot) (Report, error) {
	room := r.Room()
	gg := room.Graph()
	comps := gg.ConnectedComponents()
	home, err := gg.ComponentOf(comps, r.Origin())
	if err != nil {
		return Report{}, fmt.Errorf("simulator: locate start region: %w", err)
	}

	rep := Report{
		Open:      gg.OpenCount(),
		Reachable: len(comps[home]),
		Cleaned:   r.CleanedCount(),
		Counters:  r.Counters(),
	}
	for _, idx := range comps[home] {
		if p := gg.Position(idx); !r.Cleaned(p) {
			rep.Missed = append(rep.Missed, p)
		}
	}
	for ci, comp := range comps {
		if ci == home {
			continue
		}
		blockers, err := gg.Bridge(comps, home, ci)
		if err != nil {
			return Report{}, fmt.Errorf("simulator: bridge region %d: %w", ci, err)
		}
		region := Region{
			Cells:     make([]grid.Position, len(comp)),
			Blockers:  blockers,
			Clearance: len(blockers),
		}
		for i, idx := range comp {
			region.Cells[i] = gg.Position(idx)
		}
		rep.Unreachable = append(rep.Unreachable, region)
	}

	if rep.Reachable > 0 {
		rep.Coverage = float64(rep.Reachable-len(rep.Missed)) / float64(rep.Reachable)
	}
	rep.Complete = len(rep.Missed) == 0

	return rep, nil
}
