package navigator

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/cleanbot/grid"
)

// BestFirstExplorer repeatedly steps toward the nearest frontier cell,
// using per-cell routing tables built from local probes and the tables of
// already visited neighbors.
type BestFirstExplorer struct {
	drv      driver
	index    map[grid.Key]*Table
	frontier *frontier
	stats    Stats
}

// NewBestFirst prepares a best-first explorer for r.
func NewBestFirst(r Robot, opts ...Option) *BestFirstExplorer {
	e := &BestFirstExplorer{}
	e.drv = driver{robot: r, opts: buildOptions(opts), stats: &e.stats}
	return e
}

// BestFirst explores with a new BestFirstExplorer until no reachable
// frontier cell remains.
func BestFirst(r Robot, opts ...Option) error {
	return NewBestFirst(r, opts...).Explore()
}

// Explore runs the traversal to completion from the robot's current cell.
// Calling it again starts over with empty state.
func (e *BestFirstExplorer) Explore() error {
	r := e.drv.robot
	if r == nil {
		return ErrNilRobot
	}
	log := e.drv.opts.Logger

	e.stats = Stats{}
	e.index = make(map[grid.Key]*Table)
	e.frontier = newFrontier()

	for {
		e.stats.Ticks++

		// 1. Become current
		cur := r.Position()
		key := cur.Key()
		e.frontier.remove(key)
		_, revisit := e.index[key]

		// 2. Probe the four directions and build this cell's table
		table, err := e.relax(cur)
		if err != nil {
			return err
		}

		// 3. Freeze it into the index
		e.index[key] = table
		if !revisit {
			log.Debug("visit", zap.Stringer("pos", cur), zap.Int("targets", table.Len()))
			if err = e.drv.visit(cur); err != nil {
				return err
			}
		}
		if n := e.frontier.len(); n > e.stats.MaxFrontier {
			e.stats.MaxFrontier = n
		}

		// 4. Pick the nearest frontier cell known to the table
		target, entry, ok := e.nearest(table)
		if !ok {
			break
		}
		log.Debug("step",
			zap.Stringer("from", cur),
			zap.Stringer("target", target),
			zap.Int("steps", entry.Steps),
			zap.Stringer("dir", entry.Direction),
		)

		// 5. One cell toward it
		if err = e.drv.turnTo(entry.Direction); err != nil {
			return err
		}
		if err = e.drv.move(); err != nil {
			return err
		}
	}

	if n := e.frontier.len(); n > 0 {
		log.Info("frontier abandoned", zap.Int("cells", n))
	}
	log.Info("best-first exploration complete",
		zap.Int("visited", e.stats.Visited),
		zap.Int("moves", e.stats.Moves),
		zap.Int("turns", e.stats.Turns),
		zap.Int("ticks", e.stats.Ticks),
		zap.Int("max_frontier", e.stats.MaxFrontier),
	)

	return nil
}

// relax builds the table of cur. The robot turns right four times and
// ends with its original facing.
func (e *BestFirstExplorer) relax(cur grid.Position) (*Table, error) {
	r := e.drv.robot
	b := newTableBuilder(cur, len(e.index)+e.frontier.len())

	for i := 0; i < len(grid.Directions); i++ {
		if !r.BarrierAhead() {
			dir := r.Direction()
			if !dir.Valid() {
				return nil, fmt.Errorf("%w: robot reports %s", ErrUnreachableDirection, dir)
			}
			ahead := r.PositionAhead().Key()
			b.offer(ahead, Entry{Steps: 1, Direction: dir})
			if via, ok := e.index[ahead]; ok {
				b.compose(via, dir)
			} else {
				e.frontier.add(ahead)
			}
		}
		e.drv.turnRight()
	}

	return b.freeze(), nil
}

// nearest scans the frontier in discovery order for the smallest step
// count in t. Ties keep the earliest cell; a one-step cell ends the scan.
func (e *BestFirstExplorer) nearest(t *Table) (grid.Position, Entry, bool) {
	var (
		best   Entry
		target grid.Key
		found  bool
	)
	e.frontier.each(func(k grid.Key) bool {
		en, ok := t.entries[k]
		if !ok {
			return true
		}
		if !found || en.Steps < best.Steps {
			best, target, found = en, k, true
		}
		return best.Steps > 1
	})

	return target.Position(), best, found
}

// Visited reports whether p became current during the last Explore.
func (e *BestFirstExplorer) Visited(p grid.Position) bool {
	_, ok := e.index[p.Key()]
	return ok
}

// Table returns the latest table built for p.
func (e *BestFirstExplorer) Table(p grid.Position) (*Table, bool) {
	t, ok := e.index[p.Key()]
	return t, ok
}

// Frontier returns the cells still known but unvisited, in discovery order.
// It is empty after a run over a connected room.
func (e *BestFirstExplorer) Frontier() []grid.Position {
	if e.frontier == nil {
		return nil
	}
	out := make([]grid.Position, 0, e.frontier.len())
	e.frontier.each(func(k grid.Key) bool {
		out = append(out, k.Position())
		return true
	})
	return out
}

// Stats returns the counters of the last Explore.
func (e *BestFirstExplorer) Stats() Stats {
	return e.stats
}
