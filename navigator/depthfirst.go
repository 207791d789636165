package navigator

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/cleanbot/grid"
)

// frame is one level of the depth-first stack. left counts the directions
// of grid.Directions not yet tried; the next one is grid.Directions[left-1].
type frame struct {
	pos  grid.Position
	left int
}

func newFrame(p grid.Position) frame {
	return frame{pos: p, left: len(grid.Directions)}
}

// DepthFirstExplorer covers every reachable cell with an explicit stack
// of frames, backtracking by walking each tree edge in reverse.
type DepthFirstExplorer struct {
	drv     driver
	stack   []frame
	visited map[grid.Key]struct{}
	stats   Stats
}

// NewDepthFirst prepares a depth-first explorer for r.
func NewDepthFirst(r Robot, opts ...Option) *DepthFirstExplorer {
	e := &DepthFirstExplorer{}
	e.drv = driver{robot: r, opts: buildOptions(opts), stats: &e.stats}
	return e
}

// DepthFirst explores with a new DepthFirstExplorer until the stack is empty.
func DepthFirst(r Robot, opts ...Option) error {
	return NewDepthFirst(r, opts...).Explore()
}

// Explore runs the traversal to completion from the robot's current cell.
// Calling it again starts over with empty state.
func (e *DepthFirstExplorer) Explore() error {
	r := e.drv.robot
	if r == nil {
		return ErrNilRobot
	}
	log := e.drv.opts.Logger

	// 1. Reset state and seed the stack with the start cell
	e.stats = Stats{}
	e.visited = make(map[grid.Key]struct{})
	e.stack = append(e.stack[:0], newFrame(r.Position()))
	e.stats.Pushes = 1
	e.stats.MaxStack = 1

	for len(e.stack) > 0 {
		top := &e.stack[len(e.stack)-1]

		// 2. Mark the current cell
		if err := e.mark(top.pos); err != nil {
			return err
		}

		// 3. Exhausted frame: pop and walk back to the parent
		if top.left == 0 {
			child := top.pos
			e.stack = e.stack[:len(e.stack)-1]
			e.stats.Pops++
			if len(e.stack) == 0 {
				break
			}
			parent := e.stack[len(e.stack)-1].pos
			dir, err := grid.DeltaToDirection(child, parent)
			if err != nil {
				return fmt.Errorf("navigator: backtrack: %w", err)
			}
			if err = e.drv.turnTo(dir); err != nil {
				return err
			}
			if err = e.drv.move(); err != nil {
				return err
			}
			e.stats.Backtracks++
			log.Debug("backtrack", zap.Stringer("from", child), zap.Stringer("to", parent))
			continue
		}

		// 4. Try the next direction of this frame
		top.left--
		dir := grid.Directions[top.left]
		if err := e.drv.turnTo(dir); err != nil {
			return err
		}
		ahead := r.PositionAhead()
		if _, seen := e.visited[ahead.Key()]; seen {
			continue
		}
		if r.BarrierAhead() {
			continue
		}

		// 5. Advance and descend
		if err := e.drv.move(); err != nil {
			return err
		}
		e.stack = append(e.stack, newFrame(ahead))
		e.stats.Pushes++
		if len(e.stack) > e.stats.MaxStack {
			e.stats.MaxStack = len(e.stack)
		}
	}

	log.Info("depth-first exploration complete",
		zap.Int("visited", e.stats.Visited),
		zap.Int("moves", e.stats.Moves),
		zap.Int("turns", e.stats.Turns),
		zap.Int("max_stack", e.stats.MaxStack),
	)

	return nil
}

func (e *DepthFirstExplorer) mark(p grid.Position) error {
	k := p.Key()
	if _, seen := e.visited[k]; seen {
		return nil
	}
	e.visited[k] = struct{}{}
	e.drv.opts.Logger.Debug("visit", zap.Stringer("pos", p))
	return e.drv.visit(p)
}

// Visited reports whether p became current during the last Explore.
func (e *DepthFirstExplorer) Visited(p grid.Position) bool {
	_, ok := e.visited[p.Key()]
	return ok
}

// StackDepth returns the number of frames left on the stack; it is zero
// after a completed run.
func (e *DepthFirstExplorer) StackDepth() int {
	return len(e.stack)
}

// Stats returns the counters of the last Explore.
func (e *DepthFirstExplorer) Stats() Stats {
	return e.stats
}
