package navigator

import (
	"fmt"

	"github.com/katalvlaran/cleanbot/grid"
)

// TurnTo rotates r with right turns until it faces target and returns the
// number of turns issued (0..3). The count is computed up front rather
// than by polling Direction after every turn.
func TurnTo(r Robot, target grid.Direction) (int, error) {
	return turnTo(r, target, false)
}

func turnTo(r Robot, target grid.Direction, shortest bool) (int, error) {
	if !target.Valid() {
		return 0, fmt.Errorf("%w: target %s", ErrUnreachableDirection, target)
	}
	facing := r.Direction()
	n, err := grid.RightTurns(facing, target)
	if err != nil {
		return 0, fmt.Errorf("%w: facing %s: %w", ErrUnreachableDirection, facing, err)
	}
	if shortest && n == 3 {
		r.TurnLeft()
		return 1, nil
	}
	for i := 0; i < n; i++ {
		r.TurnRight()
	}
	return n, nil
}

// driver issues motion calls on behalf of an explorer and keeps its
// counters and move budget.
type driver struct {
	robot Robot
	opts  Options
	stats *Stats
}

func (d *driver) turnTo(target grid.Direction) error {
	n, err := turnTo(d.robot, target, d.opts.ShortestTurns)
	d.stats.Turns += n
	return err
}

func (d *driver) turnRight() {
	d.robot.TurnRight()
	d.stats.Turns++
}

func (d *driver) move() error {
	if d.opts.MaxMoves >= 0 && d.stats.Moves >= d.opts.MaxMoves {
		return fmt.Errorf("%w: %d", ErrMoveLimit, d.opts.MaxMoves)
	}
	d.robot.Move()
	d.stats.Moves++
	return nil
}

// visit runs the OnVisit hook for p. A cell outside the key range would
// alias another cell in the navigator's maps and is rejected.
func (d *driver) visit(p grid.Position) error {
	if !p.InKeyRange() {
		return fmt.Errorf("navigator: visit %s: %w", p, grid.ErrKeyRange)
	}
	d.stats.Visited++
	if d.opts.OnVisit == nil {
		return nil
	}
	if err := d.opts.OnVisit(p); err != nil {
		return fmt.Errorf("navigator: OnVisit hook for %s: %w", p, err)
	}
	return nil
}
