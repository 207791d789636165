package simulator

import (
	"github.com/katalvlaran/cleanbot/grid"
	"github.com/katalvlaran/cleanbot/layout"
)

// Op names a motion call recorded in a trace.
type Op uint8

const (
	OpStart Op = iota
	OpMove
	OpTurnLeft
	OpTurnRight
	OpCollision
)

func (o Op) String() string {
	switch o {
	case OpStart:
		return "start"
	case OpMove:
		return "move"
	case OpTurnLeft:
		return "left"
	case OpTurnRight:
		return "right"
	case OpCollision:
		return "collision"
	}
	return "unknown"
}

// Step is one trace record: the operation and the robot state after it.
type Step struct {
	Op        Op
	Position  grid.Position
	Direction grid.Direction
}

// Counters are the motion totals of a robot.
type Counters struct {
	Moves      int
	Turns      int
	Probes     int
	Collisions int
}

// Option configures a Robot.
type Option func(*Robot)

// WithTrace makes the robot record every motion call for replay.
func WithTrace() Option {
	return func(r *Robot) {
		r.tracing = true
	}
}

// WithStart overrides the layout's start cell and facing.
func WithStart(p grid.Position, d grid.Direction) Option {
	return func(r *Robot) {
		r.pos, r.dir = p, d
	}
}

// Robot is a simulated cleaning robot. It is not safe for concurrent use;
// the navigator drives it from a single goroutine.
type Robot struct {
	room     *layout.Layout
	origin   grid.Position
	pos      grid.Position
	dir      grid.Direction
	cleaned  map[grid.Key]struct{}
	counters Counters
	tracing  bool
	trace    []Step
}

// New places a robot at the layout's start cell.
func New(room *layout.Layout, opts ...Option) *Robot {
	r := &Robot{
		room:    room,
		pos:     room.Start(),
		dir:     room.Facing(),
		cleaned: make(map[grid.Key]struct{}),
	}
	for _, fn := range opts {
		fn(r)
	}
	r.origin = r.pos
	r.cleaned[r.pos.Key()] = struct{}{}
	r.record(OpStart)
	return r
}

// Move advances one cell, or records a collision if a barrier is ahead.
func (r *Robot) Move() {
	next := r.pos.Step(r.dir)
	if !r.room.Open(next) {
		r.counters.Collisions++
		r.record(OpCollision)
		return
	}
	r.pos = next
	r.cleaned[next.Key()] = struct{}{}
	r.counters.Moves++
	r.record(OpMove)
}

// TurnLeft rotates 90° counter-clockwise.
func (r *Robot) TurnLeft() {
	r.dir = r.dir.TurnLeft()
	r.counters.Turns++
	r.record(OpTurnLeft)
}

// TurnRight rotates 90° clockwise.
func (r *Robot) TurnRight() {
	r.dir = r.dir.TurnRight()
	r.counters.Turns++
	r.record(OpTurnRight)
}

// Direction returns the current facing.
func (r *Robot) Direction() grid.Direction { return r.dir }

// BarrierAhead reports whether the cell ahead is not floor.
func (r *Robot) BarrierAhead() bool {
	r.counters.Probes++
	return !r.room.Open(r.pos.Step(r.dir))
}

// Position returns the current cell.
func (r *Robot) Position() grid.Position { return r.pos }

// PositionAhead returns the cell ahead without checking it.
func (r *Robot) PositionAhead() grid.Position { return r.pos.Step(r.dir) }

// Origin returns the cell the robot started on.
func (r *Robot) Origin() grid.Position { return r.origin }

// Room returns the layout the robot moves in.
func (r *Robot) Room() *layout.Layout { return r.room }

// Counters returns the motion totals so far.
func (r *Robot) Counters() Counters { return r.counters }

// Cleaned reports whether the robot has stood on p.
func (r *Robot) Cleaned(p grid.Position) bool {
	_, ok := r.cleaned[p.Key()]
	return ok
}

// CleanedCount returns the number of distinct cells the robot has stood on.
func (r *Robot) CleanedCount() int { return len(r.cleaned) }

// Trace returns the recorded steps, or nil unless WithTrace was given.
func (r *Robot) Trace() []Step { return r.trace }

func (r *Robot) record(op Op) {
	if !r.tracing {
		return
	}
	r.trace = append(r.trace, Step{Op: op, Position: r.pos, Direction: r.dir})
}
