package navigator

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/cleanbot/grid"
)

var (
	// ErrNilRobot is returned when an explorer is given a nil Robot.
	ErrNilRobot = errors.New("navigator: robot is nil")

	// ErrUnreachableDirection indicates a turn toward a value outside the
	// four cardinal directions. It signals a defect upstream.
	ErrUnreachableDirection = errors.New("navigator: unreachable direction")

	// ErrMoveLimit indicates the run exceeded the WithMaxMoves budget.
	ErrMoveLimit = errors.New("navigator: move limit exceeded")

	// ErrUnknownStrategy is returned by Lookup for an unregistered name.
	ErrUnknownStrategy = errors.New("navigator: unknown strategy")
)

// Robot is the sensing and motion capability set an explorer drives.
// Every call is synchronous and assumed to succeed.
type Robot interface {
	// Move advances one cell in the current facing. Moving into a barrier
	// is undefined; explorers always check first.
	Move()
	// TurnLeft rotates 90° counter-clockwise without moving.
	TurnLeft()
	// TurnRight rotates 90° clockwise without moving.
	TurnRight()
	// Direction returns the current facing.
	Direction() grid.Direction
	// BarrierAhead reports whether the cell ahead is an obstacle or outside the room.
	BarrierAhead() bool
	// Position returns the current cell.
	Position() grid.Position
	// PositionAhead returns the cell ahead without checking passability.
	PositionAhead() grid.Position
}

// Entry is one row of a Table: the number of unit moves to a target and
// the first hop to take from the table's owner to get there.
type Entry struct {
	Steps     int
	Direction grid.Direction
}

// Stats collects counters of a single exploration.
type Stats struct {
	// Visited is the number of distinct cells that became current.
	Visited int
	// Moves and Turns count motion calls issued by the explorer.
	Moves int
	Turns int
	// Pushes, Pops and Backtracks are depth-first only.
	Pushes     int
	Pops       int
	Backtracks int
	MaxStack   int
	// Ticks and MaxFrontier are best-first only. Each tick builds one Table.
	Ticks       int
	MaxFrontier int
}

// Option configures an explorer.
type Option func(*Options)

// Options holds the settings shared by both explorers.
type Options struct {
	// Logger receives debug events per cell and a summary per run.
	Logger *zap.Logger

	// OnVisit, if non-nil, is called the first time a cell becomes current.
	// Returning an error aborts the exploration with that error.
	OnVisit func(p grid.Position) error

	// MaxMoves caps the number of Move calls. Negative means unlimited.
	MaxMoves int

	// ShortestTurns replaces three right turns with one left turn.
	ShortestTurns bool
}

// DefaultOptions returns Options with a no-op logger, no hook, no move
// limit and right-turn-only turning.
func DefaultOptions() Options {
	return Options{
		Logger:        zap.NewNop(),
		OnVisit:       nil,
		MaxMoves:      -1,
		ShortestTurns: false,
	}
}

// WithLogger sets the logging sink. A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnVisit installs fn as the visit hook.
func WithOnVisit(fn func(p grid.Position) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithMaxMoves caps the number of moves; n < 0 disables the cap.
func WithMaxMoves(n int) Option {
	return func(o *Options) {
		o.MaxMoves = n
	}
}

// WithShortestTurns lets the explorer turn left once where three right
// turns would otherwise be issued.
func WithShortestTurns() Option {
	return func(o *Options) {
		o.ShortestTurns = true
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
