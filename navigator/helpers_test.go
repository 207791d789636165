package navigator_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cleanbot/grid"
	"github.com/katalvlaran/cleanbot/layout"
	"github.com/katalvlaran/cleanbot/simulator"
)

const (
	// isolatedRoom is a single floor cell walled in on all four sides.
	isolatedRoom = "###\n#^#\n###\n"
	// corridorRoom is a 1×5 corridor, start at the west end facing east.
	corridorRoom = "#######\n#>....#\n#######\n"
	// squareRoom is a fully open 2×2 room, start at (0,0).
	squareRoom = "^.\n..\n"
	// splitRoom has two regions separated by a solid wall.
	splitRoom = ">..#..\n...#..\n...#..\n"
	// plusRoom is a fully open 3×3 room with the start in the middle.
	plusRoom = "...\n.^.\n...\n"
)

func mustLayout(t testing.TB, text string) *layout.Layout {
	t.Helper()
	l, err := layout.ParseString(text)
	require.NoError(t, err)
	return l
}

// generatedRooms returns a mix of seeded random rooms and mazes.
func generatedRooms(t testing.TB) map[string]*layout.Layout {
	t.Helper()
	cfgs := []layout.GenerateConfig{
		{Width: 9, Height: 6, Density: 0, Seed: 1},
		{Width: 14, Height: 9, Density: 0.2, Seed: 2, Facing: grid.Right},
		{Width: 14, Height: 9, Density: 0.35, Seed: 3, Facing: grid.Down},
		{Width: 20, Height: 12, Density: 0.3, Seed: 4, Facing: grid.Left},
		{Width: 17, Height: 11, Maze: true, Seed: 5},
		{Width: 17, Height: 11, Maze: true, Braiding: 0.5, Seed: 6},
		{Width: 21, Height: 15, Maze: true, Braiding: 1, Seed: 7, Facing: grid.Right},
	}
	out := make(map[string]*layout.Layout, len(cfgs))
	for _, cfg := range cfgs {
		l, err := layout.Generate(cfg)
		require.NoError(t, err)
		out[fmt.Sprintf("%dx%d/density=%.2f/maze=%v/braid=%.1f/seed=%d",
			cfg.Width, cfg.Height, cfg.Density, cfg.Maze, cfg.Braiding, cfg.Seed)] = l
	}
	return out
}

// visitRecorder collects the cells passed to an OnVisit hook, in order.
type visitRecorder struct {
	cells []grid.Position
}

func (v *visitRecorder) hook(p grid.Position) error {
	v.cells = append(v.cells, p)
	return nil
}

// fakeRobot only turns; every other capability is inert.
type fakeRobot struct {
	dir         grid.Direction
	left, right int
}

func (f *fakeRobot) Move()                        {}
func (f *fakeRobot) TurnLeft()                    { f.left++; f.dir = f.dir.TurnLeft() }
func (f *fakeRobot) TurnRight()                   { f.right++; f.dir = f.dir.TurnRight() }
func (f *fakeRobot) Direction() grid.Direction    { return f.dir }
func (f *fakeRobot) BarrierAhead() bool           { return true }
func (f *fakeRobot) Position() grid.Position      { return grid.Position{} }
func (f *fakeRobot) PositionAhead() grid.Position { return grid.Position{}.Step(f.dir) }

// farSighted misreports the cell ahead as two cells away, which breaks
// the adjacency of consecutive stack frames.
type farSighted struct {
	*simulator.Robot
}

func (f farSighted) PositionAhead() grid.Position {
	return f.Robot.Position().Step(f.Robot.Direction()).Step(f.Robot.Direction())
}

// offGrid reports coordinates shifted past the int32 range.
type offGrid struct {
	*simulator.Robot
}

const offGridShift = 1 << 32

func (o offGrid) Position() grid.Position {
	p := o.Robot.Position()
	return grid.Pos(p.X+offGridShift, p.Y)
}

func (o offGrid) PositionAhead() grid.Position {
	p := o.Robot.PositionAhead()
	return grid.Pos(p.X+offGridShift, p.Y)
}
