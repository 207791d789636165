package simulator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cleanbot/grid"
	"github.com/katalvlaran/cleanbot/layout"
	"github.com/katalvlaran/cleanbot/simulator"
)

func mustLayout(t *testing.T, text string) *layout.Layout {
	t.Helper()
	l, err := layout.ParseString(text)
	require.NoError(t, err)
	return l
}

func TestRobot_Sensing(t *testing.T) {
	r := simulator.New(mustLayout(t, "...\n.>#\n...\n"))

	assert.Equal(t, grid.Pos(1, 1), r.Position())
	assert.Equal(t, grid.Right, r.Direction())
	assert.Equal(t, grid.Pos(2, 1), r.PositionAhead())
	assert.True(t, r.BarrierAhead())

	r.TurnLeft()
	assert.Equal(t, grid.Up, r.Direction())
	assert.False(t, r.BarrierAhead())
	r.TurnRight()
	r.TurnRight()
	assert.Equal(t, grid.Down, r.Direction())

	c := r.Counters()
	assert.Equal(t, 3, c.Turns)
	assert.Equal(t, 2, c.Probes)
	assert.Zero(t, c.Moves)
}

func TestRobot_MoveAndCollision(t *testing.T) {
	r := simulator.New(mustLayout(t, ">.\n"), simulator.WithTrace())

	r.Move()
	assert.Equal(t, grid.Pos(1, 0), r.Position())
	r.Move() // off the edge of the room
	assert.Equal(t, grid.Pos(1, 0), r.Position(), "collision leaves the robot in place")

	c := r.Counters()
	assert.Equal(t, 1, c.Moves)
	assert.Equal(t, 1, c.Collisions)
	assert.True(t, r.Cleaned(grid.Pos(0, 0)))
	assert.True(t, r.Cleaned(grid.Pos(1, 0)))
	assert.Equal(t, 2, r.CleanedCount())

	ops := make([]simulator.Op, 0, len(r.Trace()))
	for _, s := range r.Trace() {
		ops = append(ops, s.Op)
	}
	assert.Equal(t, []simulator.Op{simulator.OpStart, simulator.OpMove, simulator.OpCollision}, ops)
	assert.Equal(t, "collision", simulator.OpCollision.String())
}

func TestRobot_NoTraceByDefault(t *testing.T) {
	r := simulator.New(mustLayout(t, "^\n"))
	r.TurnRight()
	assert.Nil(t, r.Trace())
}

func TestRobot_WithStart(t *testing.T) {
	r := simulator.New(mustLayout(t, "^..\n"), simulator.WithStart(grid.Pos(2, 0), grid.Left))
	assert.Equal(t, grid.Pos(2, 0), r.Origin())
	assert.Equal(t, grid.Left, r.Direction())
	assert.True(t, r.Cleaned(grid.Pos(2, 0)))
	assert.False(t, r.Cleaned(grid.Pos(0, 0)))
}

func TestEvaluate_Complete(t *testing.T) {
	r := simulator.New(mustLayout(t, ">..\n"))
	r.Move()
	r.Move()

	rep, err := simulator.Evaluate(r)
	require.NoError(t, err)
	assert.Equal(t, 3, rep.Open)
	assert.Equal(t, 3, rep.Reachable)
	assert.Equal(t, 3, rep.Cleaned)
	assert.Equal(t, 1.0, rep.Coverage)
	assert.True(t, rep.Complete)
	assert.Empty(t, rep.Missed)
	assert.Empty(t, rep.Unreachable)
	assert.Equal(t, 2, rep.Moves)
}

func TestEvaluate_PartialAndDisconnected(t *testing.T) {
	// Left region of 4 cells, a double wall, right region of 2 cells.
	room := mustLayout(t, ">.##.\n..##.\n")
	r := simulator.New(room)
	r.Move()

	rep, err := simulator.Evaluate(r)
	require.NoError(t, err)
	assert.Equal(t, 6, rep.Open)
	assert.Equal(t, 4, rep.Reachable)
	assert.Equal(t, 2, rep.Cleaned)
	assert.InDelta(t, 0.5, rep.Coverage, 1e-9)
	assert.False(t, rep.Complete)
	assert.ElementsMatch(t, []grid.Position{grid.Pos(0, 1), grid.Pos(1, 1)}, rep.Missed)

	require.Len(t, rep.Unreachable, 1)
	assert.Equal(t, 2, rep.Unreachable[0].Clearance)
	assert.Len(t, rep.Unreachable[0].Blockers, 2)
	assert.ElementsMatch(t, []grid.Position{grid.Pos(4, 0), grid.Pos(4, 1)}, rep.Unreachable[0].Cells)
	assert.Contains(t, rep.String(), "cleaned 2/4 reachable cells (50.0%)")
}
