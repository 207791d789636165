package grid_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cleanbot/grid"
)

func TestDirection_TurnCycle(t *testing.T) {
	for _, d := range grid.Directions {
		assert.Equal(t, d, d.TurnRight().TurnLeft(), "right then left from %s", d)
		assert.Equal(t, d, d.TurnLeft().TurnRight(), "left then right from %s", d)
		assert.Equal(t, d, d.TurnRight().TurnRight().TurnRight().TurnRight(), "full turn from %s", d)
		assert.Equal(t, d.Opposite(), d.TurnRight().TurnRight())
	}
	assert.Equal(t, grid.Right, grid.Up.TurnRight())
	assert.Equal(t, grid.Left, grid.Up.TurnLeft())
	assert.Equal(t, grid.Up, grid.Left.TurnRight())
}

func TestDirection_Invalid(t *testing.T) {
	bad := grid.Direction(7)
	assert.False(t, bad.Valid())
	assert.Equal(t, bad, bad.TurnRight())
	assert.Equal(t, bad, bad.TurnLeft())
	assert.Equal(t, "direction(7)", bad.String())

	dx, dy := bad.Offset()
	assert.Zero(t, dx)
	assert.Zero(t, dy)
}

func TestParseDirection(t *testing.T) {
	for _, d := range grid.Directions {
		got, err := grid.ParseDirection(d.String())
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}

	got, err := grid.ParseDirection("  DOWN ")
	require.NoError(t, err)
	assert.Equal(t, grid.Down, got)

	_, err = grid.ParseDirection("north")
	assert.ErrorIs(t, err, grid.ErrInvalidDirection)
}

func TestRightTurns(t *testing.T) {
	cases := []struct {
		from, to grid.Direction
		want     int
	}{
		{grid.Up, grid.Up, 0},
		{grid.Up, grid.Right, 1},
		{grid.Up, grid.Down, 2},
		{grid.Up, grid.Left, 3},
		{grid.Left, grid.Up, 1},
		{grid.Down, grid.Right, 3},
	}
	for _, tc := range cases {
		got, err := grid.RightTurns(tc.from, tc.to)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%s -> %s", tc.from, tc.to)
	}

	_, err := grid.RightTurns(grid.Up, grid.Direction(4))
	assert.ErrorIs(t, err, grid.ErrInvalidDirection)
	_, err = grid.RightTurns(grid.Direction(9), grid.Up)
	assert.ErrorIs(t, err, grid.ErrInvalidDirection)
}

func TestPosition_Step(t *testing.T) {
	p := grid.Pos(3, 3)
	assert.Equal(t, grid.Pos(3, 2), p.Step(grid.Up))
	assert.Equal(t, grid.Pos(4, 3), p.Step(grid.Right))
	assert.Equal(t, grid.Pos(3, 4), p.Step(grid.Down))
	assert.Equal(t, grid.Pos(2, 3), p.Step(grid.Left))
	assert.Equal(t, p, p.Step(grid.Direction(5)))
}

func TestKey_RoundTrip(t *testing.T) {
	cases := []grid.Position{
		grid.Pos(0, 0),
		grid.Pos(1, 2),
		grid.Pos(-1, 0),
		grid.Pos(0, -1),
		grid.Pos(-2147483648, 2147483647),
	}
	seen := make(map[grid.Key]grid.Position)
	for _, p := range cases {
		k := p.Key()
		assert.Equal(t, p, k.Position())
		if prev, dup := seen[k]; dup {
			t.Fatalf("key collision between %s and %s", prev, p)
		}
		seen[k] = p
	}
	// (1,0) and (0,1) must not collide the way naive sums or concatenations do.
	assert.NotEqual(t, grid.Pos(1, 0).Key(), grid.Pos(0, 1).Key())
}

func TestPosition_InKeyRange(t *testing.T) {
	assert.True(t, grid.Pos(math.MaxInt32, math.MinInt32).InKeyRange())
	assert.True(t, grid.Pos(-3, 7).InKeyRange())

	wide := grid.Pos(math.MaxInt32+1, 0)
	assert.False(t, wide.InKeyRange())
	assert.False(t, grid.Pos(0, math.MinInt32-1).InKeyRange())
	// Outside the range the encoding wraps and collides.
	assert.Equal(t, grid.Pos(math.MinInt32, 0).Key(), wide.Key())
}

func TestDeltaToDirection(t *testing.T) {
	origin := grid.Pos(5, 5)
	for _, d := range grid.Directions {
		got, err := grid.DeltaToDirection(origin, origin.Step(d))
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}

	invalid := []grid.Position{
		origin,           // same cell
		grid.Pos(6, 6),   // diagonal
		grid.Pos(4, 4),   // diagonal
		grid.Pos(7, 5),   // two cells apart
		grid.Pos(5, 105), // far away
	}
	for _, to := range invalid {
		_, err := grid.DeltaToDirection(origin, to)
		assert.ErrorIs(t, err, grid.ErrInvalidAdjacency, "to %s", to)
	}
}
