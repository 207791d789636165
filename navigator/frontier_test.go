package navigator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cleanbot/grid"
)

func frontierKeys(f *frontier) []grid.Key {
	var out []grid.Key
	f.each(func(k grid.Key) bool {
		out = append(out, k)
		return true
	})
	return out
}

func TestFrontier_InsertionOrder(t *testing.T) {
	f := newFrontier()
	a, b, c := grid.Pos(0, 0).Key(), grid.Pos(5, -2).Key(), grid.Pos(1, 1).Key()

	assert.True(t, f.add(a))
	assert.True(t, f.add(b))
	assert.False(t, f.add(a), "duplicates are ignored")
	assert.True(t, f.add(c))
	assert.Equal(t, 3, f.len())
	assert.Equal(t, []grid.Key{a, b, c}, frontierKeys(f))

	assert.True(t, f.remove(b))
	assert.False(t, f.remove(b))
	assert.False(t, f.contains(b))
	assert.Equal(t, []grid.Key{a, c}, frontierKeys(f))

	// Re-adding puts the cell at the back.
	assert.True(t, f.add(b))
	assert.Equal(t, []grid.Key{a, c, b}, frontierKeys(f))
}

func TestFrontier_Compaction(t *testing.T) {
	f := newFrontier()
	const n = 100
	for i := 0; i < n; i++ {
		f.add(grid.Pos(i, 0).Key())
	}
	for i := 0; i < n; i += 3 {
		require.True(t, f.remove(grid.Pos(i, 0).Key()))
	}
	for i := 1; i < n; i += 3 {
		require.True(t, f.remove(grid.Pos(i, 0).Key()))
	}

	assert.Less(t, len(f.keys), n, "backing slice was compacted")
	assert.Equal(t, len(f.keys), len(f.alive))

	var want []grid.Key
	for i := 2; i < n; i += 3 {
		want = append(want, grid.Pos(i, 0).Key())
	}
	assert.Equal(t, want, frontierKeys(f))
	assert.Equal(t, len(want), f.len())
	for _, k := range want {
		assert.True(t, f.contains(k))
		assert.Equal(t, k, f.keys[f.index[k]], "index follows compaction")
	}
}

func TestFrontier_EachStopsEarly(t *testing.T) {
	f := newFrontier()
	for i := 0; i < 5; i++ {
		f.add(grid.Pos(0, i).Key())
	}
	calls := 0
	f.each(func(grid.Key) bool {
		calls++
		return calls < 2
	})
	assert.Equal(t, 2, calls)
}

func TestTableBuilder_StrictImprovement(t *testing.T) {
	owner := grid.Pos(0, 0)
	target := grid.Pos(3, 0).Key()

	b := newTableBuilder(owner, 4)
	b.offer(target, Entry{Steps: 3, Direction: grid.Right})
	b.offer(target, Entry{Steps: 3, Direction: grid.Down})
	b.offer(target, Entry{Steps: 5, Direction: grid.Left})
	tbl := b.freeze()

	en, ok := tbl.Lookup(grid.Pos(3, 0))
	require.True(t, ok)
	assert.Equal(t, Entry{Steps: 3, Direction: grid.Right}, en)

	// Composing through a neighbor skips the owner and adds one step.
	b = newTableBuilder(grid.Pos(1, 0), 4)
	b.offer(owner.Key(), Entry{Steps: 1, Direction: grid.Left})
	b.compose(tbl, grid.Left)
	via := b.freeze()
	assert.Equal(t, 2, via.Len())
	en, _ = via.Lookup(grid.Pos(3, 0))
	assert.Equal(t, Entry{Steps: 4, Direction: grid.Left}, en)

	b = newTableBuilder(grid.Pos(3, 0), 1)
	b.compose(tbl, grid.Left)
	assert.Zero(t, b.freeze().Len(), "the owner never appears in its own table")
}
