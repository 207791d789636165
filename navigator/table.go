package navigator

import (
	"sort"

	"github.com/katalvlaran/cleanbot/grid"
)

// Table holds, for one owner cell, a route to every other known cell as
// of the moment the owner was current. Routes are composed from the
// tables of neighbors, which may predate cells discovered since, so
// Steps is an upper bound on the distance and not always the minimum.
// A Table is never modified once built.
type Table struct {
	owner   grid.Position
	entries map[grid.Key]Entry
}

// Owner returns the cell the table routes from.
func (t *Table) Owner() grid.Position {
	return t.owner
}

// Len returns the number of targets in the table.
func (t *Table) Len() int {
	return len(t.entries)
}

// Lookup returns the entry for target, if known.
func (t *Table) Lookup(target grid.Position) (Entry, bool) {
	e, ok := t.entries[target.Key()]
	return e, ok
}

// Range calls fn for every (target, entry) pair until fn returns false.
// The order is unspecified.
func (t *Table) Range(fn func(target grid.Position, e Entry) bool) {
	for k, e := range t.entries {
		if !fn(k.Position(), e) {
			return
		}
	}
}

// Targets returns all targets sorted by row, then column.
func (t *Table) Targets() []grid.Position {
	out := make([]grid.Position, 0, len(t.entries))
	for k := range t.entries {
		out = append(out, k.Position())
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

// tableBuilder accumulates entries for a Table under construction.
type tableBuilder struct {
	owner   grid.Position
	entries map[grid.Key]Entry
}

func newTableBuilder(owner grid.Position, sizeHint int) *tableBuilder {
	return &tableBuilder{owner: owner, entries: make(map[grid.Key]Entry, sizeHint)}
}

// offer records e for k when it is strictly shorter than what is known.
func (b *tableBuilder) offer(k grid.Key, e Entry) {
	if cur, ok := b.entries[k]; ok && cur.Steps <= e.Steps {
		return
	}
	b.entries[k] = e
}

// compose offers every entry of via, one step further and through dir,
// skipping the owner itself.
func (b *tableBuilder) compose(via *Table, dir grid.Direction) {
	self := b.owner.Key()
	for k, e := range via.entries {
		if k == self {
			continue
		}
		b.offer(k, Entry{Steps: e.Steps + 1, Direction: dir})
	}
}

// freeze hands the entries over to an immutable Table. The builder must
// not be used afterwards.
func (b *tableBuilder) freeze() *Table {
	t := &Table{owner: b.owner, entries: b.entries}
	b.entries = nil
	return t
}
