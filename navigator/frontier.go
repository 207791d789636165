package navigator

import "github.com/katalvlaran/cleanbot/grid"

// compactThreshold is the minimum backing length before removals trigger
// compaction of the frontier.
const compactThreshold = 32

// frontier is a set of cell keys that remembers insertion order, so that
// target selection is deterministic across runs.
type frontier struct {
	keys  []grid.Key
	alive []bool
	index map[grid.Key]int
	size  int
}

func newFrontier() *frontier {
	return &frontier{index: make(map[grid.Key]int)}
}

// add inserts k and reports whether it was new.
func (f *frontier) add(k grid.Key) bool {
	if _, ok := f.index[k]; ok {
		return false
	}
	f.index[k] = len(f.keys)
	f.keys = append(f.keys, k)
	f.alive = append(f.alive, true)
	f.size++
	return true
}

// remove deletes k and reports whether it was present.
func (f *frontier) remove(k grid.Key) bool {
	i, ok := f.index[k]
	if !ok {
		return false
	}
	delete(f.index, k)
	f.alive[i] = false
	f.size--
	if len(f.keys) > compactThreshold && f.size*2 < len(f.keys) {
		f.compact()
	}
	return true
}

func (f *frontier) contains(k grid.Key) bool {
	_, ok := f.index[k]
	return ok
}

func (f *frontier) len() int {
	return f.size
}

// each calls fn on live keys in insertion order until fn returns false.
func (f *frontier) each(fn func(k grid.Key) bool) {
	for i, k := range f.keys {
		if f.alive[i] && !fn(k) {
			return
		}
	}
}

func (f *frontier) compact() {
	n := 0
	for i, k := range f.keys {
		if !f.alive[i] {
			continue
		}
		f.keys[n] = k
		f.alive[n] = true
		f.index[k] = n
		n++
	}
	f.keys = f.keys[:n]
	f.alive = f.alive[:n]
}
