package core

import "fmt"

// Index is a dense, zero-based element identifier inside one element collection
// (vertices of a point set, entries of an attribute store).
// It is strictly 32-bit, allowing for max 4 Billion elements per collection.
type Index uint32

// NoIndex is the sentinel for "no index": removed slots after compaction,
// unassigned colocation entries and absent mappings.
const NoIndex = ^Index(0)

// MaxIndex is the largest usable Index value.
const MaxIndex = NoIndex - 1

// Valid reports whether i is not the NoIndex sentinel.
func (i Index) Valid() bool {
	return i != NoIndex
}

// Int returns i as an int.
func (i Index) Int() int {
	return int(i)
}

func (i Index) String() string {
	if i == NoIndex {
		return "NoIndex"
	}
	return fmt.Sprintf("%d", uint32(i))
}

// Range returns the indices 0..n-1.
func Range(n int) []Index {
	out := make([]Index, n)
	for i := range out {
		out[i] = Index(i)
	}
	return out
}
