// Package omap is the ordered-association-map configuration of spec.md
// §6: a seq.Sequence of (key, value) entries kept sorted ascending by
// key, exposing Insert/Lookup/Erase on top of the generic sequence and
// an O(1) peek at the current minimum key via the MinKey measure.
//
// Locating an entry by key walks the sequence from the front rather
// than binary-searching the tree: the MinKey monoid folds a prefix down
// to whichever key is smallest in it, which — for a sequence already
// sorted ascending — is always the first entry's key, regardless of
// how much of the prefix is included. That makes MinKey perfect for
// peeking the current minimum in O(1) but useless as a monotone
// predicate for locating an arbitrary key's position, which is what
// SearchBy needs. A running-maximum monoid would fix that, but spec.md
// §4.2's measure-policy table has no such entry, so Insert/Lookup/Erase
// pay O(n) for the locate step here; the surrounding split/insert/erase
// machinery they call into is still the O(log n) sequence engine.
package omap

import (
	"github.com/holisticode/chunkedseq/chunk"
	"github.com/holisticode/chunkedseq/measure"
	"github.com/holisticode/chunkedseq/seq"
)

// entry is the item type stored in the backing sequence.
type entry[K any, V any] struct {
	Key K
	Val V
}

// OrderedMap is an association from keys of type K to values of type V,
// kept internally sorted ascending by key via less.
type OrderedMap[K any, V any] struct {
	seq  *seq.Sequence[entry[K, V], measure.PairValue[measure.MinKeyValue[K], int]]
	less func(a, b K) bool
}

// New constructs an empty ordered map with the given leaf/branch
// capacities and key ordering.
func New[K any, V any](itemCap, branchCap int, less func(a, b K) bool) *OrderedMap[K, V] {
	// m is the Pair(MinKey, Size) measure used to configure the backing
	// sequence: its A component supports MinKey's O(1) peek, its B
	// component is the running item count Size already needs internally.
	m := measure.NewPair[entry[K, V], measure.MinKeyValue[K], int](
		measure.NewMinKey(func(e entry[K, V]) K { return e.Key }, less),
		measure.Size[entry[K, V]]{},
	)
	return &OrderedMap[K, V]{
		seq:  seq.New[entry[K, V], measure.PairValue[measure.MinKeyValue[K], int]](chunk.Ring, itemCap, branchCap, m),
		less: less,
	}
}

// Size returns the number of entries in the map.
func (m *OrderedMap[K, V]) Size() int { return m.seq.Size() }

// Empty reports whether the map holds no entries.
func (m *OrderedMap[K, V]) Empty() bool { return m.seq.Empty() }

// Clear empties the map.
func (m *OrderedMap[K, V]) Clear() { m.seq.Clear() }

// MinKey returns the smallest key currently in the map, O(1) via the
// cached MinKey measure of the whole sequence.
func (m *OrderedMap[K, V]) MinKey() (K, bool) {
	mv := m.seq.Measure().A
	return mv.Key, mv.Ok
}

// locate returns the index of the first entry whose key is not less
// than key, and whether that entry's key equals key exactly.
func (m *OrderedMap[K, V]) locate(key K) (int, bool) {
	n := m.seq.Size()
	it := m.seq.IterAt(0)
	for i := 0; i < n; i++ {
		e := it.Get()
		if !m.less(e.Key, key) {
			return i, !m.less(key, e.Key)
		}
		it.Next()
	}
	return n, false
}

// Insert associates key with val, replacing any existing value for the
// same key and preserving ascending order otherwise.
func (m *OrderedMap[K, V]) Insert(key K, val V) {
	i, found := m.locate(key)
	if found {
		m.seq.Assign(i, entry[K, V]{Key: key, Val: val})
		return
	}
	m.seq.InsertAt(i, entry[K, V]{Key: key, Val: val})
}

// Lookup returns the value associated with key, if any.
func (m *OrderedMap[K, V]) Lookup(key K) (V, bool) {
	i, found := m.locate(key)
	if !found {
		var zero V
		return zero, false
	}
	return m.seq.At(i).Val, true
}

// Erase removes key's entry, if present, reporting whether it was found.
func (m *OrderedMap[K, V]) Erase(key K) bool {
	i, found := m.locate(key)
	if !found {
		return false
	}
	tail := seq.New[entry[K, V], measure.PairValue[measure.MinKeyValue[K], int]](chunk.Ring, 1, 1, m.seq.MeasurePolicy())
	m.seq.SplitAt(i, tail)
	tail.PopFront()
	m.seq.Concat(tail)
	return true
}
