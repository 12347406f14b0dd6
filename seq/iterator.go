package seq

import "github.com/holisticode/chunkedseq/internal/require"

// Iterator walks a Sequence by logical index (spec.md §4.5). Stepping
// only moves the index and is O(1); Get locates the index afresh on every
// call, O(1) in a finger chunk and O(log n) in the middle tree. GetSegment
// lets a caller batch work over a whole chunk at once to pay that locate
// cost once per chunk, the same shape as ForEachSegment.
//
// An Iterator is invalidated by any mutation of its source Sequence
// after creation; using one past that point panics rather than risking
// a stale read (spec.md §9's "no dangling iterators after a split").
type Iterator[S any, T any] struct {
	seq   *Sequence[S, T]
	index int
	genAt uint64
}

// Begin returns an iterator positioned at index 0.
func (s *Sequence[S, T]) Begin() *Iterator[S, T] {
	return &Iterator[S, T]{seq: s, index: 0, genAt: s.gen}
}

// End returns an iterator positioned one past the last item.
func (s *Sequence[S, T]) End() *Iterator[S, T] {
	return &Iterator[S, T]{seq: s, index: s.Size(), genAt: s.gen}
}

// IterAt returns an iterator positioned at index i.
func (s *Sequence[S, T]) IterAt(i int) *Iterator[S, T] {
	require.True(i >= 0 && i <= s.Size(), "seq: IterAt: index out of range")
	return &Iterator[S, T]{seq: s, index: i, genAt: s.gen}
}

func (it *Iterator[S, T]) checkValid() {
	require.True(it.genAt == it.seq.gen, "seq: iterator used after its sequence was mutated")
}

// Next advances the iterator by one position.
func (it *Iterator[S, T]) Next() { it.checkValid(); it.index++ }

// Prev moves the iterator back by one position.
func (it *Iterator[S, T]) Prev() { it.checkValid(); it.index-- }

// Advance moves the iterator by k positions (negative k moves backward).
func (it *Iterator[S, T]) Advance(k int) { it.checkValid(); it.index += k }

// Index returns the iterator's current logical position.
func (it *Iterator[S, T]) Index() int { it.checkValid(); return it.index }

// Get returns the item at the iterator's current position.
func (it *Iterator[S, T]) Get() S {
	it.checkValid()
	return it.seq.At(it.index)
}

// Equal reports whether it and other refer to the same sequence and
// position.
func (it *Iterator[S, T]) Equal(other *Iterator[S, T]) bool {
	return it.seq == other.seq && it.index == other.index
}

// SearchBy repositions the iterator to the first index whose prefix
// satisfies p (spec.md §4.5's restart-from-root search_by).
func (it *Iterator[S, T]) SearchBy(p func(T) bool) {
	it.checkValid()
	it.index = it.seq.SearchBy(p)
}

// GetSegment returns the contiguous backing slice containing the
// iterator's current item, together with the item's offset within that
// slice — spec.md §4.5's (begin, middle, end) triple expressed as a
// slice plus index, letting a caller batch-process begin..middle,
// middle itself, and middle+1..end without per-item chunk lookups.
func (it *Iterator[S, T]) GetSegment() (segment []S, indexInSegment int) {
	it.checkValid()
	ch, local := it.seq.locate(it.index)
	off := local
	ch.ForEachSegment(func(seg []S) {
		if segment != nil {
			return
		}
		if off < len(seg) {
			segment = seg
			indexInSegment = off
		} else {
			off -= len(seg)
		}
	})
	return segment, indexInSegment
}
