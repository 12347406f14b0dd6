// Package seq implements the bootstrapped, finger-tree-shaped outer
// sequence of spec.md §4.4: four finger chunks (front_outer, front_inner,
// back_inner, back_outer) absorb the hot end operations, spilling whole
// chunks into a recursive middle tree.Tree only when a finger overflows,
// giving amortized O(1) push/pop at both ends while indexed access,
// search, split, and concat stay O(log n) by delegating to the middle
// tree once the fingers are accounted for.
package seq

import (
	"fmt"
	"reflect"

	"github.com/holisticode/chunkedseq/chunk"
	"github.com/holisticode/chunkedseq/internal/require"
	"github.com/holisticode/chunkedseq/measure"
	"github.com/holisticode/chunkedseq/tree"
)

// Sequence is a chunked sequence of items of type S, measured by T.
type Sequence[S any, T any] struct {
	kind      chunk.Kind
	itemCap   int
	branchCap int
	m         measure.Measure[S, T]

	frontOuter *chunk.Chunk[S, T]
	frontInner *chunk.Chunk[S, T]
	backInner  *chunk.Chunk[S, T]
	backOuter  *chunk.Chunk[S, T]
	middle     *tree.Tree[*chunk.Chunk[S, T], measure.PairValue[T, int]]

	gen uint64
}

// New constructs an empty sequence. kind selects the finger/leaf chunk
// shape (deque/stack/bag configurations pick Ring/Stack/Bag
// respectively, spec.md §6); itemCap is K for fingers and middle-tree
// leaves, branchCap is K for the middle tree's interior fan-out.
func New[S any, T any](kind chunk.Kind, itemCap, branchCap int, m measure.Measure[S, T]) *Sequence[S, T] {
	s := &Sequence[S, T]{kind: kind, itemCap: itemCap, branchCap: branchCap, m: m}
	s.reset()
	return s
}

func (s *Sequence[S, T]) freshChunk() *chunk.Chunk[S, T] {
	return chunk.New[S, T](s.kind, s.itemCap, s.m)
}

func (s *Sequence[S, T]) reset() {
	s.frontOuter = s.freshChunk()
	s.frontInner = s.freshChunk()
	s.backInner = s.freshChunk()
	s.backOuter = s.freshChunk()
	s.middle = tree.New[*chunk.Chunk[S, T], measure.PairValue[T, int]](chunk.Ring, s.branchCap, s.branchCap, newChunkMeasure(s.m))
	s.gen++
}

func (s *Sequence[S, T]) bumpGen() { s.gen++ }

// MeasurePolicy returns the measure s was configured with, so callers
// that need to build a second, compatibly-configured Sequence (e.g. a
// throwaway split destination) don't have to reconstruct it themselves.
func (s *Sequence[S, T]) MeasurePolicy() measure.Measure[S, T] { return s.m }

// Size returns the total number of items, O(1).
func (s *Sequence[S, T]) Size() int {
	return s.frontOuter.Size() + s.frontInner.Size() + s.backInner.Size() + s.backOuter.Size() + s.middle.Measure().B
}

// Empty reports whether the sequence holds no items, O(1).
func (s *Sequence[S, T]) Empty() bool { return s.Size() == 0 }

// Measure returns the combined measurement of every item, O(1).
func (s *Sequence[S, T]) Measure() T {
	acc := s.m.Identity()
	acc = s.m.Combine(acc, s.frontOuter.Measure())
	acc = s.m.Combine(acc, s.frontInner.Measure())
	acc = s.m.Combine(acc, s.middle.Measure().A)
	acc = s.m.Combine(acc, s.backInner.Measure())
	acc = s.m.Combine(acc, s.backOuter.Measure())
	return acc
}

// Clear empties the sequence.
func (s *Sequence[S, T]) Clear() { s.reset() }

// Swap exchanges the contents of s and other in O(1).
func (s *Sequence[S, T]) Swap(other *Sequence[S, T]) {
	*s, *other = *other, *s
}

// PushBack appends x. Amortized O(1): only every itemCap-th call touches
// the middle tree (spec.md §4.4).
func (s *Sequence[S, T]) PushBack(x S) {
	if !s.backOuter.Full() {
		s.backOuter.PushBack(x)
		s.bumpGen()
		return
	}
	if !s.backInner.Empty() {
		if s.middle.Empty() && s.frontInner.Empty() {
			s.frontInner = s.backInner
		} else {
			s.middle.PushBack(s.backInner)
		}
	}
	s.backInner = s.backOuter
	s.backOuter = s.freshChunk()
	s.backOuter.PushBack(x)
	s.bumpGen()
}

// PushFront prepends x, mirroring PushBack on the left end.
func (s *Sequence[S, T]) PushFront(x S) {
	if !s.frontOuter.Full() {
		s.frontOuter.PushFront(x)
		s.bumpGen()
		return
	}
	if !s.frontInner.Empty() {
		if s.middle.Empty() && s.backInner.Empty() {
			s.backInner = s.frontInner
		} else {
			s.middle.PushFront(s.frontInner)
		}
	}
	s.frontInner = s.frontOuter
	s.frontOuter = s.freshChunk()
	s.frontOuter.PushFront(x)
	s.bumpGen()
}

// PopBack removes and returns the last item, amortized O(1). When the
// back fingers and the middle are all empty, the remaining items (all on
// the front end) are redistributed across both ends first.
func (s *Sequence[S, T]) PopBack() S {
	require.True(!s.Empty(), "seq: PopBack of empty sequence")
	defer s.bumpGen()
	if !s.backOuter.Empty() {
		return s.backOuter.PopBack()
	}
	if !s.backInner.Empty() {
		s.backOuter, s.backInner = s.backInner, s.backOuter
		return s.backOuter.PopBack()
	}
	if !s.middle.Empty() {
		s.backOuter = s.middle.PopBack()
		return s.backOuter.PopBack()
	}
	s.redistribute(false)
	return s.backOuter.PopBack()
}

// PopFront removes and returns the first item, mirroring PopBack.
func (s *Sequence[S, T]) PopFront() S {
	require.True(!s.Empty(), "seq: PopFront of empty sequence")
	defer s.bumpGen()
	if !s.frontOuter.Empty() {
		return s.frontOuter.PopFront()
	}
	if !s.frontInner.Empty() {
		s.frontOuter, s.frontInner = s.frontInner, s.frontOuter
		return s.frontOuter.PopFront()
	}
	if !s.middle.Empty() {
		s.frontOuter = s.middle.PopFront()
		return s.frontOuter.PopFront()
	}
	s.redistribute(true)
	return s.frontOuter.PopFront()
}

// redistribute handles the edge case where one end (its two fingers and
// the middle) has been fully drained while the other end still holds
// every remaining item: it pools everything and splits it roughly in
// half across both ends, favoring whichever end triggered the call so
// that end ends up with at least one item.
func (s *Sequence[S, T]) redistribute(favorFront bool) {
	var pool []S
	drain := func(c *chunk.Chunk[S, T]) {
		for !c.Empty() {
			pool = append(pool, c.PopFront())
		}
	}
	drain(s.frontOuter)
	drain(s.frontInner)
	drain(s.backInner)
	drain(s.backOuter)
	if len(pool) == 0 {
		return
	}
	mid := len(pool) / 2
	if favorFront && mid == 0 {
		mid = 1
	}
	for _, x := range pool[:mid] {
		if s.frontOuter.Full() {
			s.frontInner.PushBack(x)
		} else {
			s.frontOuter.PushBack(x)
		}
	}
	for _, x := range pool[mid:] {
		if s.backOuter.Full() {
			s.backInner.PushBack(x)
		} else {
			s.backOuter.PushBack(x)
		}
	}
}

// Front returns the first item, O(1).
func (s *Sequence[S, T]) Front() S {
	require.True(!s.Empty(), "seq: Front of empty sequence")
	return s.At(0)
}

// Back returns the last item, O(1).
func (s *Sequence[S, T]) Back() S {
	require.True(!s.Empty(), "seq: Back of empty sequence")
	return s.At(s.Size() - 1)
}

// locate finds the physical chunk (a finger or a middle-tree leaf chunk)
// holding global item index i, and the local offset within it.
func (s *Sequence[S, T]) locate(i int) (*chunk.Chunk[S, T], int) {
	if i < s.frontOuter.Size() {
		return s.frontOuter, i
	}
	i -= s.frontOuter.Size()
	if i < s.frontInner.Size() {
		return s.frontInner, i
	}
	i -= s.frontInner.Size()
	midCount := s.middle.Measure().B
	if i < midCount {
		chunkIdx, prefix := s.middle.SearchByWithPrefix(func(acc measure.PairValue[T, int]) bool { return acc.B > i })
		ch := s.middle.At(chunkIdx)
		return ch, i - prefix.B
	}
	i -= midCount
	if i < s.backInner.Size() {
		return s.backInner, i
	}
	i -= s.backInner.Size()
	return s.backOuter, i
}

// At returns the i-th item (0-indexed), O(log n) worst case and O(1)
// when i falls in a finger (spec.md §4.4 "at(i)").
func (s *Sequence[S, T]) At(i int) S {
	require.True(i >= 0 && i < s.Size(), "seq: At index out of range")
	ch, off := s.locate(i)
	return ch.At(off)
}

// ForEachSegment visits every contiguous backing segment in order: the
// front outer and inner fingers, every chunk held in the middle tree,
// then the back inner and outer fingers.
func (s *Sequence[S, T]) ForEachSegment(f func([]S)) {
	s.frontOuter.ForEachSegment(f)
	s.frontInner.ForEachSegment(f)
	n := s.middle.Size()
	for i := 0; i < n; i++ {
		s.middle.At(i).ForEachSegment(f)
	}
	s.backInner.ForEachSegment(f)
	s.backOuter.ForEachSegment(f)
}

// Resize grows or shrinks the sequence to exactly n items, padding with v
// or discarding from the back.
func (s *Sequence[S, T]) Resize(n int, v S) {
	require.True(n >= 0, "seq: Resize: negative size")
	for s.Size() > n {
		s.PopBack()
	}
	for s.Size() < n {
		s.PushBack(v)
	}
}

// CheckInvariants verifies spec.md §4.4's finger-emptiness invariants and
// that the cached Measure() agrees with a ground-truth left-to-right
// fold, for use in tests and debug builds.
func (s *Sequence[S, T]) CheckInvariants() error {
	n := s.Size()
	// The two outer fingers are empty only when the sequence is empty: a
	// one-sided run of PushBack (or PushFront) calls legitimately leaves
	// the other outer finger untouched, so only their joint emptiness is
	// constrained, not each individually.
	if n > 0 && s.frontOuter.Empty() && s.backOuter.Empty() {
		return fmt.Errorf("chunkedseq: both outer fingers empty in non-empty sequence")
	}
	if !s.middle.Empty() {
		if s.frontInner.Empty() {
			return fmt.Errorf("chunkedseq: frontInner empty while middle non-empty")
		}
		if s.backInner.Empty() {
			return fmt.Errorf("chunkedseq: backInner empty while middle non-empty")
		}
	}
	acc := s.m.Identity()
	for i := 0; i < n; i++ {
		acc = s.m.Combine(acc, s.m.Of(s.At(i)))
	}
	if !reflect.DeepEqual(acc, s.Measure()) {
		return fmt.Errorf("chunkedseq: cached measure diverges from a recomputed fold")
	}
	return nil
}
