package seq

import (
	"github.com/holisticode/chunkedseq/chunk"
	"github.com/holisticode/chunkedseq/internal/require"
	"github.com/holisticode/chunkedseq/measure"
	"github.com/holisticode/chunkedseq/tree"
)

// normalize absorbs all four fingers into the middle tree as whole
// chunks, leaving fresh empty fingers — the preparatory step spec.md
// §4.4 describes for split/concat: "treat the fingers as the tree's
// leftmost/rightmost leaves" by folding them into it before the
// underlying tree operation, then re-deriving fresh fingers afterward.
func (s *Sequence[S, T]) normalize() {
	if !s.frontInner.Empty() {
		s.middle.PushFront(s.frontInner)
	}
	if !s.frontOuter.Empty() {
		s.middle.PushFront(s.frontOuter)
	}
	if !s.backInner.Empty() {
		s.middle.PushBack(s.backInner)
	}
	if !s.backOuter.Empty() {
		s.middle.PushBack(s.backOuter)
	}
	s.frontOuter, s.frontInner = s.freshChunk(), s.freshChunk()
	s.backInner, s.backOuter = s.freshChunk(), s.freshChunk()
}

// denormalizeFrom rebuilds s's fingers by peeling up to four chunks off
// t, alternating ends (front, back, front, back) rather than draining one
// end first, so that a tree with as few as two remaining chunks leaves
// both outer fingers populated instead of stranding them all on one side.
func (s *Sequence[S, T]) denormalizeFrom(t *tree.Tree[*chunk.Chunk[S, T], measure.PairValue[T, int]]) {
	s.frontOuter, s.frontInner = s.freshChunk(), s.freshChunk()
	s.backInner, s.backOuter = s.freshChunk(), s.freshChunk()
	if !t.Empty() {
		s.frontOuter = t.PopFront()
	}
	if !t.Empty() {
		s.backOuter = t.PopBack()
	}
	if !t.Empty() {
		s.frontInner = t.PopFront()
	}
	if !t.Empty() {
		s.backInner = t.PopBack()
	}
	s.middle = t
}

func (s *Sequence[S, T]) newMiddle() *tree.Tree[*chunk.Chunk[S, T], measure.PairValue[T, int]] {
	return tree.New[*chunk.Chunk[S, T], measure.PairValue[T, int]](chunk.Ring, s.branchCap, s.branchCap, newChunkMeasure(s.m))
}

// SplitAt splits s so that s keeps items [0, i) and other (which must be
// empty) receives items [i, size) (spec.md §4.4 "split_at").
func (s *Sequence[S, T]) SplitAt(i int, other *Sequence[S, T]) {
	n := s.Size()
	require.True(i >= 0 && i <= n, "seq: SplitAt index out of range")
	require.True(other.Size() == 0, "seq: SplitAt requires an empty destination")
	defer s.bumpGen()
	defer other.bumpGen()
	if i == 0 {
		*other = *s
		s.reset()
		return
	}
	if i == n {
		return
	}

	s.normalize()
	chunkIdx, prefix := s.middle.SearchByWithPrefix(func(acc measure.PairValue[T, int]) bool { return acc.B > i })
	localOffset := i - prefix.B

	rightTree := s.newMiddle()
	s.middle.SplitAt(chunkIdx, rightTree)

	if !rightTree.Empty() {
		target := rightTree.PopFront()
		rightPiece := s.freshChunk()
		target.SplitAt(localOffset, rightPiece)
		if !target.Empty() {
			s.middle.PushBack(target)
		}
		if !rightPiece.Empty() {
			rightTree.PushFront(rightPiece)
		}
	}

	leftTree := s.middle
	other.kind, other.itemCap, other.branchCap, other.m = s.kind, s.itemCap, s.branchCap, s.m
	s.denormalizeFrom(leftTree)
	other.denormalizeFrom(rightTree)
}

// SplitBy splits s at the first position located by SearchBy(p)
// (spec.md §4.4 "split_by"); p must be monotone.
func (s *Sequence[S, T]) SplitBy(p func(T) bool, other *Sequence[S, T]) {
	s.SplitAt(s.SearchBy(p), other)
}

// SplitMid splits s at SearchBy(p) and additionally removes and returns
// the item that landed exactly at the split point, so s holds the
// strict left half, other the strict right half, and the pivot item is
// returned separately (a convenience beyond spec.md §4.4's split_by).
func (s *Sequence[S, T]) SplitMid(p func(T) bool, other *Sequence[S, T]) S {
	idx := s.SearchBy(p)
	require.True(idx < s.Size(), "seq: SplitMid: predicate never became true")
	s.SplitAt(idx, other)
	return other.PopFront()
}

// Concat appends other's entire content to the back of s and empties
// other (spec.md §4.4 "concat"), by absorbing the boundary fingers
// (s's back, other's front) into their respective middles and
// concatenating those, leaving the outer fingers at each end untouched.
func (s *Sequence[S, T]) Concat(other *Sequence[S, T]) {
	defer other.bumpGen()
	if other.Empty() {
		return
	}
	if s.Empty() {
		*s, *other = *other, *s
		other.reset()
		s.bumpGen()
		return
	}
	if !s.backInner.Empty() {
		s.middle.PushBack(s.backInner)
	}
	if !s.backOuter.Empty() {
		s.middle.PushBack(s.backOuter)
	}
	if !other.frontInner.Empty() {
		other.middle.PushFront(other.frontInner)
	}
	if !other.frontOuter.Empty() {
		other.middle.PushFront(other.frontOuter)
	}
	s.middle.Concat(other.middle)
	s.backInner, s.backOuter = other.backInner, other.backOuter
	other.reset()
	s.bumpGen()
}

// InsertAt inserts x as the new item at index i, shifting items at and
// after i one position later, O(log n), implemented via split/concat.
func (s *Sequence[S, T]) InsertAt(i int, x S) {
	require.True(i >= 0 && i <= s.Size(), "seq: InsertAt index out of range")
	tail := New[S, T](s.kind, s.itemCap, s.branchCap, s.m)
	s.SplitAt(i, tail)
	s.PushBack(x)
	s.Concat(tail)
}

// Assign replaces the item at index i with v, O(log n), implemented via
// split/concat rather than an in-place tree update to avoid threading a
// fifth mutating traversal through tree/chunk.
func (s *Sequence[S, T]) Assign(i int, v S) {
	require.True(i >= 0 && i < s.Size(), "seq: Assign index out of range")
	tail := New[S, T](s.kind, s.itemCap, s.branchCap, s.m)
	s.SplitAt(i, tail)
	tail.PopFront()
	tail.PushFront(v)
	s.Concat(tail)
}
