// Package deque is the double-ended-queue configuration of spec.md §6:
// a seq.Sequence using the Ring chunk shape and the Size measure, giving
// O(1) amortized push/pop at both ends and O(log n) indexed access,
// split, and concat.
package deque

import (
	"github.com/holisticode/chunkedseq/chunk"
	"github.com/holisticode/chunkedseq/measure"
	"github.com/holisticode/chunkedseq/seq"
)

// Deque is a double-ended queue of items of type S.
type Deque[S any] struct {
	seq *seq.Sequence[S, int]
}

// New constructs an empty deque with the given chunk and branch
// capacities (both "K" in spec.md's sense, for leaf chunks and the
// middle tree's fan-out respectively).
func New[S any](itemCap, branchCap int) *Deque[S] {
	return &Deque[S]{seq: seq.New[S, int](chunk.Ring, itemCap, branchCap, measure.Size[S]{})}
}

func (d *Deque[S]) PushBack(x S)  { d.seq.PushBack(x) }
func (d *Deque[S]) PushFront(x S) { d.seq.PushFront(x) }
func (d *Deque[S]) PopBack() S    { return d.seq.PopBack() }
func (d *Deque[S]) PopFront() S   { return d.seq.PopFront() }
func (d *Deque[S]) Front() S      { return d.seq.Front() }
func (d *Deque[S]) Back() S       { return d.seq.Back() }
func (d *Deque[S]) At(i int) S    { return d.seq.At(i) }
func (d *Deque[S]) Assign(i int, x S) { d.seq.Assign(i, x) }
func (d *Deque[S]) Size() int     { return d.seq.Size() }
func (d *Deque[S]) Empty() bool   { return d.seq.Empty() }
func (d *Deque[S]) Clear()        { d.seq.Clear() }

// SplitAt moves items [i, Size()) out of d and into other, which must be
// empty.
func (d *Deque[S]) SplitAt(i int, other *Deque[S]) { d.seq.SplitAt(i, other.seq) }

// Concat appends other's contents to d and empties other.
func (d *Deque[S]) Concat(other *Deque[S]) { d.seq.Concat(other.seq) }

// CheckInvariants verifies the underlying sequence's structural
// invariants; for use in tests.
func (d *Deque[S]) CheckInvariants() error { return d.seq.CheckInvariants() }
