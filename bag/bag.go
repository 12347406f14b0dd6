// Package bag is the unordered-collection configuration of spec.md §6: a
// seq.Sequence using the Bag chunk shape (push_front redirected to
// push_back, holes filled by the last item rather than preserving
// order). Insert is O(1) amortized; Remove is expressed here, at the
// sequence level, via the split/concat machinery rather than a chunk-level
// hole fill, so it keeps the remaining items in order.
package bag

import (
	"github.com/holisticode/chunkedseq/chunk"
	"github.com/holisticode/chunkedseq/measure"
	"github.com/holisticode/chunkedseq/seq"
)

// Bag is an unordered multiset of items of type S.
type Bag[S any] struct {
	seq *seq.Sequence[S, int]
}

// New constructs an empty bag with the given leaf/branch capacities.
func New[S any](itemCap, branchCap int) *Bag[S] {
	return &Bag[S]{seq: seq.New[S, int](chunk.Bag, itemCap, branchCap, measure.Size[S]{})}
}

// Insert adds x to the bag.
func (b *Bag[S]) Insert(x S) { b.seq.PushBack(x) }

// Remove removes and returns the item at position i. The remaining
// items keep their relative order; Bag's compacting behavior is an
// optimization of the backing chunk's internal layout, not a
// user-visible ordering guarantee (spec.md §6 "Bag" makes no order
// promise either way).
func (b *Bag[S]) Remove(i int) S {
	tail := seq.New[S, int](chunk.Bag, 1, 1, measure.Size[S]{})
	b.seq.SplitAt(i, tail)
	rest := seq.New[S, int](chunk.Bag, 1, 1, measure.Size[S]{})
	tail.SplitAt(1, rest)
	x := tail.PopFront()
	b.seq.Concat(rest)
	return x
}

// Size returns the number of items in the bag.
func (b *Bag[S]) Size() int { return b.seq.Size() }

// Empty reports whether the bag holds no items.
func (b *Bag[S]) Empty() bool { return b.seq.Empty() }

// Clear empties the bag.
func (b *Bag[S]) Clear() { b.seq.Clear() }

// At returns the item at position i.
func (b *Bag[S]) At(i int) S { return b.seq.At(i) }
