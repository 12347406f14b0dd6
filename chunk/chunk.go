// Package chunk implements the fixed-capacity buffer described in spec.md
// §4.1: up to K items with O(1) double-ended access and a cached
// measurement maintained incrementally. Three interchangeable shapes are
// supported — Ring (a circular deque buffer), Stack (one-sided, O(K)
// front operations), and Bag (compacting, front redirected to back) —
// selected at construction via Kind, mirroring the teacher's bmt.tree's
// fixed-size, index-addressed node layout (bmt/bmt.go) generalized from a
// hash-only cache to an arbitrary monoid cache.
package chunk

import (
	"github.com/holisticode/chunkedseq/internal/require"
	"github.com/holisticode/chunkedseq/measure"
)

// Kind selects the physical shape of a Chunk's backing buffer.
type Kind int

const (
	// Ring is a circular buffer: O(1) push/pop at both ends.
	Ring Kind = iota
	// Stack keeps head fixed at 0; push_back/pop_back are O(1),
	// push_front/pop_front are O(K) (spec.md §4.1, §6).
	Stack
	// Bag is a compacting buffer: after removing from any position but
	// the back, the last item fills the hole; front operations redirect
	// to the back (spec.md §4.1).
	Bag
)

// Chunk is a bounded buffer of up to cap(items) items of type S, carrying
// a cached measurement c = ṁ(items) under the monoid m (spec.md §3).
type Chunk[S any, T any] struct {
	kind  Kind
	items []S
	head  int
	count int
	m     measure.Measure[S, T]
	c     T
}

// New constructs an empty chunk of the given shape, capacity, and
// measurement policy.
func New[S any, T any](kind Kind, capacity int, m measure.Measure[S, T]) *Chunk[S, T] {
	require.True(capacity > 0, "chunk: capacity must be positive")
	return &Chunk[S, T]{
		kind:  kind,
		items: make([]S, capacity),
		m:     m,
		c:     m.Identity(),
	}
}

// Kind returns the chunk's shape.
func (c *Chunk[S, T]) Kind() Kind { return c.kind }

// Cap returns the chunk's fixed capacity K.
func (c *Chunk[S, T]) Cap() int { return len(c.items) }

// Size returns the number of live items.
func (c *Chunk[S, T]) Size() int { return c.count }

// Full reports whether the chunk holds Cap() items.
func (c *Chunk[S, T]) Full() bool { return c.count == len(c.items) }

// Empty reports whether the chunk holds no items.
func (c *Chunk[S, T]) Empty() bool { return c.count == 0 }

// Measure returns the cached measurement c.
func (c *Chunk[S, T]) Measure() T { return c.c }

func (c *Chunk[S, T]) physical(i int) int {
	if c.kind == Ring {
		return (c.head + i) % len(c.items)
	}
	return i
}

// At returns the i-th live item (0-indexed from the front).
func (c *Chunk[S, T]) At(i int) S {
	require.True(i >= 0 && i < c.count, "chunk: At index out of range")
	return c.items[c.physical(i)]
}

// Front returns the first live item.
func (c *Chunk[S, T]) Front() S {
	require.True(c.count > 0, "chunk: Front of empty chunk")
	return c.At(0)
}

// Back returns the last live item.
func (c *Chunk[S, T]) Back() S {
	require.True(c.count > 0, "chunk: Back of empty chunk")
	return c.At(c.count - 1)
}

// recompute rebuilds c from the live items in O(K); used whenever the
// configured measure has no inverse to repair the cache incrementally.
func (c *Chunk[S, T]) recompute() {
	acc := c.m.Identity()
	for i := 0; i < c.count; i++ {
		acc = c.m.Combine(acc, c.m.Of(c.At(i)))
	}
	c.c = acc
}

// live returns the live items as a plain slice in logical order; used by
// Split/Concat/ForEachSegment and by tests.
func (c *Chunk[S, T]) live() []S {
	out := make([]S, c.count)
	for i := 0; i < c.count; i++ {
		out[i] = c.At(i)
	}
	return out
}

// PushBack appends x. Precondition: !Full().
func (c *Chunk[S, T]) PushBack(x S) {
	require.True(!c.Full(), "chunk: PushBack on full chunk")
	switch c.kind {
	case Ring:
		c.items[c.physical(c.count)] = x
	default: // Stack, Bag
		c.items[c.count] = x
	}
	c.count++
	c.c = c.m.Combine(c.c, c.m.Of(x))
}

// PushFront prepends x. Precondition: !Full(). O(K) for Stack.
func (c *Chunk[S, T]) PushFront(x S) {
	require.True(!c.Full(), "chunk: PushFront on full chunk")
	if c.kind == Bag {
		// redirected to the back, per spec.md §4.1
		c.PushBack(x)
		return
	}
	switch c.kind {
	case Ring:
		c.head = (c.head - 1 + len(c.items)) % len(c.items)
		c.items[c.head] = x
	default: // Stack
		copy(c.items[1:c.count+1], c.items[:c.count])
		c.items[0] = x
	}
	c.count++
	c.c = c.m.Combine(c.m.Of(x), c.c)
}

// PopBack removes and returns the last item. Precondition: !Empty().
func (c *Chunk[S, T]) PopBack() S {
	require.True(c.count > 0, "chunk: PopBack on empty chunk")
	x := c.Back()
	before := c.c
	c.count--
	if inv, ok := measure.HasInverse[S, T](c.m); ok {
		c.c = inv.Combine(before, inv.Inverse(c.m.Of(x)))
	} else {
		c.recompute()
	}
	return x
}

// PopFront removes and returns the first item. Precondition: !Empty().
// O(K) for Stack. Redirected to PopBack for Bag.
func (c *Chunk[S, T]) PopFront() S {
	require.True(c.count > 0, "chunk: PopFront on empty chunk")
	if c.kind == Bag {
		return c.PopBack()
	}
	x := c.Front()
	before := c.c
	switch c.kind {
	case Ring:
		c.head = (c.head + 1) % len(c.items)
	default: // Stack
		copy(c.items[:c.count-1], c.items[1:c.count])
	}
	c.count--
	if inv, ok := measure.HasInverse[S, T](c.m); ok {
		c.c = inv.Combine(inv.Inverse(c.m.Of(x)), before)
	} else {
		c.recompute()
	}
	return x
}

// Touch repairs the cache after the measurement of the live item at index
// i has changed in place from old to its current value (as read back via
// m.Of(At(i))) without the item itself being pushed or popped — the
// situation a tree node is in when one of its children's subtrees was
// mutated. With a group measure this is an O(1) two-step cancel-and-apply;
// otherwise it falls back to a full recompute.
//
// The O(1) path assumes Combine is commutative at the touched position
// when i isn't the chunk's sole extremal element — true of every group
// measure this package ships (Size, Weighted, and PairGroup/augmented
// combinations of invertible components), since all of them combine via
// ordinary integer addition. A hand-written non-commutative group
// measure would need its own cache-repair strategy. A Pair built from a
// monoid component (e.g. MinKey) is not invertible at all, so it always
// takes the recompute path instead.
func (c *Chunk[S, T]) Touch(i int, old T) {
	require.True(i >= 0 && i < c.count, "chunk: Touch index out of range")
	if inv, ok := measure.HasInverse[S, T](c.m); ok {
		newv := c.m.Of(c.At(i))
		c.c = inv.Combine(inv.Combine(c.c, inv.Inverse(old)), newv)
	} else {
		c.recompute()
	}
}

// newLike returns a fresh empty chunk with the same shape, capacity, and
// measure as c.
func (c *Chunk[S, T]) newLike() *Chunk[S, T] {
	return New[S, T](c.kind, len(c.items), c.m)
}

// RemoveOrderedAt removes and returns the item at logical index i,
// preserving the relative order of the remaining items (unlike RemoveAt's
// bag-style hole-filling). O(K).
func (c *Chunk[S, T]) RemoveOrderedAt(i int) S {
	require.True(i >= 0 && i < c.count, "chunk: RemoveOrderedAt index out of range")
	tail := c.newLike()
	c.SplitAt(i+1, tail)
	x := c.PopBack()
	c.Concat(tail)
	return x
}

// RemoveAt removes and returns the item at logical index i using bag
// compacting semantics: the last item moves into the hole. Valid for any
// shape but named for Bag, whose identity is defined by this operation
// (spec.md §4.1 "Bag shape").
func (c *Chunk[S, T]) RemoveAt(i int) S {
	require.True(i >= 0 && i < c.count, "chunk: RemoveAt index out of range")
	pi := c.physical(i)
	x := c.items[pi]
	last := c.physical(c.count - 1)
	c.items[pi] = c.items[last]
	c.count--
	c.recompute()
	return x
}
