package chunk

import "github.com/holisticode/chunkedseq/internal/require"

// TransferFrontToBack moves exactly n items from the front of c to the
// back of other, preserving relative order, updating both caches.
// Precondition: c has at least n items and other can hold n more items
// (spec.md §4.1).
func (c *Chunk[S, T]) TransferFrontToBack(other *Chunk[S, T], n int) {
	require.True(n >= 0 && n <= c.count, "chunk: TransferFrontToBack: not enough items")
	require.True(other.count+n <= len(other.items), "chunk: TransferFrontToBack: destination too small")
	for i := 0; i < n; i++ {
		other.PushBack(c.PopFront())
	}
}

// TransferBackToFront moves exactly n items from the back of c to the
// front of other, preserving relative order, updating both caches.
func (c *Chunk[S, T]) TransferBackToFront(other *Chunk[S, T], n int) {
	require.True(n >= 0 && n <= c.count, "chunk: TransferBackToFront: not enough items")
	require.True(other.count+n <= len(other.items), "chunk: TransferBackToFront: destination too small")
	for i := 0; i < n; i++ {
		other.PushFront(c.PopBack())
	}
}

// SplitAt splits c so that c keeps items [0, i) and other (which must be
// empty) receives items [i, n). Order is preserved in both halves and
// both caches are refreshed (spec.md §4.1).
func (c *Chunk[S, T]) SplitAt(i int, other *Chunk[S, T]) {
	require.True(other.Empty(), "chunk: SplitAt requires an empty destination")
	require.True(i >= 0 && i <= c.count, "chunk: SplitAt index out of range")
	require.True(c.count-i <= len(other.items), "chunk: SplitAt: destination too small")
	n := c.count - i
	for k := 0; k < n; k++ {
		other.PushBack(c.At(i + k))
	}
	for k := 0; k < n; k++ {
		c.PopBack()
	}
}

// Concat appends all of other's items to the back of c, in order, and
// empties other. Precondition: c has room for other.Size() more items.
func (c *Chunk[S, T]) Concat(other *Chunk[S, T]) {
	require.True(c.count+other.count <= len(c.items), "chunk: Concat: combined size exceeds capacity")
	for !other.Empty() {
		c.PushBack(other.PopFront())
	}
}

// ForEachSegment yields at most two contiguous (begin, end) slices
// covering the live items in order: one for a non-wrapped buffer, two for
// a ring buffer whose live range wraps past capacity. The slices alias
// the chunk's backing array and are invalidated by any later mutation
// (spec.md §4.1).
func (c *Chunk[S, T]) ForEachSegment(f func(segment []S)) {
	if c.count == 0 {
		return
	}
	if c.kind != Ring {
		f(c.items[:c.count])
		return
	}
	end := c.head + c.count
	if end <= len(c.items) {
		f(c.items[c.head:end])
		return
	}
	f(c.items[c.head:])
	f(c.items[:end-len(c.items)])
}
