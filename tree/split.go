package tree

import (
	"github.com/holisticode/chunkedseq/chunk"
	"github.com/holisticode/chunkedseq/internal/require"
	"github.com/holisticode/chunkedseq/measure"
)

// emptyLike returns a fresh, empty tree sharing t's configuration
// (leaf/interior shape, capacities, measure policy).
func (t *Tree[P, T]) emptyLike() *Tree[P, T] {
	return &Tree[P, T]{
		leafKind:  t.leafKind,
		leafCap:   t.leafCap,
		branchCap: t.branchCap,
		m:         t.m,
		leafM:     t.leafM,
		childM:    t.childM,
	}
}

// SplitAt splits t so that t keeps items [0, i) and other (which must be
// empty) receives items [i, size) (spec.md §4.3 "split_at").
func (t *Tree[P, T]) SplitAt(i int, other *Tree[P, T]) {
	require.True(other.root == nil, "tree: SplitAt requires an empty destination")
	n := t.Size()
	require.True(i >= 0 && i <= n, "tree: SplitAt index out of range")
	if t.root == nil || i == 0 {
		other.root, other.height = t.root, t.height
		t.clear()
		return
	}
	if i == n {
		return
	}
	left, right := t.splitNode(t.root, t.height, i)
	t.root, t.height = left.root, left.height
	other.root, other.height = right.root, right.height
}

// SplitBy splits t at the first position located by SearchBy(p) (spec.md
// §4.3 "split_by"); p must be monotone.
func (t *Tree[P, T]) SplitBy(p func(T) bool, other *Tree[P, T]) {
	t.SplitAt(t.SearchBy(p), other)
}

// splitNode splits the subtree rooted at n (height h) at local item index
// i, returning the left and right halves as standalone trees. Sibling
// nodes along the descent path are handed wholesale to whichever side
// they fall on and stitched to the recursively split child via Concat,
// which also repairs any K/2 violation at the new seam.
func (t *Tree[P, T]) splitNode(n *node[P, T], h int, i int) (*Tree[P, T], *Tree[P, T]) {
	if h == 0 {
		rightChunk := chunk.New[P, measure.PairValue[T, int]](t.leafKind, t.leafCap, t.leafM)
		n.items.SplitAt(i, rightChunk)
		return t.wrapLeaf(n), t.wrapLeaf(&node[P, T]{leaf: true, items: rightChunk})
	}
	base := 0
	for ci := 0; ci < n.children.Size(); ci++ {
		child := n.children.At(ci)
		sz := child.size()
		if i <= base+sz {
			localI := i - base
			leftSub, rightSub := t.splitNode(child, h-1, localI)
			left := t.treeFromNodeRange(n, h-1, 0, ci)
			right := t.treeFromNodeRange(n, h-1, ci+1, n.children.Size())
			left.Concat(leftSub)
			rightSub.Concat(right)
			return left, rightSub
		}
		base += sz
	}
	panic("tree: splitNode: index out of range (invariant violation)")
}

// wrapLeaf wraps a (possibly empty) leaf node as a standalone tree.
func (t *Tree[P, T]) wrapLeaf(n *node[P, T]) *Tree[P, T] {
	nt := t.emptyLike()
	if n.items.Empty() {
		return nt
	}
	n.leaf = true
	nt.root = n
	nt.height = 0
	return nt
}

// treeFromNodeRange builds a standalone tree from n.children[lo:hi], all
// of height h. The range is always a subset of one valid chunk (size <=
// branch capacity), so it fits directly into a single interior node.
func (t *Tree[P, T]) treeFromNodeRange(n *node[P, T], h, lo, hi int) *Tree[P, T] {
	nt := t.emptyLike()
	if hi <= lo {
		return nt
	}
	if hi-lo == 1 {
		nt.root, nt.height = n.children.At(lo), h
		return nt
	}
	interior := t.newInteriorNode()
	for i := lo; i < hi; i++ {
		interior.children.PushBack(n.children.At(i))
	}
	nt.root, nt.height = interior, h+1
	return nt
}
