// Package tree implements the weighted B-tree described in spec.md §4.3:
// a uniform-depth tree of branching factor K whose leaves are chunk.Chunk
// buffers and whose interior nodes are themselves chunks — of child
// pointers rather than payload items — each carrying the combined
// measurement of its subtree. It is instantiated once per bootstrapped
// sequence for the middle tree of whole chunks (spec.md §4.4), with payload
// type P and measure T supplied by the caller.
//
// The recursive path-and-cursor shape below is grounded on the
// dolthub-dolt predecessor's sequenceCursor (go-store-types, the
// buffered_sequence_cursor.go / sequence_chunker.go pair in
// other_examples): a node knows only its own content and, during a
// mutation, the caller threads the ancestor chain through explicit
// recursive calls rather than parent back-pointers.
package tree

import (
	"github.com/holisticode/chunkedseq/chunk"
	"github.com/holisticode/chunkedseq/measure"
)

type node[P any, T any] struct {
	leaf     bool
	items    *chunk.Chunk[P, measure.PairValue[T, int]]
	children *chunk.Chunk[*node[P, T], measure.PairValue[T, int]]
}

func (n *node[P, T]) measure() measure.PairValue[T, int] {
	if n.leaf {
		return n.items.Measure()
	}
	return n.children.Measure()
}

func (n *node[P, T]) size() int { return n.measure().B }

// Tree is a weighted B-tree over payload type P measured by T.
type Tree[P any, T any] struct {
	root      *node[P, T]
	height    int // 0 when root is a leaf
	leafKind  chunk.Kind
	leafCap   int
	branchCap int
	m         measure.Measure[P, T]
	leafM     measure.Measure[P, measure.PairValue[T, int]]
	childM    measure.Measure[*node[P, T], measure.PairValue[T, int]]
}

// New constructs an empty tree. leafKind selects the chunk shape used for
// leaves (seq always passes Ring, whatever shape its own item chunks
// use); interior nodes always use Ring chunks of
// child pointers, an internal plumbing detail with no user-facing shape.
func New[P any, T any](leafKind chunk.Kind, leafCap, branchCap int, m measure.Measure[P, T]) *Tree[P, T] {
	return &Tree[P, T]{
		leafKind:  leafKind,
		leafCap:   leafCap,
		branchCap: branchCap,
		m:         m,
		leafM:     newLeafMeasure(m),
		childM:    newChildMeasure(m),
	}
}

func (t *Tree[P, T]) newLeafNode() *node[P, T] {
	return &node[P, T]{leaf: true, items: chunk.New[P, measure.PairValue[T, int]](t.leafKind, t.leafCap, t.leafM)}
}

func (t *Tree[P, T]) newInteriorNode() *node[P, T] {
	return &node[P, T]{children: chunk.New[*node[P, T], measure.PairValue[T, int]](chunk.Ring, t.branchCap, t.childM)}
}

// Empty reports whether the tree holds no items.
func (t *Tree[P, T]) Empty() bool { return t.root == nil }

// Size returns the total number of payload items in the tree.
func (t *Tree[P, T]) Size() int {
	if t.root == nil {
		return 0
	}
	return t.root.size()
}

// Measure returns the combined measurement of all items under the
// caller's configured measure T.
func (t *Tree[P, T]) Measure() T {
	if t.root == nil {
		return t.m.Identity()
	}
	return t.root.measure().A
}

// Height reports the tree's current height (0 for an empty tree or a tree
// whose root is a leaf).
func (t *Tree[P, T]) Height() int { return t.height }

func (t *Tree[P, T]) capAt(height int) int {
	if height == 0 {
		return t.leafCap
	}
	return t.branchCap
}

func (t *Tree[P, T]) sizeOf(n *node[P, T], height int) int {
	if height == 0 {
		return n.items.Size()
	}
	return n.children.Size()
}

func (t *Tree[P, T]) isUnderflowing(n *node[P, T], height int) bool {
	return t.sizeOf(n, height) < t.capAt(height)/2
}

// clear resets the tree to empty, used after its content has been grafted
// into another tree (Concat) or handed off (SplitAt).
func (t *Tree[P, T]) clear() {
	t.root = nil
	t.height = 0
}

// collapseRoot drops single-child interior roots, reducing height until
// the root is a leaf or has at least two children — keeping height
// minimal after operations (pop, split) that can strand a one-child
// spine at the top (spec.md §4.3 "every leaf is at the same depth").
func (t *Tree[P, T]) collapseRoot() {
	for t.height > 0 && t.root.children.Size() == 1 {
		t.root = t.root.children.At(0)
		t.height--
	}
}
