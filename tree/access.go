package tree

import "github.com/holisticode/chunkedseq/internal/require"

// At returns the i-th item (0-indexed), descending the tree by choosing,
// at each interior node, the child whose running prefix of sizes first
// covers i (spec.md §4.3 "at(i)").
func (t *Tree[P, T]) At(i int) P {
	require.True(t.root != nil && i >= 0 && i < t.Size(), "tree: At index out of range")
	return t.atNode(t.root, t.height, i)
}

func (t *Tree[P, T]) atNode(n *node[P, T], h int, i int) P {
	if h == 0 {
		return n.items.At(i)
	}
	for idx := 0; idx < n.children.Size(); idx++ {
		child := n.children.At(idx)
		sz := child.size()
		if i < sz {
			return t.atNode(child, h-1, i)
		}
		i -= sz
	}
	panic("tree: At: index out of range (invariant violation)")
}

// SearchBy returns the index of the first item whose inclusive ⊕-prefix
// (from the start of the tree through that item) satisfies p, scanning
// left to right (spec.md §4.3 "search_by"). p must be monotone in the
// prefix order. If p never holds, SearchBy returns Size() — one past the
// end, the same sentinel a not-found index would use.
func (t *Tree[P, T]) SearchBy(p func(T) bool) int {
	idx, _ := t.SearchByWithPrefix(p)
	return idx
}

// SearchByWithPrefix is SearchBy but also returns the exclusive ⊕-prefix
// accumulated strictly before the found index (t.m.Identity() if the tree
// is empty, the whole tree's measure if p never holds) — callers that need to know "how much
// came before" the match, such as seq locating the local offset within
// the chunk a global index falls into, without a second O(log n) pass.
func (t *Tree[P, T]) SearchByWithPrefix(p func(T) bool) (int, T) {
	if t.root == nil {
		return 0, t.m.Identity()
	}
	return t.searchNode(t.root, t.height, t.m.Identity(), p)
}

func (t *Tree[P, T]) searchNode(n *node[P, T], h int, acc T, p func(T) bool) (int, T) {
	if h == 0 {
		for i := 0; i < n.items.Size(); i++ {
			pre := acc
			cand := t.m.Combine(acc, t.m.Of(n.items.At(i)))
			if p(cand) {
				return i, pre
			}
			acc = cand
		}
		return n.items.Size(), acc
	}
	base := 0
	for i := 0; i < n.children.Size(); i++ {
		child := n.children.At(i)
		pre := acc
		cand := t.m.Combine(acc, child.measure().A)
		if p(cand) {
			li, newAcc := t.searchNode(child, h-1, pre, p)
			return base + li, newAcc
		}
		acc = cand
		base += child.size()
	}
	return base, acc
}
