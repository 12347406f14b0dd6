package tree

import "github.com/holisticode/chunkedseq/internal/require"

// PopBack removes and returns the last item. If that leaf becomes
// underflowing, it is repaired by stealing from or merging with its
// sibling, cascading upward; a single-child root is then collapsed
// (spec.md §4.3).
func (t *Tree[P, T]) PopBack() P {
	require.True(t.root != nil, "tree: PopBack of empty tree")
	x := t.popBackNode(t.root, t.height)
	t.collapseRoot()
	if t.sizeOf(t.root, t.height) == 0 {
		t.clear()
	}
	return x
}

func (t *Tree[P, T]) popBackNode(n *node[P, T], h int) P {
	if h == 0 {
		return n.items.PopBack()
	}
	idx := n.children.Size() - 1
	child := n.children.At(idx)
	old := child.measure()
	x := t.popBackNode(child, h-1)
	n.children.Touch(idx, old)
	if child.size() == 0 {
		n.children.PopBack()
		return x
	}
	t.repairUnderflowAt(n, h-1, idx, true)
	return x
}

// PopFront removes and returns the first item, mirroring PopBack.
func (t *Tree[P, T]) PopFront() P {
	require.True(t.root != nil, "tree: PopFront of empty tree")
	x := t.popFrontNode(t.root, t.height)
	t.collapseRoot()
	if t.sizeOf(t.root, t.height) == 0 {
		t.clear()
	}
	return x
}

func (t *Tree[P, T]) popFrontNode(n *node[P, T], h int) P {
	if h == 0 {
		return n.items.PopFront()
	}
	child := n.children.At(0)
	old := child.measure()
	x := t.popFrontNode(child, h-1)
	n.children.Touch(0, old)
	if child.size() == 0 {
		n.children.PopFront()
		return x
	}
	t.repairUnderflowAt(n, h-1, 0, false)
	return x
}
