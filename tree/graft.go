package tree

import "github.com/holisticode/chunkedseq/internal/require"

// graftBack inserts an entire already-built subtree (payload, of height
// ph) as the new rightmost child at height ph+1, the whole-subtree
// analog of PushBack used by Concat to splice one tree onto another
// without decomposing it item by item. Any K/2 violation introduced at
// the seam is repaired immediately via repairBoundary.
func (t *Tree[P, T]) graftBack(payload *node[P, T], ph int) {
	if t.root == nil {
		t.root, t.height = payload, ph
		return
	}
	if t.height == ph {
		newRoot := t.newInteriorNode()
		newRoot.children.PushBack(t.root)
		newRoot.children.PushBack(payload)
		t.repairBoundary(newRoot, ph, 1)
		t.root = newRoot
		t.height = ph + 1
		return
	}
	require.True(t.height > ph, "tree: graftBack: payload taller than tree")
	sib := t.pushNodeBack(t.root, t.height, payload, ph)
	if sib != nil {
		newRoot := t.newInteriorNode()
		newRoot.children.PushBack(t.root)
		newRoot.children.PushBack(sib)
		t.root = newRoot
		t.height++
	}
}

func (t *Tree[P, T]) pushNodeBack(n *node[P, T], h int, payload *node[P, T], ph int) *node[P, T] {
	if h == ph+1 {
		if !n.children.Full() {
			n.children.PushBack(payload)
			t.repairBoundary(n, ph, n.children.Size()-1)
			return nil
		}
		sib := t.newInteriorNode()
		sib.children.PushBack(payload)
		return sib
	}
	idx := n.children.Size() - 1
	child := n.children.At(idx)
	old := child.measure()
	newChild := t.pushNodeBack(child, h-1, payload, ph)
	if newChild == nil {
		n.children.Touch(idx, old)
		return nil
	}
	if !n.children.Full() {
		n.children.PushBack(newChild)
		return nil
	}
	sib := t.newInteriorNode()
	sib.children.PushBack(newChild)
	return sib
}

// graftFront mirrors graftBack on the left end.
func (t *Tree[P, T]) graftFront(payload *node[P, T], ph int) {
	if t.root == nil {
		t.root, t.height = payload, ph
		return
	}
	if t.height == ph {
		newRoot := t.newInteriorNode()
		newRoot.children.PushBack(t.root)
		newRoot.children.PushFront(payload)
		t.repairBoundary(newRoot, ph, 1)
		t.root = newRoot
		t.height = ph + 1
		return
	}
	require.True(t.height > ph, "tree: graftFront: payload taller than tree")
	sib := t.pushNodeFront(t.root, t.height, payload, ph)
	if sib != nil {
		newRoot := t.newInteriorNode()
		newRoot.children.PushFront(t.root)
		newRoot.children.PushFront(sib)
		t.root = newRoot
		t.height++
	}
}

func (t *Tree[P, T]) pushNodeFront(n *node[P, T], h int, payload *node[P, T], ph int) *node[P, T] {
	if h == ph+1 {
		if !n.children.Full() {
			n.children.PushFront(payload)
			t.repairBoundary(n, ph, 1)
			return nil
		}
		sib := t.newInteriorNode()
		sib.children.PushFront(payload)
		return sib
	}
	child := n.children.At(0)
	old := child.measure()
	newChild := t.pushNodeFront(child, h-1, payload, ph)
	if newChild == nil {
		n.children.Touch(0, old)
		return nil
	}
	if !n.children.Full() {
		n.children.PushFront(newChild)
		return nil
	}
	sib := t.newInteriorNode()
	sib.children.PushFront(newChild)
	return sib
}
