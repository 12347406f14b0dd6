package tree

// PushBack inserts x as the new last item. If the rightmost leaf is full,
// a fresh sibling leaf is introduced to hold it, propagating upward
// through interior nodes exactly as spec.md §4.3 describes; when the root
// itself overflows, a new root is grown and height increases by one.
func (t *Tree[P, T]) PushBack(x P) {
	if t.root == nil {
		t.root = t.newLeafNode()
		t.root.items.PushBack(x)
		t.height = 0
		return
	}
	sib := t.pushBackNode(t.root, t.height, x)
	if sib != nil {
		newRoot := t.newInteriorNode()
		newRoot.children.PushBack(t.root)
		newRoot.children.PushBack(sib)
		t.root = newRoot
		t.height++
	}
}

// pushBackNode pushes x into the rightmost leaf under n (at height h). It
// returns a new sibling for n's parent to adopt when n itself had to grow
// a sibling to make room, nil otherwise.
func (t *Tree[P, T]) pushBackNode(n *node[P, T], h int, x P) *node[P, T] {
	if h == 0 {
		if !n.items.Full() {
			n.items.PushBack(x)
			return nil
		}
		sib := t.newLeafNode()
		sib.items.PushBack(x)
		return sib
	}
	idx := n.children.Size() - 1
	child := n.children.At(idx)
	old := child.measure()
	newChild := t.pushBackNode(child, h-1, x)
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

// PushFront inserts x as the new first item, mirroring PushBack on the
// left end.
func (t *Tree[P, T]) PushFront(x P) {
	if t.root == nil {
		t.root = t.newLeafNode()
		t.root.items.PushFront(x)
		t.height = 0
		return
	}
	sib := t.pushFrontNode(t.root, t.height, x)
	if sib != nil {
		newRoot := t.newInteriorNode()
		newRoot.children.PushBack(t.root)
		newRoot.children.PushFront(sib)
		t.root = newRoot
		t.height++
	}
}

func (t *Tree[P, T]) pushFrontNode(n *node[P, T], h int, x P) *node[P, T] {
	if h == 0 {
		if !n.items.Full() {
			n.items.PushFront(x)
			return nil
		}
		sib := t.newLeafNode()
		sib.items.PushFront(x)
		return sib
	}
	child := n.children.At(0)
	old := child.measure()
	newChild := t.pushFrontNode(child, h-1, x)
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
