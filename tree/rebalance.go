package tree

// mergeInto absorbs src's entire content into dst (both of height
// childHeight) and empties src, used when two neighbors together fit
// within one node's capacity (spec.md §4.3 "merge the two into one").
func (t *Tree[P, T]) mergeInto(dst, src *node[P, T], childHeight int) {
	if childHeight == 0 {
		dst.items.Concat(src.items)
		return
	}
	dst.children.Concat(src.children)
}

// stealBackToFront moves n items from the back of src to the front of
// dst (both of height childHeight).
func (t *Tree[P, T]) stealBackToFront(dst, src *node[P, T], childHeight, n int) {
	if childHeight == 0 {
		src.items.TransferBackToFront(dst.items, n)
		return
	}
	src.children.TransferBackToFront(dst.children, n)
}

// stealFrontToBack moves n items from the front of src to the back of
// dst (both of height childHeight).
func (t *Tree[P, T]) stealFrontToBack(dst, src *node[P, T], childHeight, n int) {
	if childHeight == 0 {
		src.items.TransferFrontToBack(dst.items, n)
		return
	}
	src.children.TransferFrontToBack(dst.children, n)
}

// rebalancePair redistributes items between left and right (both of
// height childHeight, combined size known to exceed one node's capacity)
// so that both satisfy the K/2 minimum, moving from whichever is fuller.
func (t *Tree[P, T]) rebalancePair(left, right *node[P, T], childHeight int) {
	cp := t.capAt(childHeight)
	half := cp / 2
	ls, rs := t.sizeOf(left, childHeight), t.sizeOf(right, childHeight)
	switch {
	case ls < half:
		t.stealFrontToBack(left, right, childHeight, half-ls)
	case rs < half:
		t.stealBackToFront(right, left, childHeight, half-rs)
	}
}

// repairUnderflowAt restores the K/2 invariant for n.children[idx] after a
// pop made it (possibly) underflow, pairing it with its one well-defined
// neighbor: idx-1 when leftNeighbor is true (the pop-back case, idx is
// n's last child), idx+1 otherwise (the pop-front case, idx is 0). A
// no-op if the child doesn't underflow or n has only one child — per
// spec.md §4.3, single-child nodes have nothing to steal from or merge
// with at this level (they are repaired by the caller one level up).
func (t *Tree[P, T]) repairUnderflowAt(n *node[P, T], childHeight, idx int, leftNeighbor bool) {
	child := n.children.At(idx)
	if !t.isUnderflowing(child, childHeight) || n.children.Size() == 1 {
		return
	}
	sibIdx := idx - 1
	if !leftNeighbor {
		sibIdx = idx + 1
	}
	sibling := n.children.At(sibIdx)
	oldChild, oldSibling := child.measure(), sibling.measure()

	leftIdx, rightIdx := idx, sibIdx
	left, right := child, sibling
	oldLeft, oldRight := oldChild, oldSibling
	if sibIdx < idx {
		leftIdx, rightIdx = sibIdx, idx
		left, right = sibling, child
		oldLeft, oldRight = oldSibling, oldChild
	}

	if t.sizeOf(left, childHeight)+t.sizeOf(right, childHeight) <= t.capAt(childHeight) {
		t.mergeInto(left, right, childHeight)
		n.children.Touch(leftIdx, oldLeft)
		n.children.Touch(rightIdx, oldRight)
		n.children.RemoveOrderedAt(rightIdx)
		return
	}

	t.rebalancePair(left, right, childHeight)
	n.children.Touch(leftIdx, oldLeft)
	n.children.Touch(rightIdx, oldRight)
}

// repairBoundary fixes a K/2 violation straddling the seam between
// n.children[at-1] and n.children[at] — the pair that just became
// neighbors and lost any extremal exception they may have relied on,
// e.g. after Concat grafts one tree onto another. Cascades left through
// merges, since a merge can leave the combined node underflowing against
// its own further-left neighbor.
func (t *Tree[P, T]) repairBoundary(n *node[P, T], childHeight, at int) {
	for at > 0 && at < n.children.Size() {
		left := n.children.At(at - 1)
		right := n.children.At(at)
		if !t.isUnderflowing(left, childHeight) && !t.isUnderflowing(right, childHeight) {
			return
		}
		if t.sizeOf(left, childHeight)+t.sizeOf(right, childHeight) <= t.capAt(childHeight) {
			oldLeft, oldRight := left.measure(), right.measure()
			t.mergeInto(left, right, childHeight)
			n.children.Touch(at-1, oldLeft)
			n.children.Touch(at, oldRight)
			n.children.RemoveOrderedAt(at)
			at--
			continue
		}
		oldLeft, oldRight := left.measure(), right.measure()
		t.rebalancePair(left, right, childHeight)
		n.children.Touch(at-1, oldLeft)
		n.children.Touch(at, oldRight)
		return
	}
}
