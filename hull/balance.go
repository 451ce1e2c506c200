package hull

// rebalance restores the AVL condition at r and returns the node that is
// now located at the position of r. The hull of r and of both of its
// children must be valid.
//
// A rotation changes which points a node contributes to its parent, so the
// chains of the affected subtrees are pushed down before the pointers move
// and the lowered node is merged again afterwards.
func (t *Tree) rebalance(r ref) ref {
	n := &t.nodes[r]
	if n.kind != internal {
		return r
	}

	diff := t.nodes[n.left].height - t.nodes[n.right].height

	switch {
	case diff > 1:
		left := n.left
		t.push(left)

		if t.nodes[t.nodes[left].left].height < t.nodes[t.nodes[left].right].height {
			t.push(t.nodes[left].right)
			t.rotateLeft(left)
		}

		return t.rotateRight(r)

	case diff < -1:
		right := n.right
		t.push(right)

		if t.nodes[t.nodes[right].right].height < t.nodes[t.nodes[right].left].height {
			t.push(t.nodes[right].left)
			t.rotateRight(right)
		}

		return t.rotateLeft(r)
	}

	return r
}

// rotateLeft lifts the right child of x into the position of x. The hull of
// the new parent is left for the caller to merge.
func (t *Tree) rotateLeft(x ref) ref {
	y := t.nodes[x].right
	inner := t.nodes[y].left

	t.replace(x, y)

	t.nodes[x].right = inner
	t.nodes[inner].parent = x

	t.nodes[y].left = x
	t.nodes[x].parent = y

	t.pull(x)

	return y
}

// rotateRight lifts the left child of x into the position of x. The hull of
// the new parent is left for the caller to merge.
func (t *Tree) rotateRight(x ref) ref {
	y := t.nodes[x].left
	inner := t.nodes[y].right

	t.replace(x, y)

	t.nodes[x].left = inner
	t.nodes[inner].parent = x

	t.nodes[y].right = x
	t.nodes[x].parent = y

	t.pull(x)

	return y
}
