package avl

// rebalance restores the balance invariant at n, whose children have just
// changed and whose height is already up to date. It returns the new root
// of the subtree, which is n itself when no rotation was needed.
//
// Cases:
//   - bf > 1, left child right-heavy:   rotate left child left, then n right (LR)
//   - bf > 1 otherwise:                 rotate n right (LL)
//   - bf < -1, right child left-heavy:  rotate right child right, then n left (RL)
//   - bf < -1 otherwise:                rotate n left (RR)
func (t *Tree[T]) rebalance(n *Node[T]) *Node[T] {
	bf := n.BalanceFactor()

	switch {
	case bf > 1:
		if n.left.BalanceFactor() < 0 {
			n.left = t.rotateLeft(n.left)
		}
		return t.rotateRight(n)

	case bf < -1:
		if n.right.BalanceFactor() > 0 {
			n.right = t.rotateRight(n.right)
		}
		return t.rotateLeft(n)

	default:
		return n
	}
}

// rotateLeft promotes n.right to the subtree root:
//
//	  n                r
//	 / \              / \
//	a   r     =>     n   c
//	   / \          / \
//	  b   c        a   b
//
// The in-order sequence a n b r c is unchanged.
func (t *Tree[T]) rotateLeft(n *Node[T]) *Node[T] {
	r := n.right
	if t.hooks.OnRotate != nil {
		t.hooks.OnRotate(RotateLeft, n.value)
	}

	n.right = r.left // reparent b
	r.left = n

	n.fixHeight() // demoted node first
	r.fixHeight()

	return r
}

// rotateRight promotes n.left to the subtree root; mirror of rotateLeft.
func (t *Tree[T]) rotateRight(n *Node[T]) *Node[T] {
	l := n.left
	if t.hooks.OnRotate != nil {
		t.hooks.OnRotate(RotateRight, n.value)
	}

	n.left = l.right
	l.right = n

	n.fixHeight()
	l.fixHeight()

	return l
}
