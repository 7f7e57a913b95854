package avl

import "cmp"

// Node is one stored value together with its subtree height and its
// optional children. A nil *Node is an absent subtree; every accessor
// accepts a nil receiver.
//
// Nodes are owned by their Tree. Callers may read them but must not keep
// them across a mutating call, since rotations and deletions restructure
// the links and the successor-copy delete rewrites values in place.
type Node[T cmp.Ordered] struct {
	value  T
	height int // leaf = 1
	left   *Node[T]
	right  *Node[T]
}

// newLeaf allocates a detached leaf holding v.
func newLeaf[T cmp.Ordered](v T) *Node[T] {
	return &Node[T]{value: v, height: 1}
}

// Value returns the stored value, or the zero value for a nil node.
func (n *Node[T]) Value() T {
	if n == nil {
		var zero T
		return zero
	}

	return n.value
}

// Height returns the height of the subtree rooted at n (0 for nil).
func (n *Node[T]) Height() int {
	if n == nil {
		return 0
	}

	return n.height
}

// Left returns the left child, or nil.
func (n *Node[T]) Left() *Node[T] {
	if n == nil {
		return nil
	}

	return n.left
}

// Right returns the right child, or nil.
func (n *Node[T]) Right() *Node[T] {
	if n == nil {
		return nil
	}

	return n.right
}

// BalanceFactor returns height(left) - height(right); 0 for nil.
func (n *Node[T]) BalanceFactor() int {
	if n == nil {
		return 0
	}

	return n.left.Height() - n.right.Height()
}

// fixHeight recomputes n.height from its current children.
func (n *Node[T]) fixHeight() {
	n.height = 1 + max(n.left.Height(), n.right.Height())
}

// leftmost follows left links to the smallest value of the subtree.
func (n *Node[T]) leftmost() *Node[T] {
	for n.left != nil {
		n = n.left
	}

	return n
}

// rightmost follows right links to the largest value of the subtree.
func (n *Node[T]) rightmost() *Node[T] {
	for n.right != nil {
		n = n.right
	}

	return n
}
