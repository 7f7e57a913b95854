package avl

import "fmt"

// Contains reports whether v is stored in the tree. It never mutates.
//
// Complexity: O(log n).
func (t *Tree[T]) Contains(v T) bool {
	return t.find(v) != nil
}

// Find returns the node holding v, or an error wrapping ErrNotFound.
// The node is valid only until the next mutating call.
func (t *Tree[T]) Find(v T) (*Node[T], error) {
	n := t.find(v)
	if n == nil {
		return nil, fmt.Errorf("avl: find %v: %w", v, ErrNotFound)
	}

	return n, nil
}

// find descends from the root comparing v at each level.
func (t *Tree[T]) find(v T) *Node[T] {
	n := t.root
	for n != nil {
		switch {
		case v < n.value:
			n = n.left
		case v > n.value:
			n = n.right
		default:
			return n
		}
	}

	return nil
}

// Min returns the smallest stored value, or ErrEmptyTree.
func (t *Tree[T]) Min() (T, error) {
	if t.root == nil {
		var zero T
		return zero, ErrEmptyTree
	}

	return t.root.leftmost().value, nil
}

// Max returns the largest stored value, or ErrEmptyTree.
func (t *Tree[T]) Max() (T, error) {
	if t.root == nil {
		var zero T
		return zero, ErrEmptyTree
	}

	return t.root.rightmost().value, nil
}
