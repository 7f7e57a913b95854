package avl

import (
	"errors"
	"fmt"
)

// Delete removes v from the tree and restores every invariant before
// returning. It returns an error wrapping ErrNotFound when v is absent,
// in which case the tree is left exactly as it was.
//
// Complexity: O(log n).
func (t *Tree[T]) Delete(v T) error {
	root, found := t.delete(t.root, v)
	if !found {
		return fmt.Errorf("avl: delete %v: %w", v, ErrNotFound)
	}
	t.root = root

	if t.hooks.OnRemove != nil {
		t.hooks.OnRemove(v)
	}

	return nil
}

// DeleteMany deletes each value in order. A missing value does not stop
// the remaining deletes; all misses are joined into the returned error.
func (t *Tree[T]) DeleteMany(values ...T) error {
	var (
		errs []error
		v    T
	)
	for _, v = range values {
		if err := t.Delete(v); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// delete removes v from the subtree rooted at n and returns the new subtree
// root. found is false when v is not in the subtree; the subtree is then
// returned untouched and must not be reassigned or rebalanced.
func (t *Tree[T]) delete(n *Node[T], v T) (root *Node[T], found bool) {
	// 1. Search fell through
	if n == nil {
		return nil, false
	}

	// 2. Descend
	var child *Node[T]
	switch {
	case v < n.value:
		if child, found = t.delete(n.left, v); !found {
			return n, false
		}
		n.left = child

	case v > n.value:
		if child, found = t.delete(n.right, v); !found {
			return n, false
		}
		n.right = child

	default:
		// 3. Found. With at most one child the node is unlinked here and
		//    the other child is promoted; it is already balanced.
		if n.left == nil {
			t.size--
			return n.right, true
		}
		if n.right == nil {
			t.size--
			return n.left, true
		}

		// 4. Two children: take the in-order successor's value and remove
		//    the successor from the right subtree. The size drops there.
		succ := n.right.leftmost()
		n.value = succ.value
		n.right, _ = t.delete(n.right, succ.value)
	}

	// 5. Repair the kept node on the return path
	n.fixHeight()

	return t.rebalance(n), true
}
