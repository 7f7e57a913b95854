package avl

import (
	"cmp"
	"fmt"
)

// Validate walks the whole tree and checks the BST, height, balance and
// size invariants. It returns nil for a valid tree, otherwise an error
// wrapping ErrInvariantViolated that names the first offending value.
//
// Complexity: O(n) time, O(log n) stack.
func (t *Tree[T]) Validate() error {
	_, count, err := validate(t.root, nil, nil)
	if err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: size %d, reachable nodes %d", ErrInvariantViolated, t.size, count)
	}

	return nil
}

// validate checks the subtree rooted at n against the open bounds (lo, hi)
// inherited from its ancestors, and returns its computed height and node count.
func validate[T cmp.Ordered](n *Node[T], lo, hi *T) (height, count int, err error) {
	if n == nil {
		return 0, 0, nil
	}

	// 1. Ordering against every ancestor, through the inherited bounds
	if lo != nil && !(*lo < n.value) {
		return 0, 0, fmt.Errorf("%w: %v not greater than ancestor %v", ErrInvariantViolated, n.value, *lo)
	}
	if hi != nil && !(n.value < *hi) {
		return 0, 0, fmt.Errorf("%w: %v not less than ancestor %v", ErrInvariantViolated, n.value, *hi)
	}

	// 2. Children
	hl, cl, err := validate(n.left, lo, &n.value)
	if err != nil {
		return 0, 0, err
	}
	hr, cr, err := validate(n.right, &n.value, hi)
	if err != nil {
		return 0, 0, err
	}

	// 3. Stored height and balance
	height = 1 + max(hl, hr)
	if n.height != height {
		return 0, 0, fmt.Errorf("%w: %v stores height %d, computed %d", ErrInvariantViolated, n.value, n.height, height)
	}
	if bf := hl - hr; bf > 1 || bf < -1 {
		return 0, 0, fmt.Errorf("%w: %v has balance factor %d", ErrInvariantViolated, n.value, bf)
	}

	return height, 1 + cl + cr, nil
}
