package avl

import "cmp"

// Tree is an AVL-balanced ordered set of distinct values.
// The zero value is not usable; construct with New.
type Tree[T cmp.Ordered] struct {
	root    *Node[T] // nil for an empty tree
	rewrite bool     // duplicate policy
	size    int      // nodes reachable from root
	hooks   Hooks[T] // instrumentation, never required for correctness
}

// New builds an empty Tree, applies opts, then inserts the seed values
// from WithValues in order.
//
// Complexity: O(k log k) for k seed values.
func New[T cmp.Ordered](opts ...Option[T]) *Tree[T] {
	// 1. Apply options over the defaults
	o := DefaultOptions[T]()
	var fn Option[T]
	for _, fn = range opts {
		fn(&o)
	}

	// 2. Build the empty tree
	t := &Tree[T]{
		rewrite: o.Rewrite,
		hooks:   o.Hooks,
	}

	// 3. Seed values go through the regular insert path
	t.InsertMany(o.Values...)

	return t
}

// Len returns the number of values currently stored.
func (t *Tree[T]) Len() int {
	return t.size
}

// Height returns the height of the root (0 when empty).
func (t *Tree[T]) Height() int {
	return t.root.Height()
}

// Root exposes the root node for read-only collaborators such as renderers.
// It returns nil for an empty tree.
func (t *Tree[T]) Root() *Node[T] {
	return t.root
}

// Rewrite reports the duplicate insertion policy the tree was built with.
func (t *Tree[T]) Rewrite() bool {
	return t.rewrite
}

// Clear drops every value in O(1). Detached nodes are left to the garbage
// collector; no hooks fire.
func (t *Tree[T]) Clear() {
	t.root = nil
	t.size = 0
}
