package avl

import "iter"

// Insert adds v to the tree and restores every invariant before returning.
// It reports whether a new node was created; a duplicate either overwrites
// the stored value (rewrite policy) or is ignored, and in both cases
// Insert returns false.
//
// Complexity: O(log n).
func (t *Tree[T]) Insert(v T) bool {
	before := t.size
	t.root = t.insert(t.root, v)

	return t.size > before
}

// InsertMany inserts each value in iteration order. Values are independent:
// a duplicate never stops the remaining inserts. It returns how many new
// nodes were created.
func (t *Tree[T]) InsertMany(values ...T) int {
	var (
		added int
		v     T
	)
	for _, v = range values {
		if t.Insert(v) {
			added++
		}
	}

	return added
}

// InsertSeq drains seq into the tree, like InsertMany for lazy sources.
func (t *Tree[T]) InsertSeq(seq iter.Seq[T]) int {
	var added int
	for v := range seq {
		if t.Insert(v) {
			added++
		}
	}

	return added
}

// insert places v into the subtree rooted at n and returns the new subtree root.
func (t *Tree[T]) insert(n *Node[T], v T) *Node[T] {
	// 1. Fell off the tree: new leaf
	if n == nil {
		t.size++
		if t.hooks.OnCreate != nil {
			t.hooks.OnCreate(v)
		}

		return newLeaf(v)
	}

	// 2. Descend, or settle a duplicate. Shape is unchanged on duplicates,
	//    so no height update or rotation is needed on the way back.
	switch {
	case v < n.value:
		n.left = t.insert(n.left, v)
	case v > n.value:
		n.right = t.insert(n.right, v)
	default:
		if t.rewrite {
			n.value = v
			if t.hooks.OnRewrite != nil {
				t.hooks.OnRewrite(v)
			}
		}

		return n
	}

	// 3. Repair on the return path
	n.fixHeight()

	return t.rebalance(n)
}
