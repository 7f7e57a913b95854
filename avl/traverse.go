package avl

import "iter"

// Ascend returns an iterator over the stored values in ascending order.
//
// Each range over the iterator starts a fresh in-order walk from the root
// as it is when iteration begins, so the sequence is restartable. Breaking
// out of the loop stops the walk. The tree must not be mutated while an
// iteration is in progress.
//
// Complexity: O(n) time, O(log n) stack.
func (t *Tree[T]) Ascend() iter.Seq[T] {
	return func(yield func(T) bool) {
		stack := make([]*Node[T], 0, t.root.Height())
		n := t.root
		for n != nil || len(stack) > 0 {
			// push the left spine
			for n != nil {
				stack = append(stack, n)
				n = n.left
			}
			n = stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if !yield(n.value) {
				return
			}
			n = n.right
		}
	}
}

// Descend returns an iterator over the stored values in descending order.
// It is the exact reverse of Ascend and shares its restart semantics.
func (t *Tree[T]) Descend() iter.Seq[T] {
	return func(yield func(T) bool) {
		stack := make([]*Node[T], 0, t.root.Height())
		n := t.root
		for n != nil || len(stack) > 0 {
			for n != nil {
				stack = append(stack, n)
				n = n.right
			}
			n = stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if !yield(n.value) {
				return
			}
			n = n.left
		}
	}
}

// Range returns an ascending iterator over the values v with lo <= v <= hi.
// Subtrees entirely below lo are never visited and the walk stops at the
// first value above hi. lo > hi yields nothing.
//
// Complexity: O(log n + k) for k yielded values.
func (t *Tree[T]) Range(lo, hi T) iter.Seq[T] {
	return func(yield func(T) bool) {
		stack := make([]*Node[T], 0, t.root.Height())
		n := t.root
		for n != nil || len(stack) > 0 {
			for n != nil {
				if n.value < lo {
					n = n.right // whole left side is below lo
					continue
				}
				stack = append(stack, n)
				n = n.left
			}
			if len(stack) == 0 {
				return
			}
			n = stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if n.value > hi || !yield(n.value) {
				return
			}
			n = n.right
		}
	}
}

// Values returns a freshly allocated ascending snapshot of the tree.
func (t *Tree[T]) Values() []T {
	out := make([]T, 0, t.size)
	for v := range t.Ascend() {
		out = append(out, v)
	}

	return out
}

// ReverseValues returns a freshly allocated descending snapshot of the tree.
func (t *Tree[T]) ReverseValues() []T {
	out := make([]T, 0, t.size)
	for v := range t.Descend() {
		out = append(out, v)
	}

	return out
}
