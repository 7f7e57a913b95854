// Package avl implements a height-balanced binary search tree (AVL tree)
// over any totally ordered value type.
//
// What:
//
//   - Tree[T]: an ordered set of distinct values that restores the AVL
//     balance condition after every Insert and Delete, so membership,
//     extrema, insertion and deletion all run in O(log n).
//   - Node[T]: a read-only view of one stored value, its height and its
//     two optional children. Collaborators such as avl/render walk the
//     structure through Root().Left()/Right() without mutating it.
//
// Why:
//   - Keep a sorted set in memory with predictable worst-case cost.
//   - Iterate values in ascending or descending order at any time.
//   - Observe structural decisions (node creation, removal, rotation)
//     through hooks instead of log lines baked into the algorithm.
//
// Invariants (hold after every public call returns):
//
//   - BST:     left subtree < node < right subtree, strictly.
//   - Height:  height(n) = 1 + max(height(left), height(right)), height(nil) = 0.
//   - Balance: |height(left) - height(right)| <= 1 for every node.
//   - Size:    Len() equals the number of nodes reachable from the root.
//
// Validate() checks all four and is cheap enough to call from tests.
//
// Duplicate policy:
//
//   - WithRewrite(true):  inserting a present value overwrites the stored
//     value in place (no new node, no size change, OnRewrite fires).
//   - WithRewrite(false): inserting a present value is a silent no-op.
//     This is the default.
//
// Complexity:
//
//   - Insert, Delete, Contains, Find, Min, Max: O(log n)
//   - Ascend, Descend, Values:                  O(n), O(log n) extra stack
//   - Range(lo, hi):                            O(log n + k) for k yielded values
//   - Len, Clear, Height, Root:                 O(1)
//
// Errors:
//
//   - ErrNotFound           Delete or Find of an absent value
//   - ErrEmptyTree          Min or Max on an empty tree
//   - ErrInvariantViolated  Validate found a broken invariant
//
// Concurrency:
//
//	A Tree is not safe for concurrent use. Callers sharing one Tree across
//	goroutines must serialize every call themselves, for example with one
//	sync.Mutex per tree held for the duration of each call. Iterators do not
//	tolerate mutation of the tree while they are being consumed.
//
// Values must form a total order under < and ==. Floating-point NaN does not,
// and storing it leaves the tree in an unspecified state.
package avl
