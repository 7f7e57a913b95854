// Package avltree is an in-memory, self-balancing ordered set for Go:
// an AVL tree with ordered iteration, observable rebalancing and a small
// command-line tool for experimenting with it.
//
// 🚀 What is in the box?
//
//	• avl/         — the tree: Insert, Delete, Contains, Min/Max, Ascend/Descend/Range
//	• avl/render   — sideways text drawing of a tree for debugging
//	• hooks/       — slog logging, Prometheus metrics and fan-out for tree events
//	• scenario/    — YAML scripts of inserts, deletes and probes, with a runner
//	• cmd/avltree  — CLI: build a tree from arguments or replay a scenario
//
// ✨ Why avltree?
//
//   - Guaranteed O(log n) updates and lookups: height stays within ~1.44·log2(n)
//   - Generic over cmp.Ordered: ints, floats, strings and their named types
//   - Restartable iterators built on iter.Seq, usable with range-over-func
//   - Hooks (OnCreate, OnRemove, OnRotate, OnRewrite) instead of hidden logging
//
// Quick ASCII example: inserting 10 20 3 7 8 9 1 rebalances into
//
//	      8
//	    /   \
//	   3     10
//	  / \   /  \
//	 1   7 9    20
//
//	go get github.com/katalvlaran/avltree/avl
package avltree
