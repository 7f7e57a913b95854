package avl_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/avltree/avl"
)

// ExampleNew builds a tree from a sequence that forces rotations and prints
// it in both directions.
//
// Insert order 10 20 3 7 8 9 1 ends in the shape:
//
//	      8
//	    /   \
//	   3     10
//	  / \   /  \
//	 1   7 9    20
func ExampleNew() {
	tr := avl.New(avl.WithValues(10, 20, 3, 7, 8, 9, 1))

	fmt.Println(tr.Values())
	fmt.Println(tr.ReverseValues())
	fmt.Println("root:", tr.Root().Value(), "height:", tr.Height(), "len:", tr.Len())

	// Output:
	// [1 3 7 8 9 10 20]
	// [20 10 9 8 7 3 1]
	// root: 8 height: 3 len: 7
}

// ExampleTree_Delete removes a node with two children. Its in-order
// successor takes its place.
func ExampleTree_Delete() {
	tr := avl.New(avl.WithValues(10, 20, 3, 7, 8, 9, 1, 6))

	if err := tr.Delete(8); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(tr.Values(), "root:", tr.Root().Value())

	err := tr.Delete(8)
	fmt.Println(errors.Is(err, avl.ErrNotFound), err)

	// Output:
	// [1 3 6 7 9 10 20] root: 9
	// true avl: delete 8: avl: value not found
}

// ExampleWithRewrite shows the two duplicate policies side by side.
func ExampleWithRewrite() {
	keep := avl.New(avl.WithValues(5, 5, 5))
	over := avl.New(avl.WithRewrite[int](true), avl.WithOnRewrite(func(v int) {
		fmt.Println("rewrote", v)
	}))
	over.InsertMany(5, 5, 5)

	fmt.Println(keep.Len(), over.Len())

	// Output:
	// rewrote 5
	// rewrote 5
	// 1 1
}

// ExampleTree_Range lists the values inside a closed interval.
func ExampleTree_Range() {
	tr := avl.New(avl.WithValues("delta", "alpha", "echo", "charlie", "bravo"))
	for v := range tr.Range("b", "d") {
		fmt.Println(v)
	}

	// Output:
	// bravo
	// charlie
}

// ExampleTree_Min shows the empty-tree error.
func ExampleTree_Min() {
	tr := avl.New[float64]()
	_, err := tr.Min()
	fmt.Println(err)

	tr.InsertMany(2.5, -1, 7)
	lo, _ := tr.Min()
	hi, _ := tr.Max()
	fmt.Println(lo, hi)

	// Output:
	// avl: tree is empty
	// -1 7
}
