package avl_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/avltree/avl"
)

// requireValid fails the test immediately when any invariant is broken.
func requireValid[T interface{ ~int | ~string }](t *testing.T, tr *avl.Tree[T]) {
	t.Helper()
	require.NoError(t, tr.Validate())
}

func TestNew_Empty(t *testing.T) {
	tr := avl.New[int]()
	assert.Equal(t, 0, tr.Len())
	assert.Equal(t, 0, tr.Height())
	assert.Nil(t, tr.Root())
	assert.False(t, tr.Rewrite(), "default policy must ignore duplicates")
	assert.Empty(t, tr.Values())
	requireValid(t, tr)
}

func TestNew_WithValues(t *testing.T) {
	tr := avl.New(avl.WithValues(5, 1, 9), avl.WithValues(3))
	assert.Equal(t, 4, tr.Len())
	assert.Equal(t, []int{1, 3, 5, 9}, tr.Values())
	requireValid(t, tr)
}

// TestScenario_BasicInsertOrder inserts [40 30 20 0] without rewrite.
func TestScenario_BasicInsertOrder(t *testing.T) {
	tr := avl.New[int]()
	tr.InsertMany(40, 30, 20, 0)

	assert.Equal(t, []int{0, 20, 30, 40}, tr.Values())
	assert.Equal(t, 4, tr.Len())
	// ceil(log2(4+1)) = 3 is the height of a perfectly balanced 4-node tree
	assert.LessOrEqual(t, tr.Height(), 3)
	requireValid(t, tr)
}

// TestScenario_ForcedRotation checks that the root is a true pivot: every
// value on its left is smaller and every value on its right is larger, and
// both sides differ in height by at most one.
func TestScenario_ForcedRotation(t *testing.T) {
	in := []int{10, 20, 3, 7, 8, 9, 1}
	tr := avl.New(avl.WithValues(in...))

	want := slices.Clone(in)
	slices.Sort(want)
	assert.Equal(t, []int{1, 3, 7, 8, 9, 10, 20}, tr.Values())
	assert.Equal(t, want, tr.Values())

	root := tr.Root()
	require.NotNil(t, root)
	leftCount := countNodes(root.Left())
	assert.Equal(t, want[leftCount], root.Value(), "root must sit at its in-order rank")
	assert.LessOrEqual(t, abs(root.Left().Height()-root.Right().Height()), 1)
	assert.Equal(t, 3, tr.Height(), "7 values fit a perfect tree of height 3")
	requireValid(t, tr)
}

// TestScenario_DeleteTwoChildren deletes 8 from a tree where 8 has two children.
func TestScenario_DeleteTwoChildren(t *testing.T) {
	in := []int{10, 20, 3, 7, 8, 9, 1, 6}
	tr := avl.New(avl.WithValues(in...))
	n, err := tr.Find(8)
	require.NoError(t, err)
	require.NotNil(t, n.Left())
	require.NotNil(t, n.Right())

	require.NoError(t, tr.Delete(8))

	want := slices.Clone(in)
	slices.Sort(want)
	want = slices.DeleteFunc(want, func(v int) bool { return v == 8 })
	assert.Equal(t, want, tr.Values())
	assert.Equal(t, 7, tr.Len())
	assert.False(t, tr.Contains(8))
	requireValid(t, tr)
}

// TestScenario_RewritePolicy inserts the same value three times with rewrite on.
func TestScenario_RewritePolicy(t *testing.T) {
	tr := avl.New(avl.WithRewrite[int](true))
	assert.True(t, tr.Insert(5))
	assert.False(t, tr.Insert(5))
	assert.False(t, tr.Insert(5))

	assert.Equal(t, 1, tr.Len())
	assert.Equal(t, []int{5}, tr.Values())
	assert.Nil(t, tr.Root().Left())
	assert.Nil(t, tr.Root().Right())
	requireValid(t, tr)
}

func TestInsert_DuplicateIgnoredWithoutRewrite(t *testing.T) {
	tr := avl.New(avl.WithValues(2, 1, 3))
	root := tr.Root()

	assert.False(t, tr.Insert(2))
	assert.Equal(t, 3, tr.InsertMany(1, 4, 3, 5, 6))
	assert.Equal(t, 6, tr.Len())
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, tr.Values())
	assert.NotSame(t, root, tr.Root(), "inserting 4,5,6 must rotate the root away")
	requireValid(t, tr)
}

func TestInsertSeq(t *testing.T) {
	tr := avl.New[string]()
	added := tr.InsertSeq(slices.Values([]string{"pear", "apple", "fig", "apple"}))
	assert.Equal(t, 3, added)
	assert.Equal(t, []string{"apple", "fig", "pear"}, tr.Values())
	requireValid(t, tr)
}

// TestScenario_EmptyTreeErrors checks every failing call on an empty tree.
func TestScenario_EmptyTreeErrors(t *testing.T) {
	tr := avl.New[int]()

	_, err := tr.Min()
	assert.ErrorIs(t, err, avl.ErrEmptyTree)
	_, err = tr.Max()
	assert.ErrorIs(t, err, avl.ErrEmptyTree)
	assert.ErrorIs(t, tr.Delete(42), avl.ErrNotFound)
	_, err = tr.Find(42)
	assert.ErrorIs(t, err, avl.ErrNotFound)

	assert.Equal(t, 0, tr.Len())
	requireValid(t, tr)
}

func TestMinMax(t *testing.T) {
	tr := avl.New(avl.WithValues(50, 20, 80, 10, 90, 60))

	lo, err := tr.Min()
	require.NoError(t, err)
	assert.Equal(t, 10, lo)

	hi, err := tr.Max()
	require.NoError(t, err)
	assert.Equal(t, 90, hi)

	require.NoError(t, tr.Delete(10))
	require.NoError(t, tr.Delete(90))
	lo, _ = tr.Min()
	hi, _ = tr.Max()
	assert.Equal(t, 20, lo)
	assert.Equal(t, 80, hi)
}

func TestDelete_MissLeavesTreeUntouched(t *testing.T) {
	tr := avl.New(avl.WithValues(4, 2, 6, 1, 3, 5, 7))
	root := tr.Root()
	before := tr.Values()
	height := tr.Height()

	err := tr.Delete(8)
	require.ErrorIs(t, err, avl.ErrNotFound)
	assert.Contains(t, err.Error(), "8")

	assert.Same(t, root, tr.Root())
	assert.Equal(t, before, tr.Values())
	assert.Equal(t, height, tr.Height())
	assert.Equal(t, 7, tr.Len())
	requireValid(t, tr)
}

func TestDelete_LeafAndSingleChild(t *testing.T) {
	tr := avl.New(avl.WithValues(20, 10, 30, 25))

	// 25 is a leaf
	require.NoError(t, tr.Delete(25))
	assert.Equal(t, []int{10, 20, 30}, tr.Values())
	requireValid(t, tr)

	// 30 now a leaf again, insert 35 to give it one child then delete it
	tr.Insert(35)
	require.NoError(t, tr.Delete(30))
	assert.Equal(t, []int{10, 20, 35}, tr.Values())
	requireValid(t, tr)

	// the root itself
	require.NoError(t, tr.Delete(20))
	assert.Equal(t, []int{10, 35}, tr.Values())
	assert.Equal(t, 2, tr.Len())
	requireValid(t, tr)
}

func TestDelete_DrainToEmpty(t *testing.T) {
	in := []int{8, 4, 12, 2, 6, 10, 14, 1, 3, 5, 7, 9, 11, 13, 15}
	tr := avl.New(avl.WithValues(in...))
	for i, v := range in {
		require.NoError(t, tr.Delete(v), "delete %d", v)
		assert.Equal(t, len(in)-i-1, tr.Len())
		requireValid(t, tr)
	}
	assert.Nil(t, tr.Root())
	assert.Equal(t, 0, tr.Height())
}

func TestDeleteMany_JoinsMisses(t *testing.T) {
	tr := avl.New(avl.WithValues(1, 2, 3))
	err := tr.DeleteMany(2, 9, 3, 7)

	require.Error(t, err)
	assert.ErrorIs(t, err, avl.ErrNotFound)
	assert.Contains(t, err.Error(), "9")
	assert.Contains(t, err.Error(), "7")
	assert.Equal(t, []int{1}, tr.Values(), "hits around the misses still apply")

	assert.NoError(t, tr.DeleteMany(1))
	assert.Equal(t, 0, tr.Len())
}

func TestContains(t *testing.T) {
	tr := avl.New(avl.WithValues("m", "c", "x", "a"))
	assert.True(t, tr.Contains("m"))
	assert.True(t, tr.Contains("a"))
	assert.False(t, tr.Contains("b"))
	assert.False(t, tr.Contains(""))
}

func TestClear(t *testing.T) {
	tr := avl.New(avl.WithValues(3, 1, 2))
	tr.Clear()

	assert.Equal(t, 0, tr.Len())
	assert.Nil(t, tr.Root())
	assert.False(t, tr.Contains(1))
	_, err := tr.Min()
	assert.ErrorIs(t, err, avl.ErrEmptyTree)

	// still usable after Clear
	tr.InsertMany(9, 8)
	assert.Equal(t, []int{8, 9}, tr.Values())
	requireValid(t, tr)
}

func TestNode_NilAccessors(t *testing.T) {
	var n *avl.Node[int]
	assert.Equal(t, 0, n.Value())
	assert.Equal(t, 0, n.Height())
	assert.Equal(t, 0, n.BalanceFactor())
	assert.Nil(t, n.Left())
	assert.Nil(t, n.Right())
}

func TestRotation_String(t *testing.T) {
	assert.Equal(t, "left", avl.RotateLeft.String())
	assert.Equal(t, "right", avl.RotateRight.String())
	assert.Equal(t, "unknown", avl.Rotation(7).String())
}

// countNodes counts the nodes of a subtree through the public accessors.
func countNodes[T interface{ ~int | ~string }](n *avl.Node[T]) int {
	if n == nil {
		return 0
	}

	return 1 + countNodes(n.Left()) + countNodes(n.Right())
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
