package tree

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func maxDepth(n *Node[int]) int64 {
	if n == nil {
		return -1
	}
	left, right := maxDepth(n.left), maxDepth(n.right)
	if right > left {
		left = right
	}
	return left + 1
}

func TestNewRBTreeFromSorted(t *testing.T) {
	sorted := []int{1, 2, 3, 4, 5, 6, 7}
	tree, err := NewRBTreeFromSorted[int](sorted)
	require.NoError(t, err)
	require.Equal(t, int64(7), tree.Len())
	require.Equal(t, Black, tree.Root().Color())
	require.NoError(t, InvariantValidate[int](tree))
	// a bulk built tree of 7 keys is perfect
	require.Equal(t, int64(2), maxDepth(tree.Root()))

	tree.Foreach(func(idx int64, key int) bool {
		require.Equal(t, sorted[idx], key)
		return true
	})

	// the built tree accepts further mutations
	_, err = tree.Insert(8)
	require.NoError(t, err)
	_, err = tree.Remove(4)
	require.NoError(t, err)
	require.NoError(t, InvariantValidate[int](tree))
}

func TestNewAVLTreeFromSorted(t *testing.T) {
	sorted := lo.RangeFrom(0, 100)
	tree, err := NewAVLTreeFromSorted[int](sorted)
	require.NoError(t, err)
	require.Equal(t, int64(100), tree.Len())
	require.NoError(t, InvariantValidate[int](tree))

	for i := 0; i < 100; i++ {
		got, gotErr := tree.ElementAt(int64(i))
		require.NoError(t, gotErr)
		require.Equal(t, i, got)
	}

	_, err = tree.Insert(100)
	require.NoError(t, err)
	_, err = tree.RemoveAt(0)
	require.NoError(t, err)
	require.NoError(t, InvariantValidate[int](tree))
}

func TestNewTreeFromSorted_AllSmallSizes(t *testing.T) {
	for n := 0; n <= 33; n++ {
		sorted := lo.RangeFrom(0, n)

		avl, err := NewAVLTreeFromSorted[int](sorted)
		require.NoError(t, err)
		require.Equal(t, int64(n), avl.Len())
		require.NoError(t, InvariantValidate[int](avl))

		rb, err := NewRBTreeFromSorted[int](sorted)
		require.NoError(t, err)
		require.Equal(t, int64(n), rb.Len())
		require.NoError(t, InvariantValidate[int](rb))
	}
}

func TestNewTreeFromSorted_InvalidInput(t *testing.T) {
	_, err := NewAVLTreeFromSorted[int]([]int{1, 3, 2})
	require.ErrorIs(t, err, ErrTreeInvalidInput)
	_, err = NewRBTreeFromSorted[int]([]int{1, 2, 2, 3})
	require.ErrorIs(t, err, ErrTreeInvalidInput)

	// a desc tree expects the keys in comparator order
	_, err = NewRBTreeFromSorted[int]([]int{1, 2, 3}, WithTreeDesc[int]())
	require.ErrorIs(t, err, ErrTreeInvalidInput)
	tree, err := NewRBTreeFromSorted[int]([]int{3, 2, 1}, WithTreeDesc[int]())
	require.NoError(t, err)
	got, err := tree.ElementAt(0)
	require.NoError(t, err)
	require.Equal(t, 3, got)
	require.NoError(t, InvariantValidate[int](tree))
}

func TestNewTreeFromSorted_WithNodeIndex(t *testing.T) {
	sorted := lo.RangeFrom(0, 64)
	tree, err := NewRBTreeFromSorted[int](sorted, WithTreeNodeIndex[int]())
	require.NoError(t, err)
	for i := 0; i < 64; i++ {
		require.True(t, tree.Contains(i))
	}
	_, err = tree.Remove(32)
	require.NoError(t, err)
	require.False(t, tree.Contains(32))
	require.NoError(t, InvariantValidate[int](tree))
}
