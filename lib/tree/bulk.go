package tree

import (
	"math/bits"

	"github.com/Paramecium13/advanced-algorithms/lib/infra"
)

// buildBalanced turns a strictly sorted key range into a midpoint-split
// near-complete shape in O(n), assigning subtree counts from the range
// sizes on the way. paint runs post-order, once the children exist, so a
// variant can derive its balance metadata from them.
func buildBalanced[K infra.OrderedKey](s []K, parent *Node[K], depth int64, paint func(z *Node[K], depth int64)) *Node[K] {
	if len(s) == 0 {
		return nil
	}
	mid := len(s) >> 1
	z := &Node[K]{key: s[mid], parent: parent, count: int64(len(s))}
	z.left = buildBalanced(s[:mid], z, depth+1, paint)
	z.right = buildBalanced(s[mid+1:], z, depth+1, paint)
	paint(z, depth)
	return z
}

// validateSorted fails fast on unsorted or duplicated bulk input; feeding
// a broken sequence to buildBalanced would corrupt the tree silently.
func validateSorted[K infra.OrderedKey](s []K, cmp infra.OrderedKeyComparator[K]) error {
	for i := 1; i < len(s); i++ {
		if cmp(s[i-1], s[i]) >= 0 {
			return ErrTreeInvalidInput
		}
	}
	return nil
}

// NewAVLTreeFromSorted bulk-builds an AVL tree from keys already strictly
// sorted by the tree's comparator, in O(n) instead of O(n log n) repeated
// inserts. Returns ErrTreeInvalidInput when the input is out of order or
// contains duplicates.
func NewAVLTreeFromSorted[K infra.OrderedKey](sorted []K, opts ...TreeOpt[K]) (AVLTree[K], error) {
	tree := &avlTree[K]{xTree: newXTree(opts...)}
	if err := validateSorted(sorted, tree.cmp); err != nil {
		return nil, err
	}
	tree.root = buildBalanced(sorted, nil, 0, func(z *Node[K], _ int64) {
		z.fixHeight()
		tree.indexStore(z)
	})
	return tree, nil
}

// NewRBTreeFromSorted bulk-builds a red-black tree the same way. The
// midpoint split puts every node either on a fully populated level or on
// the deepest one, so painting exactly the deepest level red yields a
// uniform black depth on every root-to-nil path.
func NewRBTreeFromSorted[K infra.OrderedKey](sorted []K, opts ...TreeOpt[K]) (RBTree[K], error) {
	tree := &rbTree[K]{xTree: newXTree(opts...)}
	if err := validateSorted(sorted, tree.cmp); err != nil {
		return nil, err
	}
	if len(sorted) == 0 {
		return tree, nil
	}
	redDepth := int64(bits.Len(uint(len(sorted))) - 1)
	tree.root = buildBalanced(sorted, nil, 0, func(z *Node[K], depth int64) {
		if depth == redDepth {
			z.setColor(Red)
		} else {
			z.setColor(Black)
		}
		tree.indexStore(z)
	})
	tree.root.setColor(Black)
	return tree, nil
}
