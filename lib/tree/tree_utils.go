package tree

import (
	"errors"

	"go.uber.org/multierr"

	"github.com/Paramecium13/advanced-algorithms/lib/infra"
)

var (
	errRBTreeRedViolation   = errors.New("[tree] rbtree red violation")
	errRBTreeBlackViolation = errors.New("[tree] rbtree black violation")
	errAVLHeightViolation   = errors.New("[tree] avl height violation")
	errCountViolation       = errors.New("[tree] subtree count violation")
	errOrderViolation       = errors.New("[tree] inorder sequence violation")
)

// tree rule validation utilities, used by the tests after every mutation.

// Inorder traversal to validate the red rules: black root, no red node
// with a red parent or child.
func RedViolationValidate[K infra.OrderedKey](tree OrderStatTree[K]) error {
	size := tree.Len()
	aux := tree.Root()
	if size <= 0 || aux == nil {
		return nil
	}
	if aux.isRed() {
		return errRBTreeRedViolation
	}

	stack := make([]*Node[K], 0, size>>1)
	defer func() {
		clear(stack)
	}()

	for ; aux != nil; aux = aux.left {
		stack = append(stack, aux)
	}

	for size = int64(len(stack)); size > 0; size = int64(len(stack)) {
		if aux = stack[size-1]; aux.isRed() {
			if aux.parent.isRed() || aux.left.isRed() || aux.right.isRed() {
				return errRBTreeRedViolation
			}
		}

		stack = stack[:size-1]
		if aux.right != nil {
			for aux = aux.right; aux != nil; aux = aux.left {
				stack = append(stack, aux)
			}
		}
	}
	return nil
}

func blackDepthTo[K infra.OrderedKey](target, to *Node[K]) int {
	depth := 0
	for aux := target; aux != to; aux = aux.parent {
		if aux.isBlack() {
			depth++
		}
	}
	return depth
}

// BFS traversal to load all nodes hanging at least one nil leaf.
func bfsLeaves[K infra.OrderedKey](tree OrderStatTree[K]) []*Node[K] {
	size := tree.Len()
	aux := tree.Root()
	if size <= 0 || aux == nil {
		return nil
	}

	leaves := make([]*Node[K], 0, size>>1+1)
	stack := make([]*Node[K], 0, size>>1)
	defer func() {
		clear(stack)
	}()
	stack = append(stack, aux)

	for len(stack) > 0 {
		aux = stack[0]
		if /* nil leaves, keep one */ aux.left == nil || aux.right == nil {
			leaves = append(leaves, aux)
		}
		if aux.left != nil {
			stack = append(stack, aux.left)
		}
		if aux.right != nil {
			stack = append(stack, aux.right)
		}
		stack = stack[1:]
	}
	return leaves
}

// BlackViolationValidate checks that every path from the root down to a
// nil leaf crosses the same number of black nodes.
func BlackViolationValidate[K infra.OrderedKey](tree OrderStatTree[K]) error {
	leaves := bfsLeaves(tree)
	if leaves == nil {
		return nil
	}

	blackDepth := blackDepthTo(leaves[0], tree.Root())
	for i := 1; i < len(leaves); i++ {
		if blackDepthTo(leaves[i], tree.Root()) != blackDepth {
			return errRBTreeBlackViolation
		}
	}
	return nil
}

// HeightViolationValidate recomputes every subtree height bottom-up and
// checks both the stored heights and the AVL balance factor bound.
func HeightViolationValidate[K infra.OrderedKey](tree OrderStatTree[K]) error {
	var walk func(n *Node[K]) (int64, error)
	walk = func(n *Node[K]) (int64, error) {
		if n == nil {
			return -1, nil
		}
		lh, err := walk(n.left)
		if err != nil {
			return 0, err
		}
		rh, err := walk(n.right)
		if err != nil {
			return 0, err
		}
		h := lh
		if h < rh {
			h = rh
		}
		h++
		if n.Height() != h {
			return 0, errAVLHeightViolation
		}
		if bf := lh - rh; bf < -1 || bf > 1 {
			return 0, errAVLHeightViolation
		}
		return h, nil
	}
	_, err := walk(tree.Root())
	return err
}

// CountViolationValidate checks count(n) == 1 + count(left) + count(right)
// for every node.
func CountViolationValidate[K infra.OrderedKey](tree OrderStatTree[K]) error {
	var walk func(n *Node[K]) (int64, error)
	walk = func(n *Node[K]) (int64, error) {
		if n == nil {
			return 0, nil
		}
		lc, err := walk(n.left)
		if err != nil {
			return 0, err
		}
		rc, err := walk(n.right)
		if err != nil {
			return 0, err
		}
		if n.count != lc+rc+1 {
			return 0, errCountViolation
		}
		return n.count, nil
	}
	_, err := walk(tree.Root())
	return err
}

// OrderViolationValidate checks that an in-order walk yields keys strictly
// ascending under cmp.
func OrderViolationValidate[K infra.OrderedKey](tree OrderStatTree[K], cmp infra.OrderedKeyComparator[K]) error {
	var (
		prev     K
		violated bool
	)
	tree.Foreach(func(idx int64, key K) bool {
		if idx > 0 && cmp(prev, key) >= 0 {
			violated = true
			return false
		}
		prev = key
		return true
	})
	if violated {
		return errOrderViolation
	}
	return nil
}

// InvariantValidate bundles every rule that applies to the given variant
// into one combined report.
func InvariantValidate[K infra.OrderedKey](tree OrderStatTree[K]) error {
	switch t := tree.(type) {
	case *avlTree[K]:
		return multierr.Combine(
			HeightViolationValidate[K](tree),
			CountViolationValidate[K](tree),
			OrderViolationValidate(tree, t.cmp),
		)
	case *rbTree[K]:
		return multierr.Combine(
			RedViolationValidate[K](tree),
			BlackViolationValidate[K](tree),
			CountViolationValidate[K](tree),
			OrderViolationValidate(tree, t.cmp),
		)
	default:
		return multierr.Combine(
			CountViolationValidate[K](tree),
			OrderViolationValidate(tree, infra.OrderedKeyCompare[K]),
		)
	}
}
