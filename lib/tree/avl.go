package tree

import (
	"github.com/Paramecium13/advanced-algorithms/lib/infra"
)

// avlTree balances by subtree height: after every structural change the
// balance factor height(left)-height(right) of each node on the mutated
// path is pulled back into [-1, 1] with at most one single or double
// rotation per node.
type avlTree[K infra.OrderedKey] struct {
	xTree[K]
}

func NewAVLTree[K infra.OrderedKey](opts ...TreeOpt[K]) AVLTree[K] {
	return &avlTree[K]{xTree: newXTree(opts...)}
}

func (tree *avlTree[K]) Height() int64 {
	return tree.root.Height()
}

// The shared rotations maintain links and counts; the AVL variant also has
// to refresh the two rotated heights, child before new parent.
func (tree *avlTree[K]) rotateLeft(x *Node[K]) {
	tree.leftRotate(x)
	x.fixHeight()
	x.parent.fixHeight()
}

func (tree *avlTree[K]) rotateRight(x *Node[K]) {
	tree.rightRotate(x)
	x.fixHeight()
	x.parent.fixHeight()
}

/*
Four violation shapes, picked by the heavier child's own child heights.

	 left-left          left-right        right-right       right-left

	     Z                  Z                X                  X
	    /                  /                  \                  \
	   Y       rR(Z)      X     lR(X),rR(Z)    Y      lR(X)       Z     rR(Z),lR(X)
	  /        =====>      \    ===========>    \     =====>     /      ===========>
	 X                      Y                    Z              Y

A double rotation reduces the mixed shapes to the straight ones; exactly
one node regains its balance per rotation site.
*/
func (tree *avlTree[K]) rebalance(from *Node[K]) {
	for aux := from; aux != nil; {
		next := aux.parent
		aux.fixHeight()
		if bf := aux.balanceFactor(); bf > 1 {
			if aux.left.balanceFactor() >= 0 {
				/* left-left */
				tree.rotateRight(aux)
			} else {
				/* left-right */
				tree.rotateLeft(aux.left)
				tree.rotateRight(aux)
			}
		} else if bf < -1 {
			if aux.right.balanceFactor() <= 0 {
				/* right-right */
				tree.rotateLeft(aux)
			} else {
				/* right-left */
				tree.rotateRight(aux.right)
				tree.rotateLeft(aux)
			}
		}
		aux = next
	}
}

func (tree *avlTree[K]) Insert(key K) (int64, error) {
	z, rank, err := tree.attach(key)
	if err != nil {
		return -1, err
	}
	// a fresh node is a leaf, height 0 is already in place
	tree.rebalance(z.parent)
	return rank, nil
}

func (tree *avlTree[K]) Remove(key K) (int64, error) {
	if tree.Len() <= 0 {
		return -1, ErrTreeEmpty
	}
	z, rank, found := tree.lookupWithRank(key)
	if !found {
		return -1, ErrTreeKeyNotFound
	}
	tree.indexDelete(key)
	tree.removeNode(z)
	return rank, nil
}

func (tree *avlTree[K]) RemoveAt(idx int64) (K, error) {
	z := tree.nodeAt(idx)
	if z == nil {
		var zero K
		return zero, ErrTreeKeyNotFound
	}
	key := z.key
	tree.indexDelete(key)
	tree.removeNode(z)
	return key, nil
}

// removeNode detaches z, or, when z has two children, overwrites z's key
// with its in-order neighbor's and detaches that neighbor instead.
func (tree *avlTree[K]) removeNode(z *Node[K]) {
	y := z
	if z.left != nil && z.right != nil {
		if tree.isRmBorrowSucc {
			y = z.succ()
		} else {
			y = z.pred()
		}
		// z keeps its identity and position, only the key moves
		z.key = y.key
		tree.indexStore(z)
	}

	// y has one child at most
	child := y.left
	if child == nil {
		child = y.right
	}
	p := y.parent
	switch y.Direction() {
	case Root:
		tree.root = child
	case Left:
		p.left = child
	case Right:
		p.right = child
	default:
		// impossible run to here
		panic( /* debug assertion */ "[avl] unknown node direction to remove")
	}
	if child != nil {
		child.parent = p
	}
	tree.decrCounts(p)
	y.parent, y.left, y.right = nil, nil, nil
	y.count = 0

	// Rebalancing restarts from the surviving parent of the node that was
	// physically detached, never from the freed node itself.
	tree.rebalance(p)
}
