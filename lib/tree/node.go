package tree

import (
	"github.com/Paramecium13/advanced-algorithms/lib/infra"
)

// Node is the structural unit shared by both tree variants: key, parent and
// child links plus the subtree element count that backs the rank queries.
// The single balance-metadata word is interpreted per variant, subtree
// height for the AVL tree and node color for the red-black tree, so the
// rotation and order-statistics code below runs on the structural fields
// only and never branches on the variant.
// Parent links are back-references for traversal and rotation; ownership
// runs strictly top-down from the tree root.
type Node[K infra.OrderedKey] struct {
	parent *Node[K]
	left   *Node[K]
	right  *Node[K]
	key    K
	count  int64
	bal    int64
}

func (node *Node[K]) Key() K {
	return node.key
}

// Count of the nodes in the subtree rooted here, including node itself.
func (node *Node[K]) Count() int64 {
	if node == nil {
		return 0
	}
	return node.count
}

func (node *Node[K]) Left() *Node[K] {
	if node == nil {
		return nil
	}
	return node.left
}

func (node *Node[K]) Right() *Node[K] {
	if node == nil {
		return nil
	}
	return node.right
}

func (node *Node[K]) Parent() *Node[K] {
	if node == nil {
		return nil
	}
	return node.parent
}

// Color reads the balance metadata of a red-black tree node. A nil node is
// a black leaf.
func (node *Node[K]) Color() RBColor {
	if node == nil {
		return Black
	}
	return RBColor(node.bal)
}

// Height reads the balance metadata of an AVL tree node. An empty subtree
// has height -1, a leaf height 0.
func (node *Node[K]) Height() int64 {
	if node == nil {
		return -1
	}
	return node.bal
}

func (node *Node[K]) setColor(color RBColor) {
	node.bal = int64(color)
}

func (node *Node[K]) isRed() bool {
	return node != nil && RBColor(node.bal) == Red
}

func (node *Node[K]) isBlack() bool {
	return node == nil || RBColor(node.bal) == Black
}

// fixHeight recomputes the AVL height from the child heights.
func (node *Node[K]) fixHeight() {
	lh, rh := node.left.Height(), node.right.Height()
	if lh < rh {
		lh = rh
	}
	node.bal = lh + 1
}

// balanceFactor is height(left) - height(right); outside [-1, 1] the AVL
// invariant is broken at this node.
func (node *Node[K]) balanceFactor() int64 {
	return node.left.Height() - node.right.Height()
}

// fixCount recomputes the subtree count from the child counts.
func (node *Node[K]) fixCount() {
	node.count = node.left.Count() + node.right.Count() + 1
}

func (node *Node[K]) isRoot() bool {
	return node != nil && node.parent == nil
}

func (node *Node[K]) isLeaf() bool {
	return node != nil && node.left == nil && node.right == nil
}

func (node *Node[K]) Direction() Direction {
	if node == nil {
		// impossible run to here
		panic( /* debug assertion */ "[tree] nil node without direction")
	}

	if node.isRoot() {
		return Root
	}
	if node == node.parent.left {
		return Left
	}
	return Right
}

func (node *Node[K]) sibling() *Node[K] {
	switch node.Direction() {
	case Left:
		return node.parent.right
	case Right:
		return node.parent.left
	default:

	}
	return nil
}

func (node *Node[K]) uncle() *Node[K] {
	return node.parent.sibling()
}

func (node *Node[K]) hasUncle() bool {
	return !node.isRoot() && !node.parent.isRoot() && node.uncle() != nil
}

func (node *Node[K]) grandpa() *Node[K] {
	return node.parent.parent
}

func (node *Node[K]) fixLink() {
	if node.left != nil {
		node.left.parent = node
	}
	if node.right != nil {
		node.right.parent = node
	}
}

func (node *Node[K]) minimum() *Node[K] {
	aux := node
	for ; aux != nil && aux.left != nil; aux = aux.left {
	}
	return aux
}

func (node *Node[K]) maximum() *Node[K] {
	aux := node
	for ; aux != nil && aux.right != nil; aux = aux.right {
	}
	return aux
}

// The pred node of the current node is its previous node in sorted order.
func (node *Node[K]) pred() *Node[K] {
	x := node
	if x == nil {
		return nil
	}
	if x.left != nil {
		return x.left.maximum()
	}

	aux := x.parent
	// Backtrack to the ancestor that is the x's pred.
	for aux != nil && x == aux.left {
		x = aux
		aux = aux.parent
	}
	return aux
}

// The succ node of the current node is its next node in sorted order.
func (node *Node[K]) succ() *Node[K] {
	x := node
	if x == nil {
		return nil
	}
	if x.right != nil {
		return x.right.minimum()
	}

	aux := x.parent
	// Backtrack to the ancestor that is the x's succ.
	for aux != nil && x == aux.right {
		x = aux
		aux = aux.parent
	}
	return aux
}
