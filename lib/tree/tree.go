package tree

import (
	"github.com/cornelk/hashmap"

	"github.com/Paramecium13/advanced-algorithms/lib/infra"
)

// TreeOpt configures either tree variant at construction time.
type TreeOpt[K infra.OrderedKey] func(*xTree[K])

// WithTreeDesc reverses the comparator, so index 0 addresses the greatest
// key instead of the smallest.
func WithTreeDesc[K infra.OrderedKey]() TreeOpt[K] {
	return func(tree *xTree[K]) {
		tree.isDesc = true
	}
}

// WithTreeKeyComparator replaces the default ascending comparator.
// Keys that compare equal must also be equal under ==, otherwise the
// node index and the tree disagree about identity.
func WithTreeKeyComparator[K infra.OrderedKey](cmp infra.OrderedKeyComparator[K]) TreeOpt[K] {
	return func(tree *xTree[K]) {
		tree.cmp = cmp
	}
}

// WithTreeNodeIndex attaches a key-to-node hash index that turns Contains
// and the found-key paths of IndexOf, NextLower and NextHigher into O(1)
// average lookups, trading one map entry per live node.
func WithTreeNodeIndex[K infra.OrderedKey]() TreeOpt[K] {
	return func(tree *xTree[K]) {
		tree.enableIdx = true
	}
}

// WithTreeRemoveBorrowSucc makes the two-children removal case borrow the
// in-order successor instead of the predecessor.
func WithTreeRemoveBorrowSucc[K infra.OrderedKey]() TreeOpt[K] {
	return func(tree *xTree[K]) {
		tree.isRmBorrowSucc = true
	}
}

// xTree carries everything the two balancing disciplines share: the root,
// the active comparator, the optional node index and the structural
// primitives (rotations, rank walks, traversal). Rebalancing policy lives
// in the embedding variant.
type xTree[K infra.OrderedKey] struct {
	root           *Node[K]
	cmp            infra.OrderedKeyComparator[K]
	idx            *hashmap.Map[K, *Node[K]]
	isDesc         bool
	isRmBorrowSucc bool
	enableIdx      bool
}

func newXTree[K infra.OrderedKey](opts ...TreeOpt[K]) xTree[K] {
	tree := xTree[K]{
		cmp: infra.OrderedKeyCompare[K],
	}
	for _, o := range opts {
		o(&tree)
	}
	if tree.isDesc {
		tree.cmp = infra.ReverseOrderedKeyCompare(tree.cmp)
	}
	if tree.enableIdx {
		tree.idx = hashmap.New[K, *Node[K]]()
	}
	return tree
}

func (tree *xTree[K]) Len() int64 {
	return tree.root.Count()
}

func (tree *xTree[K]) Root() *Node[K] {
	return tree.root
}

/*
		 |                         |
		 X                         S
		/ \     leftRotate(X)     / \
	   L   S    ============>    X   Sd
		  / \                   / \
		Sc   Sd                L   Sc
*/
func (tree *xTree[K]) leftRotate(x *Node[K]) {
	if x == nil || x.right == nil {
		// impossible run to here
		panic( /* debug assertion */ "[tree] left rotate node x is nil or x.right is nil")
	}

	p, y := x.parent, x.right
	dir := x.Direction()
	x.right, y.left = y.left, x

	x.fixLink()
	y.fixLink()

	switch dir {
	case Root:
		tree.root = y
	case Left:
		p.left = y
	case Right:
		p.right = y
	default:
		// impossible run to here
		panic( /* debug assertion */ "[tree] unknown node direction to left-rotate")
	}
	y.parent = p

	x.fixCount()
	y.fixCount()
}

/*
			 |                         |
			 X                         S
			/ \     rightRotate(S)    / \
	       L   S    <============    X   R
			  / \                   / \
			Sc   Sd               Sc   Sd
*/
func (tree *xTree[K]) rightRotate(x *Node[K]) {
	if x == nil || x.left == nil {
		// impossible run to here
		panic( /* debug assertion */ "[tree] right rotate node x is nil or x.left is nil")
	}

	p, y := x.parent, x.left
	dir := x.Direction()
	x.left, y.right = y.right, x

	x.fixLink()
	y.fixLink()

	switch dir {
	case Root:
		tree.root = y
	case Left:
		p.left = y
	case Right:
		p.right = y
	default:
		// impossible run to here
		panic( /* debug assertion */ "[tree] unknown node direction to right-rotate")
	}
	y.parent = p

	x.fixCount()
	y.fixCount()
}

// searchNode descends from the root. Whether or not key is present, rank is
// the number of keys ordered before it, i.e. the index key occupies or
// would occupy.
func (tree *xTree[K]) searchNode(key K) (z *Node[K], rank int64, found bool) {
	for aux := tree.root; aux != nil; {
		res := tree.cmp(key, aux.key)
		if res == 0 {
			return aux, rank + aux.left.Count(), true
		} else if res < 0 {
			aux = aux.left
		} else {
			rank += aux.left.Count() + 1
			aux = aux.right
		}
	}
	return nil, rank, false
}

// nodeAt resolves the idx-th smallest node by comparing the remaining rank
// against the left subtree count at each step.
func (tree *xTree[K]) nodeAt(idx int64) *Node[K] {
	if idx < 0 || idx >= tree.Len() {
		return nil
	}
	aux := tree.root
	for {
		lc := aux.left.Count()
		if idx < lc {
			aux = aux.left
		} else if idx == lc {
			return aux
		} else {
			idx -= lc + 1
			aux = aux.right
		}
	}
}

// nodeIndex is the inverse of nodeAt: climb to the root accumulating the
// left subtree sizes skipped on each right-child step.
func nodeIndex[K infra.OrderedKey](z *Node[K]) int64 {
	idx := z.left.Count()
	for aux := z; aux.parent != nil; aux = aux.parent {
		if aux == aux.parent.right {
			idx += aux.parent.left.Count() + 1
		}
	}
	return idx
}

// lookupWithRank prefers the node index when it is enabled and falls back
// to the O(log n) descent.
func (tree *xTree[K]) lookupWithRank(key K) (*Node[K], int64, bool) {
	if tree.idx != nil {
		z, ok := tree.idx.Get(key)
		if !ok {
			return nil, -1, false
		}
		return z, nodeIndex(z), true
	}
	return tree.searchNode(key)
}

// attach links a fresh node for key without rebalancing and bumps the
// subtree counts on the path back to the root. The caller decides the
// balance metadata and the fix-up discipline. The tree is untouched when
// the key is already present.
func (tree *xTree[K]) attach(key K) (*Node[K], int64, error) {
	if tree.root == nil {
		z := &Node[K]{key: key, count: 1}
		tree.root = z
		tree.indexStore(z)
		return z, 0, nil
	}

	var (
		y    *Node[K]
		res  int64
		rank int64
	)
	for x := tree.root; x != nil; {
		y = x
		res = tree.cmp(key, x.key)
		if /* equal */ res == 0 {
			return nil, -1, ErrTreeDuplicateKey
		} else /* less */ if res < 0 {
			x = x.left
		} else /* greater */ {
			rank += x.left.Count() + 1
			x = x.right
		}
	}

	z := &Node[K]{key: key, count: 1, parent: y}
	if res < 0 {
		y.left = z
	} else {
		y.right = z
	}
	for aux := y; aux != nil; aux = aux.parent {
		aux.count++
	}
	tree.indexStore(z)
	return z, rank, nil
}

// decrCounts walks from the parent of a detached node to the root, taking
// the removed element out of every ancestor's subtree count.
func (tree *xTree[K]) decrCounts(from *Node[K]) {
	for aux := from; aux != nil; aux = aux.parent {
		aux.count--
	}
}

func (tree *xTree[K]) indexStore(z *Node[K]) {
	if tree.idx != nil {
		tree.idx.Set(z.key, z)
	}
}

func (tree *xTree[K]) indexDelete(key K) {
	if tree.idx != nil {
		tree.idx.Del(key)
	}
}

func (tree *xTree[K]) Contains(key K) bool {
	if tree.idx != nil {
		_, ok := tree.idx.Get(key)
		return ok
	}
	_, _, found := tree.searchNode(key)
	return found
}

func (tree *xTree[K]) ElementAt(idx int64) (K, error) {
	z := tree.nodeAt(idx)
	if z == nil {
		var zero K
		return zero, ErrTreeKeyNotFound
	}
	return z.key, nil
}

func (tree *xTree[K]) IndexOf(key K) (int64, error) {
	_, rank, found := tree.lookupWithRank(key)
	if !found {
		return -1, ErrTreeKeyNotFound
	}
	return rank, nil
}

func (tree *xTree[K]) Min() (K, error) {
	if tree.root == nil {
		var zero K
		return zero, ErrTreeEmpty
	}
	return tree.root.minimum().key, nil
}

func (tree *xTree[K]) Max() (K, error) {
	if tree.root == nil {
		var zero K
		return zero, ErrTreeEmpty
	}
	return tree.root.maximum().key, nil
}

func (tree *xTree[K]) NextLower(key K) (K, bool) {
	if tree.idx != nil {
		if z, ok := tree.idx.Get(key); ok {
			if p := z.pred(); p != nil {
				return p.key, true
			}
			var zero K
			return zero, false
		}
	}
	var res *Node[K]
	for aux := tree.root; aux != nil; {
		if tree.cmp(key, aux.key) <= 0 {
			aux = aux.left
		} else {
			res = aux
			aux = aux.right
		}
	}
	if res == nil {
		var zero K
		return zero, false
	}
	return res.key, true
}

func (tree *xTree[K]) NextHigher(key K) (K, bool) {
	if tree.idx != nil {
		if z, ok := tree.idx.Get(key); ok {
			if s := z.succ(); s != nil {
				return s.key, true
			}
			var zero K
			return zero, false
		}
	}
	var res *Node[K]
	for aux := tree.root; aux != nil; {
		if tree.cmp(key, aux.key) < 0 {
			res = aux
			aux = aux.left
		} else {
			aux = aux.right
		}
	}
	if res == nil {
		var zero K
		return zero, false
	}
	return res.key, true
}

// Inorder traversal to implement the DFS.
func (tree *xTree[K]) Foreach(action func(idx int64, key K) bool) {
	size := tree.Len()
	aux := tree.root
	if size <= 0 || aux == nil {
		return
	}

	stack := make([]*Node[K], 0, size>>1)
	defer func() {
		clear(stack)
	}()

	for ; aux != nil; aux = aux.left {
		stack = append(stack, aux)
	}

	idx := int64(0)
	for size = int64(len(stack)); size > 0; size = int64(len(stack)) {
		if aux = stack[size-1]; !action(idx, aux.key) {
			return
		}
		idx++
		stack = stack[:size-1]
		if aux.right != nil {
			for aux = aux.right; aux != nil; aux = aux.left {
				stack = append(stack, aux)
			}
		}
	}
}

func (tree *xTree[K]) Iter(desc bool) *Iterator[K] {
	return newIterator(tree.root, desc)
}

// Release unlinks every node so the whole graph is collectable even if
// callers still hold node references.
func (tree *xTree[K]) Release() {
	aux := tree.root
	tree.root = nil
	if tree.idx != nil {
		tree.idx = hashmap.New[K, *Node[K]]()
	}
	if aux == nil {
		return
	}

	stack := make([]*Node[K], 0, aux.count>>1)
	defer func() {
		clear(stack)
	}()

	for ; aux != nil; aux = aux.left {
		stack = append(stack, aux)
	}

	for size := len(stack); size > 0; size = len(stack) {
		aux = stack[size-1]
		r := aux.right
		aux.right, aux.left, aux.parent = nil, nil, nil
		aux.count = 0
		stack = stack[:size-1]
		if r != nil {
			for aux = r; aux != nil; aux = aux.left {
				stack = append(stack, aux)
			}
		}
	}
}
