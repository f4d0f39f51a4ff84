package tree

import (
	"github.com/Paramecium13/advanced-algorithms/lib/infra"
)

// References:
// https://elixir.bootlin.com/linux/latest/source/lib/rbtree.c
// https://en.wikipedia.org/wiki/Red%E2%80%93black_tree#Properties
// p1. Every node is either red or black.
// p2. All NIL nodes are considered black.
// p3. A red node does not have a red child. (red-violation)
// p4. Every path from a given node to any of its descendant
//   NIL nodes goes through the same number of black nodes. (black-violation)
// p5. The root is black.
// (Conclusion) If a node X has exactly one child, it must be a red child,
//   because if it were black, its NIL descendants would sit at a different
//   black depth than X's NIL child, violating p4.
type rbTree[K infra.OrderedKey] struct {
	xTree[K]
}

func NewRBTree[K infra.OrderedKey](opts ...TreeOpt[K]) RBTree[K] {
	return &rbTree[K]{xTree: newXTree(opts...)}
}

func (tree *rbTree[K]) Insert(key K) (int64, error) {
	z, rank, err := tree.attach(key)
	if err != nil {
		return -1, err
	}
	z.setColor(Red)
	tree.insertRebalance(z)
	return rank, nil
}

/*
New node X is red by default.

<X> is a RED node.
[X] is a BLACK node (or NIL).

im1: Current node X's parent P is black, hold p3 and p4, done.

im2: Current node X's parent P is red and P is root, repaint P into black.

im3: If both the parent P and the uncle U are red, grandpa G is black.
(red-violation)
After repainted G into red may be still red-violation.
Recursive to fix grandpa.

	    [G]             <G>
	    / \             / \
	  <P> <U>  ====>  [P] [U]
	  /               /
	<X>             <X>

im4: The parent P is red but the uncle U is black. (red-violation)
X is opposite direction to P. Rotate P to opposite direction.
After rotation may be still red-violation. Here must enter im5 to fix.

	  [G]                 [G]
	  / \    rotate(P)    / \
	<P> [U]  ========>  <X> [U]
	  \                 /
	  <X>             <P>

im5: Handle im4 scenario, current node is the same direction as parent.

	    [G]                 <P>               [P]
	    / \    rotate(G)    / \    repaint    / \
	  <P> [U]  ========>  <X> [G]  ======>  <X> <G>
	  /                         \                 \
	<X>                         [U]               [U]
*/
func (tree *rbTree[K]) insertRebalance(x *Node[K]) {
	for x != nil {
		if x.isRoot() {
			if x.isRed() {
				x.setColor(Black)
			}
			return
		}

		if /* im1 */ x.parent.isBlack() {
			return
		}

		if /* im2 */ x.parent.isRoot() {
			x.parent.setColor(Black)
			return
		}

		if /* im3 */ x.hasUncle() && x.uncle().isRed() {
			x.parent.setColor(Black)
			x.uncle().setColor(Black)
			gp := x.grandpa()
			gp.setColor(Red)
			x = gp
			continue
		}

		// the uncle is black or absent
		dir := x.Direction()
		if /* im4 */ dir != x.parent.Direction() {
			p := x.parent
			switch dir {
			case Left:
				tree.rightRotate(p)
			case Right:
				tree.leftRotate(p)
			default:
				// impossible run to here
				panic( /* debug assertion */ "[rbtree] insert violate (im4)")
			}
			x = p // enter im5 to fix
		}

		switch /* im5 */ dir = x.parent.Direction(); dir {
		case Left:
			tree.rightRotate(x.grandpa())
		case Right:
			tree.leftRotate(x.grandpa())
		default:
			// impossible run to here
			panic( /* debug assertion */ "[rbtree] insert violate (im5)")
		}

		x.parent.setColor(Black)
		x.sibling().setColor(Red)
		return
	}
}

func (tree *rbTree[K]) Remove(key K) (int64, error) {
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

func (tree *rbTree[K]) RemoveAt(idx int64) (K, error) {
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

/*
r1: Only a root node, remove directly.

r2: Current node X has left and right node.
Find node X's pred or succ to replace it to be removed.
Swap the key only; the node identity keeps its color and position, so only
the pred or succ node is physically detached.

r3: (1) Current node X is a red leaf node, remove directly.

r3: (2) Current node X is a black leaf node, the removal takes one black
node out of every path through it, so rebalance before the unlink.
(black-violation)

r4: Current node X is not a leaf node but contains a not nil child node.
The child node must be a red node. (See conclusion. Otherwise,
black-violation)
*/
func (tree *rbTree[K]) removeNode(z *Node[K]) {
	if /* r1 */ z.isRoot() && z.isLeaf() {
		tree.root = nil
		z.count = 0
		return
	}

	y := z
	if /* r2 */ z.left != nil && z.right != nil {
		if tree.isRmBorrowSucc {
			y = z.succ() // enter r3-r4
		} else {
			y = z.pred() // enter r3-r4
		}
		z.key = y.key
		tree.indexStore(z)
	}

	if /* r3 */ y.isLeaf() {
		tree.decrCounts(y.parent)
		y.count = 0
		if /* r3 (2) */ y.isBlack() {
			tree.removeRebalance(y)
		}
		switch y.Direction() {
		case Left:
			y.parent.left = nil
		case Right:
			y.parent.right = nil
		default:
			// impossible run to here
			panic( /* debug assertion */ "[rbtree] y should be a leaf node, violate (r3)")
		}
		y.parent = nil
	} else /* r4 */ {
		replace := y.right
		if replace == nil {
			replace = y.left
		}

		tree.decrCounts(y.parent)
		switch y.Direction() {
		case Root:
			tree.root = replace
			replace.parent = nil
		case Left:
			y.parent.left = replace
			replace.parent = y.parent
		case Right:
			y.parent.right = replace
			replace.parent = y.parent
		default:
			// impossible run to here
			panic( /* debug assertion */ "[rbtree] remove violate (r4)")
		}

		if y.isBlack() {
			if replace.isRed() {
				replace.setColor(Black)
			} else {
				tree.removeRebalance(replace)
			}
		}
		y.parent, y.left, y.right = nil, nil, nil
		y.count = 0
	}
}

/*
<X> is a RED node.
[X] is a BLACK node (or NIL).
{X} is either a RED node or a BLACK node.

Sc is the same direction to X and it is X's sibling's child node.
Sd is the opposite direction to X and it is X's sibling's child node.

rm1: Current node X's sibling S is red, so the parent P, nephew node Sc and
Sd must be black. (Otherwise, red-violation)
(1) X is left node of P, left rotate P
(2) X is right node of P, right rotate P.
(3) repaint S into black, P into red.

	  [P]                   <S>               [S]
	  / \    l-rotate(P)    / \    repaint    / \
	[X] <S>  ==========>  [P] [Sd]  ======> <P> [Sd]
	    / \               / \               / \
	 [Sc] [Sd]          [X] [Sc]          [X] [Sc]

rm2: Current node X's parent P is red, the sibling S, nephew node Sc and Sd
is black.
Repaint S into red and P into black.

	  <P>             [P]
	  / \             / \
	[X] [S]  ====>  [X] <S>
	    / \             / \
	 [Sc] [Sd]       [Sc] [Sd]

rm3: All of current node X's parent P, the sibling S, nephew node Sc and Sd
are black.
Unable to satisfy p3 and p4. We have to paint the S into red to satisfy
p4 locally. Then recursive to handle P.

	  [P]             [P]
	  / \             / \
	[X] [S]  ====>  [X] <S>
	    / \             / \
	 [Sc] [Sd]       [Sc] [Sd]

rm4: Current node X's sibling S is black, nephew node Sc is red and Sd
is black. Ignore X's parent P's color (red or black is okay)
Unable to satisfy p3 and p4.
(1) If X is left node of P, right rotate S.
(2) If X is right node of P, left rotate S.
(3) Repaint S into red, Sc into black
Enter into rm5 to fix.

	                        {P}                {P}
	  {P}                   / \                / \
	  / \    r-rotate(S)  [X] <Sc>   repaint  [X] [Sc]
	[X] [S]  ==========>        \    ======>       \
	    / \                     [S]                <S>
	  <Sc> [Sd]                   \                  \
	                              [Sd]               [Sd]

rm5: Current node X's sibling S is black, nephew node Sc is black and Sd
is red. Ignore X's parent P's color (red or black is okay)
Unable to satisfy p4 (black-violation)
(1) If X is left node of P, left rotate P.
(2) If X is right node of P, right rotate P.
(3) Swap P and S's color (red-violation)
(4) Repaint Sd into black.

	  {P}                   [S]                {S}
	  / \    l-rotate(P)    / \     repaint    / \
	[X] [S]  ==========>  {P} <Sd>  ======>  [P] [Sd]
	    / \               / \                / \
	 [Sc] <Sd>          [X] [Sc]           [X] [Sc]

rm3 is the only case that loops, and it moves the deficit one step closer
to the root each time, so the fix-up terminates.
*/
func (tree *rbTree[K]) removeRebalance(x *Node[K]) {
	for {
		if x.isRoot() {
			return
		}

		sibling := x.sibling()
		dir := x.Direction()
		if /* rm1 */ sibling.isRed() {
			switch dir {
			case Left:
				tree.leftRotate(x.parent)
			case Right:
				tree.rightRotate(x.parent)
			default:
				// impossible run to here
				panic( /* debug assertion */ "[rbtree] remove violate (rm1)")
			}
			sibling.setColor(Black)
			x.parent.setColor(Red) // ready to enter rm2
			sibling = x.sibling()
		}

		var sc, sd *Node[K]
		switch /* rm2 */ dir {
		case Left:
			sc, sd = sibling.left, sibling.right
		case Right:
			sc, sd = sibling.right, sibling.left
		default:
			// impossible run to here
			panic( /* debug assertion */ "[rbtree] remove violate (rm2)")
		}

		if sc.isBlack() && sd.isBlack() {
			if /* rm2 */ x.parent.isRed() {
				sibling.setColor(Red)
				x.parent.setColor(Black)
				break
			} else /* rm3 */ {
				sibling.setColor(Red)
				x = x.parent
				continue
			}
		} else {
			if /* rm4 */ sc.isRed() {
				switch dir {
				case Left:
					tree.rightRotate(sibling)
				case Right:
					tree.leftRotate(sibling)
				default:
					// impossible run to here
					panic( /* debug assertion */ "[rbtree] remove violate (rm4)")
				}
				sc.setColor(Black)
				sibling.setColor(Red)
				sibling = x.sibling()
				switch dir {
				case Left:
					sd = sibling.right
				case Right:
					sd = sibling.left
				default:
					// impossible run to here
					panic( /* debug assertion */ "[rbtree] remove violate (rm4)")
				}
			}

			switch /* rm5 */ dir {
			case Left:
				tree.leftRotate(x.parent)
			case Right:
				tree.rightRotate(x.parent)
			default:
				// impossible run to here
				panic( /* debug assertion */ "[rbtree] remove violate (rm5)")
			}
			sibling.setColor(x.parent.Color())
			x.parent.setColor(Black)
			if sd != nil {
				sd.setColor(Black)
			}
			break
		}
	}
}
