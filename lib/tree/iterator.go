package tree

import (
	"github.com/Paramecium13/advanced-algorithms/lib/infra"
)

// Iterator is a lazy single-pass in-order (or reverse in-order) walk over
// the keys, driven by an explicit node stack so the traversal depth is not
// bounded by the call stack. It is not restartable; take a fresh one from
// Iter to traverse again. Mutating the tree invalidates any live iterator.
type Iterator[K infra.OrderedKey] struct {
	stack []*Node[K]
	desc  bool
}

func newIterator[K infra.OrderedKey](root *Node[K], desc bool) *Iterator[K] {
	it := &Iterator[K]{
		stack: make([]*Node[K], 0, root.Count()>>1),
		desc:  desc,
	}
	for aux := root; aux != nil; {
		it.stack = append(it.stack, aux)
		if desc {
			aux = aux.right
		} else {
			aux = aux.left
		}
	}
	return it
}

// Next yields the next key; ok turns false once the walk is exhausted and
// never turns true again.
func (it *Iterator[K]) Next() (key K, ok bool) {
	size := len(it.stack)
	if size == 0 {
		return
	}
	aux := it.stack[size-1]
	it.stack = it.stack[:size-1]
	key, ok = aux.key, true

	if it.desc {
		for aux = aux.left; aux != nil; aux = aux.right {
			it.stack = append(it.stack, aux)
		}
	} else {
		for aux = aux.right; aux != nil; aux = aux.left {
			it.stack = append(it.stack, aux)
		}
	}
	return
}
