package tree

import (
	"errors"

	"github.com/Paramecium13/advanced-algorithms/lib/infra"
)

// go install golang.org/x/tools/cmd/stringer@latest

//go:generate stringer -type=RBColor
type RBColor uint8

const (
	Black RBColor = iota
	Red
)

//go:generate stringer -type=Direction
type Direction int8

const (
	Left Direction = -1 + iota
	Root
	Right
)

var (
	ErrTreeDuplicateKey = errors.New("[tree] duplicate key")
	ErrTreeKeyNotFound  = errors.New("[tree] key or index not found")
	ErrTreeInvalidInput = errors.New("[tree] bulk input is not strictly ascending")
	ErrTreeEmpty        = errors.New("[tree] there is no element")
)

// OrderStatTree is a sorted unique-key collection with O(log n) rank queries.
// Indexes are zero based and follow the tree's comparator order: index 0 is
// the first key an ascending traversal yields.
// Not safe for concurrent mutation; callers needing that must serialize
// externally.
type OrderStatTree[K infra.OrderedKey] interface {
	Len() int64
	Root() *Node[K]
	// Insert adds a unique key and returns the index it now occupies.
	// Returns ErrTreeDuplicateKey and leaves the tree untouched if the key
	// is already present.
	Insert(key K) (int64, error)
	// Remove deletes key and returns the index it occupied.
	Remove(key K) (int64, error)
	// RemoveAt deletes the idx-th key in comparator order and returns it.
	RemoveAt(idx int64) (K, error)
	Contains(key K) bool
	// ElementAt returns the idx-th key in comparator order.
	ElementAt(idx int64) (K, error)
	// IndexOf returns the rank of key, i.e. the number of keys before it.
	IndexOf(key K) (int64, error)
	Min() (K, error)
	Max() (K, error)
	// NextLower returns the greatest key ordered before key; key itself
	// does not need to be present.
	NextLower(key K) (K, bool)
	// NextHigher returns the smallest key ordered after key.
	NextHigher(key K) (K, bool)
	// Foreach walks the keys in comparator order until action returns false.
	Foreach(action func(idx int64, key K) bool)
	// Iter returns a lazy single-pass iterator. Mutating the tree
	// invalidates any live iterator.
	Iter(desc bool) *Iterator[K]
	Release()
}

// AVLTree keeps every node's child subtree heights within 1 of each other.
type AVLTree[K infra.OrderedKey] interface {
	OrderStatTree[K]
	// Height of the root node; -1 for an empty tree.
	Height() int64
}

// RBTree keeps the red-black coloring rules: a black root, no red node with
// a red child and a uniform black depth on every root-to-nil path.
type RBTree[K infra.OrderedKey] interface {
	OrderStatTree[K]
}
