package tree

import (
	"testing"

	godsavl "github.com/emirpasic/gods/trees/avltree"
	godsrbt "github.com/emirpasic/gods/trees/redblacktree"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
	"github.com/samber/lo"
)

// Cross-library baselines. The gods trees and GoLLRB are the closest
// comparables (binary balanced trees); the B-tree wins on cache behavior
// but carries no order statistics.

func benchKeys(n int) []int {
	return lo.Shuffle(lo.RangeFrom(0, n))
}

func BenchmarkInsert(b *testing.B) {
	keys := benchKeys(1 << 16)

	b.Run("avl", func(bb *testing.B) {
		tree := NewAVLTree[int]()
		bb.ResetTimer()
		for i := 0; i < bb.N; i++ {
			_, _ = tree.Insert(keys[i%len(keys)])
		}
	})
	b.Run("rbtree", func(bb *testing.B) {
		tree := NewRBTree[int]()
		bb.ResetTimer()
		for i := 0; i < bb.N; i++ {
			_, _ = tree.Insert(keys[i%len(keys)])
		}
	})
	b.Run("gods avl", func(bb *testing.B) {
		tree := godsavl.NewWithIntComparator()
		bb.ResetTimer()
		for i := 0; i < bb.N; i++ {
			tree.Put(keys[i%len(keys)], nil)
		}
	})
	b.Run("gods rbtree", func(bb *testing.B) {
		tree := godsrbt.NewWithIntComparator()
		bb.ResetTimer()
		for i := 0; i < bb.N; i++ {
			tree.Put(keys[i%len(keys)], nil)
		}
	})
	b.Run("llrb", func(bb *testing.B) {
		tree := llrb.New()
		bb.ResetTimer()
		for i := 0; i < bb.N; i++ {
			tree.ReplaceOrInsert(llrb.Int(keys[i%len(keys)]))
		}
	})
	b.Run("btree", func(bb *testing.B) {
		tree := btree.NewOrderedG[int](32)
		bb.ResetTimer()
		for i := 0; i < bb.N; i++ {
			tree.ReplaceOrInsert(keys[i%len(keys)])
		}
	})
}

func BenchmarkSearch(b *testing.B) {
	const total = 1 << 16
	keys := benchKeys(total)

	b.Run("avl", func(bb *testing.B) {
		tree := NewAVLTree[int]()
		for _, key := range keys {
			_, _ = tree.Insert(key)
		}
		bb.ResetTimer()
		for i := 0; i < bb.N; i++ {
			_ = tree.Contains(keys[i%total])
		}
	})
	b.Run("avl indexed", func(bb *testing.B) {
		tree := NewAVLTree[int](WithTreeNodeIndex[int]())
		for _, key := range keys {
			_, _ = tree.Insert(key)
		}
		bb.ResetTimer()
		for i := 0; i < bb.N; i++ {
			_ = tree.Contains(keys[i%total])
		}
	})
	b.Run("rbtree", func(bb *testing.B) {
		tree := NewRBTree[int]()
		for _, key := range keys {
			_, _ = tree.Insert(key)
		}
		bb.ResetTimer()
		for i := 0; i < bb.N; i++ {
			_ = tree.Contains(keys[i%total])
		}
	})
	b.Run("gods rbtree", func(bb *testing.B) {
		tree := godsrbt.NewWithIntComparator()
		for _, key := range keys {
			tree.Put(key, nil)
		}
		bb.ResetTimer()
		for i := 0; i < bb.N; i++ {
			_, _ = tree.Get(keys[i%total])
		}
	})
	b.Run("llrb", func(bb *testing.B) {
		tree := llrb.New()
		for _, key := range keys {
			tree.ReplaceOrInsert(llrb.Int(key))
		}
		bb.ResetTimer()
		for i := 0; i < bb.N; i++ {
			_ = tree.Has(llrb.Int(keys[i%total]))
		}
	})
	b.Run("btree", func(bb *testing.B) {
		tree := btree.NewOrderedG[int](32)
		for _, key := range keys {
			tree.ReplaceOrInsert(key)
		}
		bb.ResetTimer()
		for i := 0; i < bb.N; i++ {
			_ = tree.Has(keys[i%total])
		}
	})
}

func BenchmarkRemove(b *testing.B) {
	keys := benchKeys(1 << 16)

	b.Run("avl", func(bb *testing.B) {
		tree := NewAVLTree[int]()
		for i := 0; i < bb.N; i++ {
			_, _ = tree.Insert(keys[i%len(keys)])
		}
		bb.ResetTimer()
		for i := 0; i < bb.N; i++ {
			_, _ = tree.Remove(keys[i%len(keys)])
		}
	})
	b.Run("rbtree", func(bb *testing.B) {
		tree := NewRBTree[int]()
		for i := 0; i < bb.N; i++ {
			_, _ = tree.Insert(keys[i%len(keys)])
		}
		bb.ResetTimer()
		for i := 0; i < bb.N; i++ {
			_, _ = tree.Remove(keys[i%len(keys)])
		}
	})
	b.Run("gods rbtree", func(bb *testing.B) {
		tree := godsrbt.NewWithIntComparator()
		for i := 0; i < bb.N; i++ {
			tree.Put(keys[i%len(keys)], nil)
		}
		bb.ResetTimer()
		for i := 0; i < bb.N; i++ {
			tree.Remove(keys[i%len(keys)])
		}
	})
	b.Run("llrb", func(bb *testing.B) {
		tree := llrb.New()
		for i := 0; i < bb.N; i++ {
			tree.ReplaceOrInsert(llrb.Int(keys[i%len(keys)]))
		}
		bb.ResetTimer()
		for i := 0; i < bb.N; i++ {
			_ = tree.Delete(llrb.Int(keys[i%len(keys)]))
		}
	})
	b.Run("btree", func(bb *testing.B) {
		tree := btree.NewOrderedG[int](32)
		for i := 0; i < bb.N; i++ {
			tree.ReplaceOrInsert(keys[i%len(keys)])
		}
		bb.ResetTimer()
		for i := 0; i < bb.N; i++ {
			_, _ = tree.Delete(keys[i%len(keys)])
		}
	})
}

func BenchmarkElementAt(b *testing.B) {
	const total = 1 << 16

	b.Run("avl", func(bb *testing.B) {
		tree, _ := NewAVLTreeFromSorted[int](lo.RangeFrom(0, total))
		bb.ResetTimer()
		for i := 0; i < bb.N; i++ {
			_, _ = tree.ElementAt(int64(i % total))
		}
	})
	b.Run("rbtree", func(bb *testing.B) {
		tree, _ := NewRBTreeFromSorted[int](lo.RangeFrom(0, total))
		bb.ResetTimer()
		for i := 0; i < bb.N; i++ {
			_, _ = tree.ElementAt(int64(i % total))
		}
	})
}
