package ranges

import (
	"iter"

	"github.com/tidwall/btree"
)

type sortedItem[T any] struct {
	v T
	//encounter order, breaks ties so duplicates survive and the order is
	//stable
	seq int
}

// SortedSeq iterates a drained snapshot of another sequence in ascending
// order. Equal elements keep their encounter order.
type SortedSeq[T any] struct {
	tree *btree.BTreeG[sortedItem[T]]
	it   btree.IterG[sortedItem[T]]
	ok   bool
}

// Sorted drains s into a B-tree and returns a sequence over it in ascending
// less order.
func Sorted[T any](s any, less func(a, b T) bool) *SortedSeq[T] {
	src := AsSequence[T](s)
	tree := btree.NewBTreeGOptions(func(a, b sortedItem[T]) bool {
		if less(a.v, b.v) {
			return true
		}
		if less(b.v, a.v) {
			return false
		}
		return a.seq < b.seq
	}, btree.Options{NoLocks: true})

	for n := 0; !src.Empty(); n++ {
		tree.Set(sortedItem[T]{v: src.Pull(), seq: n})
	}

	sorted := &SortedSeq[T]{tree: tree, it: tree.Iter()}
	sorted.ok = sorted.it.First()
	if !sorted.ok {
		sorted.it.Release()
	}
	return sorted
}

func (s *SortedSeq[T]) Empty() bool {
	return !s.ok
}

func (s *SortedSeq[T]) FrontVal() T {
	if !s.ok {
		panic(ErrEmptySequence)
	}
	return s.it.Item().v
}

func (s *SortedSeq[T]) Advance() {
	if !s.ok {
		panic(ErrEmptySequence)
	}
	if !s.it.Next() {
		s.ok = false
		s.it.Release()
	}
}

// Values iterates the whole snapshot in order with a fresh tree iterator,
// independently of the sequence's own cursor.
func (s *SortedSeq[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := s.tree.Iter()
		defer it.Release()
		for ok := it.First(); ok; ok = it.Next() {
			if !yield(it.Item().v) {
				return
			}
		}
	}
}
