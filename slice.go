package ranges

import (
	"iter"

	"github.com/inoxlang/ranges/internal/utils"
)

// SliceSeq is a cursor over a borrowed slice. It aliases the slice's
// storage: FrontRef exposes the current element in place and mutations made
// through it are visible to the slice's other holders.
type SliceSeq[T any] struct {
	elems []T
	i     int
}

func FromSlice[T any](elems []T) *SliceSeq[T] {
	return &SliceSeq[T]{elems: elems}
}

func (s *SliceSeq[T]) Empty() bool {
	return s.i >= len(s.elems)
}

func (s *SliceSeq[T]) FrontVal() T {
	if s.Empty() {
		panic(ErrEmptySequence)
	}
	return s.elems[s.i]
}

func (s *SliceSeq[T]) FrontRef() *T {
	if s.Empty() {
		panic(ErrEmptySequence)
	}
	return &s.elems[s.i]
}

func (s *SliceSeq[T]) Advance() {
	if s.Empty() {
		panic(ErrEmptySequence)
	}
	s.i++
}

// Values iterates the remaining elements without consuming the cursor.
func (s *SliceSeq[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.elems[s.i:] {
			if !yield(v) {
				return
			}
		}
	}
}

type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Owned iterates a container it owns: the storage stays alive for the
// adapter's lifetime regardless of what the original holder does. Owned
// values must not be copied (go vet flags it).
type Owned[T any] struct {
	noCopy noCopy
	SliceSeq[T]
}

// Own takes ownership of elems. The caller must not use elems afterwards.
func Own[T any](elems []T) *Owned[T] {
	return &Owned[T]{SliceSeq: SliceSeq[T]{elems: elems}}
}

// OwnCopy owns a copy of elems, leaving the original untouched.
func OwnCopy[T any](elems []T) *Owned[T] {
	return Own(utils.CopySlice(elems))
}

// OwnMap drains the values of m into an owned sequence. Element order
// follows the map's iteration order and is therefore unspecified.
func OwnMap[K comparable, V any](m map[K]V) *Owned[V] {
	elems := make([]V, 0, len(m))
	for _, v := range m {
		elems = append(elems, v)
	}
	return Own(elems)
}
