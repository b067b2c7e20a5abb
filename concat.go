package ranges

import "iter"

// ConcatSeq chains several sequences end to end.
type ConcatSeq[T any] struct {
	parts []*Bound[T]
}

// Concat chains sequences end to end in argument order. Arguments go
// through AsSequence, so plain slices mix freely with sequences. Every part
// must have a readable front and advance.
func Concat[T any](seqs ...any) *ConcatSeq[T] {
	parts := make([]*Bound[T], len(seqs))
	for i, s := range seqs {
		parts[i] = frontSource[T](s)
	}
	c := &ConcatSeq[T]{parts: parts}
	c.settle()
	return c
}

// settle drops exhausted leading parts
func (s *ConcatSeq[T]) settle() {
	for len(s.parts) > 0 && s.parts[0].Empty() {
		s.parts = s.parts[1:]
	}
}

func (s *ConcatSeq[T]) Empty() bool {
	return len(s.parts) == 0
}

func (s *ConcatSeq[T]) FrontVal() T {
	if s.Empty() {
		panic(ErrEmptySequence)
	}
	return s.parts[0].FrontVal()
}

func (s *ConcatSeq[T]) Advance() {
	if s.Empty() {
		panic(ErrEmptySequence)
	}
	s.parts[0].Advance()
	s.settle()
}

// FlattenSeq concatenates the elements of a sequence of slices.
type FlattenSeq[T any] struct {
	src *Bound[[]T]
	cur []T
}

// Flatten returns the elements of s's slice elements, in order. The source
// only needs to be a sequence: slices are pulled from it as needed, so
// pull-only streams of slices flatten fine.
func Flatten[T any](s any) *FlattenSeq[T] {
	f := &FlattenSeq[T]{src: AsSequence[[]T](s)}
	f.settle()
	return f
}

func (s *FlattenSeq[T]) settle() {
	for len(s.cur) == 0 && !s.src.Empty() {
		s.cur = s.src.Pull()
	}
}

func (s *FlattenSeq[T]) Empty() bool {
	return len(s.cur) == 0
}

func (s *FlattenSeq[T]) FrontVal() T {
	if s.Empty() {
		panic(ErrEmptySequence)
	}
	return s.cur[0]
}

// FrontRef aliases the current element of the current slice.
func (s *FlattenSeq[T]) FrontRef() *T {
	if s.Empty() {
		panic(ErrEmptySequence)
	}
	return &s.cur[0]
}

func (s *FlattenSeq[T]) Advance() {
	if s.Empty() {
		panic(ErrEmptySequence)
	}
	s.cur = s.cur[1:]
	s.settle()
}

// ReplicateSeq yields the same value a fixed number of times.
type ReplicateSeq[T any] struct {
	v T
	n int
}

// Replicate returns a sequence of n copies of v.
func Replicate[T any](n int, v T) *ReplicateSeq[T] {
	if n < 0 {
		panic(ErrNegativeCount)
	}
	return &ReplicateSeq[T]{v: v, n: n}
}

func (s *ReplicateSeq[T]) Empty() bool {
	return s.n <= 0
}

func (s *ReplicateSeq[T]) FrontVal() T {
	if s.Empty() {
		panic(ErrEmptySequence)
	}
	return s.v
}

func (s *ReplicateSeq[T]) Advance() {
	if s.Empty() {
		panic(ErrEmptySequence)
	}
	s.n--
}

func (s *ReplicateSeq[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := s.n; n > 0; n-- {
			if !yield(s.v) {
				return
			}
		}
	}
}
