package ranges

// FilteredSeq yields the elements of an underlying sequence that pass a
// predicate. The source is always either exhausted or positioned on a
// passing element: the skip loop runs at construction and after every
// advance.
type FilteredSeq[T any] struct {
	src  *Bound[T]
	keep func(T) bool
}

// Filter returns a lazy view of the elements of s for which keep is true.
// The source must have a readable front and advance.
func Filter[T any](s any, keep func(T) bool) *FilteredSeq[T] {
	f := &FilteredSeq[T]{src: frontSource[T](s), keep: keep}
	f.skip()
	return f
}

// skip advances the source until it is exhausted or fronting a passing
// element
func (s *FilteredSeq[T]) skip() {
	for !s.src.Empty() && !s.keep(s.src.FrontVal()) {
		s.src.Advance()
	}
}

func (s *FilteredSeq[T]) Empty() bool {
	return s.src.Empty()
}

func (s *FilteredSeq[T]) FrontVal() T {
	if s.Empty() {
		panic(ErrEmptySequence)
	}
	return s.src.FrontVal()
}

func (s *FilteredSeq[T]) Advance() {
	if s.Empty() {
		panic(ErrEmptySequence)
	}
	s.src.Advance()
	s.skip()
}
