package ranges

// MappedSeq applies a transform to each element of an underlying sequence as
// it is read. Elements are computed, not stored: there is no reference to
// the front and no conventional iteration.
type MappedSeq[In, Out any] struct {
	src *Bound[In]
	f   func(In) Out
}

// Map returns a lazy sequence of f applied to each element of s. The source
// must have a readable front and advance; memoize pull-only streams first.
func Map[In, Out any](s any, f func(In) Out) *MappedSeq[In, Out] {
	return &MappedSeq[In, Out]{src: frontSource[In](s), f: f}
}

func (s *MappedSeq[In, Out]) Empty() bool {
	return s.src.Empty()
}

func (s *MappedSeq[In, Out]) FrontVal() Out {
	return s.f(s.src.FrontVal())
}

func (s *MappedSeq[In, Out]) Advance() {
	s.src.Advance()
}
