package ranges

// InspectedSeq is a passthrough view that debug-logs every element read
// through it.
type InspectedSeq[T any] struct {
	src   *Bound[T]
	label string
}

// Inspect tags s so each front read is logged at debug level on the package
// logger (see SetLogger). Shape and capabilities follow Map.
func Inspect[T any](s any, label string) *InspectedSeq[T] {
	return &InspectedSeq[T]{src: frontSource[T](s), label: label}
}

func (s *InspectedSeq[T]) Empty() bool {
	return s.src.Empty()
}

func (s *InspectedSeq[T]) FrontVal() T {
	v := s.src.FrontVal()
	logger.Debug().Str("label", s.label).Interface("elem", v).Msg("sequence element read")
	return v
}

func (s *InspectedSeq[T]) Advance() {
	s.src.Advance()
}
