package ranges

import "iter"

// Pair is the element type of two-sequence zips.
type Pair[A, B any] struct {
	A A
	B B
}

// Triple is the element type of three-sequence zips.
type Triple[A, B, C any] struct {
	A A
	B B
	C C
}

// ZipLengthPolicy says how a zip treats sources of different lengths.
type ZipLengthPolicy int

const (
	// TruncateAtShortest ends the zip at the first exhausted source.
	TruncateAtShortest ZipLengthPolicy = iota
	// RequireSameLength panics with ErrZipLengthMismatch when some but not
	// all sources are exhausted, unless every non-exhausted source is
	// definitely infinite.
	RequireSameLength
)

type ZipConfiguration struct {
	LengthPolicy ZipLengthPolicy
	// PreferRefs reads each source through its front reference when it has
	// one, so elements with storage are read in place.
	PreferRefs bool
}

//strict zips allow a source to keep going only when every remaining source
//never exhausts
func checkZipAligned(emptyOrInfinite ...bool) {
	for _, ok := range emptyOrInfinite {
		if !ok {
			panic(ErrZipLengthMismatch)
		}
	}
}

// Zip2Seq pairs the elements of two sequences.
type Zip2Seq[A, B any] struct {
	a      *Bound[A]
	b      *Bound[B]
	config ZipConfiguration
}

// Zip2 pairs elements, reading each source through its preferred front, and
// truncates at the shortest source.
func Zip2[A, B any](a, b any) *Zip2Seq[A, B] {
	return NewZip2[A, B](a, b, ZipConfiguration{LengthPolicy: TruncateAtShortest, PreferRefs: true})
}

// ZipVal2 pairs element values and requires its sources to have the same
// length.
func ZipVal2[A, B any](a, b any) *Zip2Seq[A, B] {
	return NewZip2[A, B](a, b, ZipConfiguration{LengthPolicy: RequireSameLength})
}

// NewZip2 pairs two sequences under an explicit configuration. Both sources
// must have a readable front and advance.
func NewZip2[A, B any](a, b any, config ZipConfiguration) *Zip2Seq[A, B] {
	return &Zip2Seq[A, B]{a: frontSource[A](a), b: frontSource[B](b), config: config}
}

func (s *Zip2Seq[A, B]) Empty() bool {
	ae, be := s.a.Empty(), s.b.Empty()
	if ae == be {
		return ae
	}
	if s.config.LengthPolicy == RequireSameLength {
		checkZipAligned(ae || s.a.DefinitelyInfinite(), be || s.b.DefinitelyInfinite())
	}
	return true
}

func (s *Zip2Seq[A, B]) FrontVal() Pair[A, B] {
	if s.Empty() {
		panic(ErrEmptySequence)
	}
	if s.config.PreferRefs {
		return Pair[A, B]{A: s.a.Front(), B: s.b.Front()}
	}
	return Pair[A, B]{A: s.a.FrontVal(), B: s.b.FrontVal()}
}

func (s *Zip2Seq[A, B]) Advance() {
	if s.Empty() {
		panic(ErrEmptySequence)
	}
	s.a.Advance()
	s.b.Advance()
}

// Values iterates the remaining pairs. Iterating advances the zipped
// sources.
func (s *Zip2Seq[A, B]) Values() iter.Seq[Pair[A, B]] {
	return func(yield func(Pair[A, B]) bool) {
		for !s.Empty() {
			if !yield(s.FrontVal()) {
				return
			}
			s.Advance()
		}
	}
}

// Zip3Seq groups the elements of three sequences.
type Zip3Seq[A, B, C any] struct {
	a      *Bound[A]
	b      *Bound[B]
	c      *Bound[C]
	config ZipConfiguration
}

func Zip3[A, B, C any](a, b, c any) *Zip3Seq[A, B, C] {
	return NewZip3[A, B, C](a, b, c, ZipConfiguration{LengthPolicy: TruncateAtShortest, PreferRefs: true})
}

func ZipVal3[A, B, C any](a, b, c any) *Zip3Seq[A, B, C] {
	return NewZip3[A, B, C](a, b, c, ZipConfiguration{LengthPolicy: RequireSameLength})
}

func NewZip3[A, B, C any](a, b, c any, config ZipConfiguration) *Zip3Seq[A, B, C] {
	return &Zip3Seq[A, B, C]{
		a:      frontSource[A](a),
		b:      frontSource[B](b),
		c:      frontSource[C](c),
		config: config,
	}
}

func (s *Zip3Seq[A, B, C]) Empty() bool {
	ae, be, ce := s.a.Empty(), s.b.Empty(), s.c.Empty()
	if ae == be && be == ce {
		return ae
	}
	if s.config.LengthPolicy == RequireSameLength {
		checkZipAligned(
			ae || s.a.DefinitelyInfinite(),
			be || s.b.DefinitelyInfinite(),
			ce || s.c.DefinitelyInfinite(),
		)
	}
	return true
}

func (s *Zip3Seq[A, B, C]) FrontVal() Triple[A, B, C] {
	if s.Empty() {
		panic(ErrEmptySequence)
	}
	if s.config.PreferRefs {
		return Triple[A, B, C]{A: s.a.Front(), B: s.b.Front(), C: s.c.Front()}
	}
	return Triple[A, B, C]{A: s.a.FrontVal(), B: s.b.FrontVal(), C: s.c.FrontVal()}
}

func (s *Zip3Seq[A, B, C]) Advance() {
	if s.Empty() {
		panic(ErrEmptySequence)
	}
	s.a.Advance()
	s.b.Advance()
	s.c.Advance()
}

func (s *Zip3Seq[A, B, C]) Values() iter.Seq[Triple[A, B, C]] {
	return func(yield func(Triple[A, B, C]) bool) {
		for !s.Empty() {
			if !yield(s.FrontVal()) {
				return
			}
			s.Advance()
		}
	}
}

// ZipRef2Seq pairs pointers to the front elements of two sequences so the
// originals can be mutated in lockstep. Both sources must declare a front
// reference; the zip truncates at the shortest source.
type ZipRef2Seq[A, B any] struct {
	a *Bound[A]
	b *Bound[B]
}

func ZipRef2[A, B any](a, b any) *ZipRef2Seq[A, B] {
	return &ZipRef2Seq[A, B]{a: refSource[A](a), b: refSource[B](b)}
}

func (s *ZipRef2Seq[A, B]) Empty() bool {
	return s.a.Empty() || s.b.Empty()
}

func (s *ZipRef2Seq[A, B]) FrontVal() Pair[*A, *B] {
	if s.Empty() {
		panic(ErrEmptySequence)
	}
	return Pair[*A, *B]{A: s.a.FrontRef(), B: s.b.FrontRef()}
}

func (s *ZipRef2Seq[A, B]) Advance() {
	if s.Empty() {
		panic(ErrEmptySequence)
	}
	s.a.Advance()
	s.b.Advance()
}

type ZipRef3Seq[A, B, C any] struct {
	a *Bound[A]
	b *Bound[B]
	c *Bound[C]
}

func ZipRef3[A, B, C any](a, b, c any) *ZipRef3Seq[A, B, C] {
	return &ZipRef3Seq[A, B, C]{a: refSource[A](a), b: refSource[B](b), c: refSource[C](c)}
}

func (s *ZipRef3Seq[A, B, C]) Empty() bool {
	return s.a.Empty() || s.b.Empty() || s.c.Empty()
}

func (s *ZipRef3Seq[A, B, C]) FrontVal() Triple[*A, *B, *C] {
	if s.Empty() {
		panic(ErrEmptySequence)
	}
	return Triple[*A, *B, *C]{A: s.a.FrontRef(), B: s.b.FrontRef(), C: s.c.FrontRef()}
}

func (s *ZipRef3Seq[A, B, C]) Advance() {
	if s.Empty() {
		panic(ErrEmptySequence)
	}
	s.a.Advance()
	s.b.Advance()
	s.c.Advance()
}

// ZipWith2 maps a two-argument function over the zipped elements of a and b.
func ZipWith2[A, B, Out any](a, b any, f func(A, B) Out) *MappedSeq[Pair[A, B], Out] {
	return Map(Zip2[A, B](a, b), func(p Pair[A, B]) Out { return f(p.A, p.B) })
}

// ZipWith3 maps a three-argument function over the zipped elements of a, b
// and c.
func ZipWith3[A, B, C, Out any](a, b, c any, f func(A, B, C) Out) *MappedSeq[Triple[A, B, C], Out] {
	return Map(Zip3[A, B, C](a, b, c), func(t Triple[A, B, C]) Out { return f(t.A, t.B, t.C) })
}
