package ranges

import (
	"iter"
	"reflect"
	"strings"

	cmap "github.com/orcaman/concurrent-map/v2"
)

var (
	_ = []Emptier{
		(*Interval[int])(nil), (*SliceSeq[int])(nil), (*Owned[int])(nil), (*StreamSeq[int])(nil),
		(*ChanSeq[int])(nil), (*BitSeq)(nil), (*MappedSeq[int, int])(nil), (*FilteredSeq[int])(nil),
		(*Zip2Seq[int, int])(nil), (*ZipRef2Seq[int, int])(nil), (*Zip3Seq[int, int, int])(nil),
		(*ZipRef3Seq[int, int, int])(nil), (*ConcatSeq[int])(nil), (*FlattenSeq[int])(nil),
		(*ReplicateSeq[int])(nil), (*MemoSeq[int])(nil), (*SortedSeq[int])(nil),
		(*InspectedSeq[int])(nil), (*Bound[int])(nil),
	}
	_ = []Advancer{
		(*Interval[int])(nil), (*SliceSeq[int])(nil), (*Owned[int])(nil), (*BitSeq)(nil),
		(*MappedSeq[int, int])(nil), (*FilteredSeq[int])(nil), (*Zip2Seq[int, int])(nil),
		(*Zip3Seq[int, int, int])(nil), (*ZipRef2Seq[int, int])(nil), (*ZipRef3Seq[int, int, int])(nil),
		(*ConcatSeq[int])(nil), (*FlattenSeq[int])(nil), (*ReplicateSeq[int])(nil),
		(*MemoSeq[int])(nil), (*SortedSeq[int])(nil), (*InspectedSeq[int])(nil),
	}
	_ = []FrontValuer[int]{
		(*Interval[int])(nil), (*SliceSeq[int])(nil), (*Owned[int])(nil), (*MappedSeq[string, int])(nil),
		(*FilteredSeq[int])(nil), (*ConcatSeq[int])(nil), (*FlattenSeq[int])(nil),
		(*ReplicateSeq[int])(nil), (*MemoSeq[int])(nil), (*SortedSeq[int])(nil),
		(*InspectedSeq[int])(nil),
	}
	_ = []FrontValuer[bool]{(*BitSeq)(nil)}
	_ = []FrontValuer[Pair[int, int]]{(*Zip2Seq[int, int])(nil)}
	_ = []FrontValuer[Pair[*int, *int]]{(*ZipRef2Seq[int, int])(nil)}
	_ = []FrontRefer[int]{(*SliceSeq[int])(nil), (*Owned[int])(nil), (*FlattenSeq[int])(nil)}
	_ = []Puller[int]{(*StreamSeq[int])(nil), (*ChanSeq[int])(nil), (*Bound[int])(nil)}
	_ = []Iterable[int]{
		(*Interval[int])(nil), (*SliceSeq[int])(nil), (*Owned[int])(nil), (*StreamSeq[int])(nil),
		(*ChanSeq[int])(nil), (*ReplicateSeq[int])(nil), (*MemoSeq[int])(nil), (*SortedSeq[int])(nil),
	}
	_ = []Iterable[bool]{(*BitSeq)(nil)}
	_ = []Iterable[Pair[int, int]]{(*Zip2Seq[int, int])(nil)}
	_ = []Infinite{(*Interval[int])(nil)}
)

// A sequence type declares a primitive operation by implementing the
// corresponding capability interface. Methods that mutate iteration state
// (Advance, Pull) must have pointer receivers, otherwise they step a copy.

type Emptier interface {
	Empty() bool
}

type Advancer interface {
	Advance()
}

type FrontValuer[T any] interface {
	FrontVal() T
}

type FrontRefer[T any] interface {
	FrontRef() *T
}

type Puller[T any] interface {
	Pull() T
}

// Iterable is the conventional-iteration capability. It is never derived
// from the other primitives: a type that does not declare it cannot be
// ranged over.
type Iterable[T any] interface {
	Values() iter.Seq[T]
}

// Infinite marks sequence types that can report they never exhaust. Absence
// means "not known to be infinite".
type Infinite interface {
	DefinitelyInfinite() bool
}

type CapSet uint8

const (
	CapEmpty CapSet = 1 << iota
	CapAdvance
	CapFrontVal
	CapFrontRef
	CapPull
	CapValues
)

func (s CapSet) Has(c CapSet) bool {
	return s&c == c
}

func (s CapSet) String() string {
	names := make([]string, 0, 6)
	for _, e := range [...]struct {
		cap  CapSet
		name string
	}{
		{CapEmpty, "empty"}, {CapAdvance, "advance"}, {CapFrontVal, "front_val"},
		{CapFrontRef, "front_ref"}, {CapPull, "pull"}, {CapValues, "values"},
	} {
		if s.Has(e.cap) {
			names = append(names, e.name)
		}
	}
	return strings.Join(names, "|")
}

// Capabilities is the resolved operation table of a sequence type for a given
// element type: the declared primitives plus the ones derived from them. A
// slot is nil when the operation is neither declared nor derivable.
type Capabilities[T any] struct {
	declared CapSet
	closure  CapSet

	empty    func(s any) bool
	advance  func(s any)
	frontVal func(s any) T
	frontRef func(s any) *T
	pull     func(s any) T
	values   func(s any) iter.Seq[T]
}

func (c *Capabilities[T]) Declared() CapSet { return c.declared }

// Closure returns the declared plus derived capability set.
func (c *Capabilities[T]) Closure() CapSet { return c.closure }

// Sequence reports whether the closure satisfies the sequence contract:
// exhaustion is checkable and elements can be pulled.
func (c *Capabilities[T]) Sequence() bool {
	return c.closure.Has(CapEmpty) && c.closure.Has(CapPull)
}

type closureKey struct {
	seq  reflect.Type
	elem reflect.Type
}

var closures = cmap.NewWithCustomShardingFunction[closureKey, any](func(key closureKey) uint32 {
	return uint32(reflect.ValueOf(key.seq).Pointer() >> 4)
})

// Resolve returns the capability closure of v's type for element type T,
// building and caching it on first use.
func Resolve[T any](v any) *Capabilities[T] {
	if b, ok := v.(*Bound[T]); ok {
		return b.caps
	}
	if v == nil {
		return &Capabilities[T]{}
	}
	key := closureKey{seq: reflect.TypeOf(v), elem: reflect.TypeFor[T]()}
	if entry, ok := closures.Get(key); ok {
		return entry.(*Capabilities[T])
	}
	caps := buildClosure[T](v)
	closures.Set(key, caps)
	logger.Debug().
		Str("type", key.seq.String()).
		Str("elem", key.elem.String()).
		Stringer("declared", caps.declared).
		Stringer("closure", caps.closure).
		Msg("resolved sequence capabilities")
	return caps
}

func buildClosure[T any](v any) *Capabilities[T] {
	caps := &Capabilities[T]{}

	if _, ok := v.(Emptier); ok {
		caps.declared |= CapEmpty
		caps.empty = func(s any) bool { return s.(Emptier).Empty() }
	}
	if _, ok := v.(Advancer); ok {
		caps.declared |= CapAdvance
		caps.advance = func(s any) { s.(Advancer).Advance() }
	}
	if _, ok := v.(FrontValuer[T]); ok {
		caps.declared |= CapFrontVal
		caps.frontVal = func(s any) T { return s.(FrontValuer[T]).FrontVal() }
	}
	if _, ok := v.(FrontRefer[T]); ok {
		caps.declared |= CapFrontRef
		caps.frontRef = func(s any) *T { return s.(FrontRefer[T]).FrontRef() }
	}
	if _, ok := v.(Puller[T]); ok {
		caps.declared |= CapPull
		caps.pull = func(s any) T { return s.(Puller[T]).Pull() }
	}
	if _, ok := v.(Iterable[T]); ok {
		caps.declared |= CapValues
		caps.values = func(s any) iter.Seq[T] { return s.(Iterable[T]).Values() }
	}

	caps.closure = caps.declared

	//front_val can be derived by copying through a declared front_ref
	if caps.frontVal == nil && caps.frontRef != nil {
		caps.closure |= CapFrontVal
		ref := caps.frontRef
		caps.frontVal = func(s any) T { return *ref(s) }
	}

	//pull can be derived from a readable front plus advance: copy, step,
	//return the copy
	if caps.pull == nil && caps.frontVal != nil && caps.advance != nil {
		caps.closure |= CapPull
		front, adv := caps.frontVal, caps.advance
		caps.pull = func(s any) T {
			v := front(s)
			adv(s)
			return v
		}
	}

	return caps
}

// IsSequence reports whether v can be iterated as a sequence of T elements.
func IsSequence[T any](v any) bool {
	return Resolve[T](v).Sequence()
}

// Caps returns the capability closure set of v for element type T.
func Caps[T any](v any) CapSet {
	return Resolve[T](v).Closure()
}

func resolveOperand[T any](s any) (any, *Capabilities[T]) {
	if b, ok := s.(*Bound[T]); ok {
		return b.val, b.caps
	}
	return s, Resolve[T](s)
}

func mustResolve[T any](s any) (any, *Capabilities[T]) {
	val, caps := resolveOperand[T](s)
	if !caps.Sequence() {
		panic(ErrNotSequence)
	}
	return val, caps
}

// Bound couples a sequence value with its resolved capability closure and
// exposes the operations as methods, for manual iteration:
//
//	b := ranges.Bind[int](ranges.Ints(3))
//	for !b.Empty() {
//		fmt.Println(b.Pull())
//	}
type Bound[T any] struct {
	val  any
	caps *Capabilities[T]
}

// Bind resolves v and panics with ErrNotSequence if v's type does not
// satisfy the sequence contract. Binding a *Bound returns it unchanged.
func Bind[T any](v any) *Bound[T] {
	if b, ok := v.(*Bound[T]); ok {
		return b
	}
	val, caps := mustResolve[T](v)
	return &Bound[T]{val: val, caps: caps}
}

// Caps returns the capability closure set.
func (b *Bound[T]) Caps() CapSet {
	return b.caps.closure
}

func (b *Bound[T]) Empty() bool {
	return b.caps.empty(b.val)
}

func (b *Bound[T]) Advance() {
	if b.caps.advance == nil {
		panic(ErrMissingAdvance)
	}
	b.caps.advance(b.val)
}

func (b *Bound[T]) FrontVal() T {
	if b.caps.frontVal == nil {
		panic(ErrMissingFrontVal)
	}
	return b.caps.frontVal(b.val)
}

func (b *Bound[T]) FrontRef() *T {
	if b.caps.frontRef == nil {
		panic(ErrMissingFrontRef)
	}
	return b.caps.frontRef(b.val)
}

// Front reads the front element, through the reference when the sequence has
// one and by value otherwise.
func (b *Bound[T]) Front() T {
	if b.caps.frontRef != nil {
		return *b.caps.frontRef(b.val)
	}
	return b.FrontVal()
}

func (b *Bound[T]) Pull() T {
	return b.caps.pull(b.val)
}

func (b *Bound[T]) Values() iter.Seq[T] {
	if b.caps.values == nil {
		panic(ErrMissingValues)
	}
	return b.caps.values(b.val)
}

func (b *Bound[T]) DefinitelyInfinite() bool {
	if inf, ok := b.val.(Infinite); ok {
		return inf.DefinitelyInfinite()
	}
	return false
}
