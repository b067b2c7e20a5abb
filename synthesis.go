package ranges

import "iter"

// Package-level forms of the primitive operations. Each resolves its operand
// and dispatches through the capability closure, so derived operations work
// on types that never declared them. Operations panic with ErrNotSequence on
// non-sequence operands and with the matching ErrMissing* sentinel when the
// capability is absent from the closure.

// Empty reports whether s has no elements left.
func Empty(s any) bool {
	if e, ok := s.(Emptier); ok {
		return e.Empty()
	}
	panic(ErrNotSequence)
}

// Advance steps s to its next element.
func Advance(s any) {
	if a, ok := s.(Advancer); ok {
		a.Advance()
		return
	}
	panic(ErrMissingAdvance)
}

// FrontVal returns a copy of the front element. Types that only declare
// FrontRef are read through the reference.
func FrontVal[T any](s any) T {
	val, caps := mustResolve[T](s)
	if caps.frontVal == nil {
		panic(ErrMissingFrontVal)
	}
	return caps.frontVal(val)
}

// FrontRef returns a pointer to the front element's storage. It is never
// derived: the sequence must declare it.
func FrontRef[T any](s any) *T {
	val, caps := mustResolve[T](s)
	if caps.frontRef == nil {
		panic(ErrMissingFrontRef)
	}
	return caps.frontRef(val)
}

// Front reads the front element, preferring the declared reference over the
// value form.
func Front[T any](s any) T {
	val, caps := mustResolve[T](s)
	if caps.frontRef != nil {
		return *caps.frontRef(val)
	}
	if caps.frontVal == nil {
		panic(ErrMissingFrontVal)
	}
	return caps.frontVal(val)
}

// Pull returns the front element and steps past it. A declared Pull wins,
// otherwise the element is copied out and the sequence advanced.
func Pull[T any](s any) T {
	val, caps := mustResolve[T](s)
	return caps.pull(val)
}

// Values returns the conventional-iteration form of s. It panics with
// ErrMissingValues for sequences that do not declare one.
func Values[T any](s any) iter.Seq[T] {
	val, caps := mustResolve[T](s)
	if caps.values == nil {
		panic(ErrMissingValues)
	}
	return caps.values(val)
}

// DefinitelyInfinite reports whether s is known to never exhaust. Sequences
// that do not declare the capability are not known to be infinite.
func DefinitelyInfinite(s any) bool {
	if inf, ok := s.(Infinite); ok {
		return inf.DefinitelyInfinite()
	}
	return false
}
