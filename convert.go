package ranges

import (
	"iter"
	"reflect"
)

// AsSequence adapts v into a bound sequence of T elements. Values that
// already satisfy the sequence contract pass through unchanged; slices,
// arrays, conventional-iteration sequences and channels get wrapped in the
// matching adapter. Everything else panics with ErrNotSequence.
//
// Combinators convert their operands with AsSequence, so a plain []T can be
// filtered, mapped or zipped directly.
func AsSequence[T any](v any) *Bound[T] {
	if b, ok := v.(*Bound[T]); ok {
		return b
	}
	if IsSequence[T](v) {
		return Bind[T](v)
	}
	switch s := v.(type) {
	case []T:
		return Bind[T](FromSlice(s))
	case iter.Seq[T]:
		return Bind[T](FromIter(s))
	case chan T:
		return Bind[T](FromChan(s))
	case <-chan T:
		return Bind[T](FromChan(s))
	}
	//an array boxed into an interface is already a copy, so the adapter owns
	//its elements
	if elems, ok := arrayElems[T](v); ok {
		return Bind[T](Own(elems))
	}
	panic(ErrNotSequence)
}

func arrayElems[T any](v any) ([]T, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Array || rv.Type().Elem() != reflect.TypeFor[T]() {
		return nil, false
	}
	elems := make([]T, rv.Len())
	for i := range elems {
		elems[i] = rv.Index(i).Interface().(T)
	}
	return elems, true
}

// frontSource adapts s for lazy element-wise adapters: the front must be
// readable without consuming it and the sequence must advance.
func frontSource[T any](s any) *Bound[T] {
	b := AsSequence[T](s)
	if !b.Caps().Has(CapFrontVal) {
		panic(ErrMissingFrontVal)
	}
	if !b.Caps().Has(CapAdvance) {
		panic(ErrMissingAdvance)
	}
	return b
}

// refSource adapts s for adapters that hand out references to the front.
func refSource[T any](s any) *Bound[T] {
	b := AsSequence[T](s)
	if !b.Caps().Has(CapFrontRef) {
		panic(ErrMissingFrontRef)
	}
	if !b.Caps().Has(CapAdvance) {
		panic(ErrMissingAdvance)
	}
	return b
}
