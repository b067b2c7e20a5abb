// Package ranges builds lazy element pipelines over anything that can
// report exhaustion and hand out elements.
//
// # Capabilities
//
// A sequence type declares primitive operations by implementing small
// capability interfaces: Emptier (mandatory), Advancer, FrontValuer,
// FrontRefer, Puller and Iterable. The package detects the declared set by
// type assertion, once per concrete type, and derives what the declarations
// allow: reading the front by value falls back to copying through a
// reference, pulling falls back to copy-then-advance. A value whose type
// ends up with exhaustion checking plus a way to read and pass elements is
// a sequence; IsSequence reports it and Caps shows the full closure.
//
// The package-level operations Empty, Advance, Front, FrontVal, FrontRef,
// Pull and Values work on any sequence through that closure; Bind couples a
// value with its closure for manual loops:
//
//	b := ranges.Bind[int](ranges.Ints(3))
//	for !b.Empty() {
//		fmt.Println(b.Pull())
//	}
//
// # Adapters and terminals
//
// Constructors adapt common sources: Ints and IntsFrom (intervals, the
// latter unbounded), FromSlice, Own, FromIter, FromChan, FromBitSet,
// Replicate. Lazy combinators compose sequences: Map, Filter, the Zip
// family, Concat, Flatten, Memoize, Sorted, Inspect. Terminals consume
// them: Each, EachRef, Collect, TakeCollect, MapCollect, Accumulate, Drain,
// MinElem, MaxElem, Sprint, CollectBits.
//
//	odd := ranges.Filter(ranges.Ints(10), func(x int) bool { return x%2 == 1 })
//	squares := ranges.Map(odd, func(x int) int { return x * x })
//	fmt.Println(ranges.Collect[int](squares)) // [1 9 25 49 81]
//
// Combinator operands go through AsSequence, so plain slices, channels and
// iter.Seq values can be used directly. Element types that a function
// literal does not pin down are passed explicitly, as in Collect[int].
//
// # Errors
//
// Operations a type cannot support panic with sentinel errors
// (ErrMissingFrontVal, ErrMissingAdvance, ...), at construction time
// wherever the needed capability is knowable then. Reading or advancing an
// exhausted sequence panics ErrEmptySequence in the package's own adapters.
// Strict zips (ZipVal2, ZipVal3) panic ErrZipLengthMismatch when their
// sources disagree on length, unless the longer ones are declared infinite;
// relaxed zips truncate instead.
//
// Sequence values are single-threaded: nothing in the package synchronizes
// access to one sequence.
package ranges
