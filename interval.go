package ranges

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Interval is an arithmetic progression over the half-open range
// [start, end), optionally unbounded above. The zero value is an empty
// interval.
type Interval[T constraints.Integer] struct {
	next      T
	end       T
	unbounded bool
}

// Ints returns the interval [0, end).
func Ints(end int) *Interval[int] {
	return IntsBetween(0, end)
}

// IntsBetween returns the interval [start, end).
func IntsBetween(start, end int) *Interval[int] {
	return NewInterval(start, end)
}

// IntsFrom returns the unbounded interval starting at start. Zipping it
// against a finite sequence is the usual way to number elements.
func IntsFrom(start int) *Interval[int] {
	return &Interval[int]{next: start, unbounded: true}
}

// NewInterval returns [start, end) over any integer type.
func NewInterval[T constraints.Integer](start, end T) *Interval[T] {
	if end < start {
		panic(ErrIntervalEndBeforeStart)
	}
	return &Interval[T]{next: start, end: end}
}

func (it *Interval[T]) Empty() bool {
	return !it.unbounded && it.next >= it.end
}

func (it *Interval[T]) FrontVal() T {
	if it.Empty() {
		panic(ErrEmptySequence)
	}
	return it.next
}

func (it *Interval[T]) Advance() {
	if it.Empty() {
		panic(ErrEmptySequence)
	}
	it.next++
}

func (it *Interval[T]) DefinitelyInfinite() bool {
	return it.unbounded
}

// Values iterates from the current position without consuming the interval.
func (it *Interval[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := it.next; it.unbounded || v < it.end; v++ {
			if !yield(v) {
				return
			}
		}
	}
}
