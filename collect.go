package ranges

import (
	"fmt"
	"strings"

	"github.com/inoxlang/ranges/internal/utils"
	"golang.org/x/exp/constraints"
)

// Each drains s, calling f on each pulled element in order.
func Each[T any](s any, f func(T)) {
	b := AsSequence[T](s)
	for !b.Empty() {
		f(b.Pull())
	}
}

// EachRef drains s, calling f with a pointer to each element in place so f
// can mutate it. The sequence must declare a front reference.
func EachRef[T any](s any, f func(*T)) {
	b := refSource[T](s)
	for !b.Empty() {
		f(b.FrontRef())
		b.Advance()
	}
}

// Collect drains s into a fresh slice. An empty sequence gives an empty,
// non-nil slice.
func Collect[T any](s any) []T {
	b := AsSequence[T](s)
	out := []T{}
	for !b.Empty() {
		out = append(out, b.Pull())
	}
	return out
}

// MapCollect drains s, applying f to each element.
func MapCollect[In, Out any](s any, f func(In) Out) []Out {
	return Collect[Out](Map(s, f))
}

// TakeCollect copies up to n front elements into a slice, advancing past
// each copied one. It never pulls, so it needs a readable front; a shorter
// sequence gives fewer elements and n <= 0 gives none.
func TakeCollect[T any](s any, n int) []T {
	b := frontSource[T](s)
	out := []T{}
	for i := 0; i < n && !b.Empty(); i++ {
		out = append(out, b.FrontVal())
		b.Advance()
	}
	return out
}

// Drain consumes s for its side effects and returns the element count. When
// the sequence can advance no element is copied out.
func Drain[T any](s any) int {
	b := AsSequence[T](s)
	n := 0
	if b.Caps().Has(CapAdvance) {
		for !b.Empty() {
			b.Advance()
			n++
		}
		return n
	}
	for !b.Empty() {
		b.Pull()
		n++
	}
	return n
}

// Addable covers the element types Accumulate can sum with the + operator.
type Addable interface {
	constraints.Integer | constraints.Float | constraints.Complex | ~string
}

// Accumulate drains s, summing its elements onto the zero value. An empty
// sequence returns the zero value unchanged.
func Accumulate[T Addable](s any) T {
	b := AsSequence[T](s)
	var total T
	for !b.Empty() {
		total += b.Pull()
	}
	return total
}

// MinElem drains s and returns its smallest element, false when s is empty.
func MinElem[T constraints.Ordered](s any) (T, bool) {
	b := AsSequence[T](s)
	var smallest T
	if b.Empty() {
		return smallest, false
	}
	smallest = b.Pull()
	for !b.Empty() {
		if v := b.Pull(); v < smallest {
			smallest = v
		}
	}
	return smallest, true
}

// MaxElem drains s and returns its largest element, false when s is empty.
func MaxElem[T constraints.Ordered](s any) (T, bool) {
	b := AsSequence[T](s)
	var largest T
	if b.Empty() {
		return largest, false
	}
	largest = b.Pull()
	for !b.Empty() {
		if v := b.Pull(); v > largest {
			largest = v
		}
	}
	return largest, true
}

// Sprint drains s and renders its elements as "[e1,e2,e3]".
func Sprint[T any](s any) string {
	elems := utils.MapSlice(Collect[T](s), func(e T) string {
		return fmt.Sprint(e)
	})

	return "[" + strings.Join(elems, ",") + "]"
}
