package ranges

import (
	"iter"

	aq "github.com/emirpasic/gods/queues/arrayqueue"
)

// StreamSeq adapts a one-shot element stream. It is pull-only: the front
// cannot be observed without consuming it, so operations needing a readable
// front (Map, Filter, TakeCollect, ...) reject it. Memoize the stream first
// when those are needed.
type StreamSeq[T any] struct {
	next  func() (T, bool)
	stop  func()
	ahead T
	ready bool
	done  bool
}

// FromIter adapts a conventional-iteration sequence into a pull-only
// stream.
func FromIter[T any](src iter.Seq[T]) *StreamSeq[T] {
	next, stop := iter.Pull(src)
	return &StreamSeq[T]{next: next, stop: stop}
}

// Empty reads one element ahead when needed; the element waits for the next
// Pull.
func (s *StreamSeq[T]) Empty() bool {
	if s.ready {
		return false
	}
	if s.done {
		return true
	}
	v, ok := s.next()
	if !ok {
		s.done = true
		s.stop()
		return true
	}
	s.ahead = v
	s.ready = true
	return false
}

func (s *StreamSeq[T]) Pull() T {
	if s.Empty() {
		panic(ErrPullFromEmptySequence)
	}
	v := s.ahead
	var zero T
	s.ahead = zero
	s.ready = false
	return v
}

// Values yields the remaining elements. Iterating consumes the stream.
func (s *StreamSeq[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for !s.Empty() {
			if !yield(s.Pull()) {
				return
			}
		}
	}
}

// ChanSeq adapts a receive channel. Empty blocks until an element is
// available or the channel is closed; received elements wait in an internal
// queue until pulled. Like StreamSeq it is pull-only and single-pass. The
// channel may be fed from other goroutines but the adapter's own methods are
// not safe for concurrent use.
type ChanSeq[T any] struct {
	ch      <-chan T
	pending *aq.Queue
	closed  bool
}

func FromChan[T any](ch <-chan T) *ChanSeq[T] {
	return &ChanSeq[T]{ch: ch, pending: aq.New()}
}

func (s *ChanSeq[T]) Empty() bool {
	if !s.pending.Empty() {
		return false
	}
	if s.closed {
		return true
	}
	v, ok := <-s.ch
	if !ok {
		s.closed = true
		return true
	}
	s.pending.Enqueue(v)
	return false
}

func (s *ChanSeq[T]) Pull() T {
	if s.Empty() {
		panic(ErrPullFromEmptySequence)
	}
	v, _ := s.pending.Dequeue()
	return v.(T)
}

// Values yields elements as they arrive until the channel closes. Iterating
// consumes the sequence.
func (s *ChanSeq[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for !s.Empty() {
			if !yield(s.Pull()) {
				return
			}
		}
	}
}
