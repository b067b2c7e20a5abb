package ranges

import (
	"iter"

	"github.com/emirpasic/gods/lists/arraylist"
)

// MemoSeq records the elements of another sequence as they are read, making
// a one-shot source iterable again: the recording gives it a readable front
// and conventional iteration even when the source is pull-only.
type MemoSeq[T any] struct {
	src  *Bound[T]
	tape *arraylist.List
	pos  int
}

// Memoize returns a recording view of s.
func Memoize[T any](s any) *MemoSeq[T] {
	return &MemoSeq[T]{src: AsSequence[T](s), tape: arraylist.New()}
}

// fetch extends the recording until it holds pos+1 elements, reporting
// whether it could
func (s *MemoSeq[T]) fetch(pos int) bool {
	for s.tape.Size() <= pos {
		if s.src.Empty() {
			return false
		}
		s.tape.Add(s.src.Pull())
	}
	return true
}

func (s *MemoSeq[T]) Empty() bool {
	return !s.fetch(s.pos)
}

func (s *MemoSeq[T]) FrontVal() T {
	if !s.fetch(s.pos) {
		panic(ErrEmptySequence)
	}
	v, _ := s.tape.Get(s.pos)
	return v.(T)
}

func (s *MemoSeq[T]) Advance() {
	if !s.fetch(s.pos) {
		panic(ErrEmptySequence)
	}
	s.pos++
}

// Rewind moves the cursor back to the start of the recording.
func (s *MemoSeq[T]) Rewind() {
	s.pos = 0
}

// Values yields from the start of the recording, not from the current
// cursor, extending the recording as it goes. Each call replays every
// element read so far.
func (s *MemoSeq[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; s.fetch(i); i++ {
			v, _ := s.tape.Get(i)
			if !yield(v.(T)) {
				return
			}
		}
	}
}
