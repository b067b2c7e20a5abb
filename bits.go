package ranges

import (
	"iter"

	"github.com/bits-and-blooms/bitset"
)

// BitSeq is a view over a bitset as a sequence of booleans. Bits are not
// addressable so the front is readable by value only.
type BitSeq struct {
	set *bitset.BitSet
	i   uint
}

func FromBitSet(set *bitset.BitSet) *BitSeq {
	return &BitSeq{set: set}
}

func (s *BitSeq) Empty() bool {
	return s.i >= s.set.Len()
}

func (s *BitSeq) FrontVal() bool {
	if s.Empty() {
		panic(ErrEmptySequence)
	}
	return s.set.Test(s.i)
}

func (s *BitSeq) Advance() {
	if s.Empty() {
		panic(ErrEmptySequence)
	}
	s.i++
}

func (s *BitSeq) Values() iter.Seq[bool] {
	return func(yield func(bool) bool) {
		for i := s.i; i < s.set.Len(); i++ {
			if !yield(s.set.Test(i)) {
				return
			}
		}
	}
}

// CollectBits drains a boolean sequence into a fresh bitset, element i
// becoming bit i. Trailing false elements still count towards the bitset's
// length.
func CollectBits(s any) *bitset.BitSet {
	elems := Collect[bool](s)
	set := bitset.New(uint(len(elems)))
	for i, v := range elems {
		if v {
			set.Set(uint(i))
		}
	}
	return set
}
