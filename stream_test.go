package ranges

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStreamSeq(t *testing.T) {
	t.Run("pull only capabilities", func(t *testing.T) {
		s := FromIter(slices.Values([]int{1, 2, 3}))
		caps := Caps[int](s)
		assert.True(t, caps.Has(CapEmpty))
		assert.True(t, caps.Has(CapPull))
		assert.True(t, caps.Has(CapValues))
		assert.False(t, caps.Has(CapFrontVal))
		assert.False(t, caps.Has(CapAdvance))
	})

	t.Run("drain", func(t *testing.T) {
		s := FromIter(slices.Values([]int{1, 2, 3}))
		assert.Equal(t, []int{1, 2, 3}, Collect[int](s))
		assert.True(t, s.Empty())
		assert.PanicsWithError(t, ErrPullFromEmptySequence.Error(), func() {
			s.Pull()
		})
	})

	t.Run("empty is repeatable", func(t *testing.T) {
		s := FromIter(slices.Values([]int{9}))
		assert.False(t, s.Empty())
		assert.False(t, s.Empty())
		//the look-ahead element is not lost
		assert.Equal(t, 9, s.Pull())
		assert.True(t, s.Empty())
	})

	t.Run("front operations reject streams", func(t *testing.T) {
		assert.PanicsWithError(t, ErrMissingFrontVal.Error(), func() {
			TakeCollect[int](FromIter(slices.Values([]int{1, 2})), 1)
		})
	})
}

func TestChanSeq(t *testing.T) {
	t.Run("drains until close", func(t *testing.T) {
		ch := make(chan int)
		go func() {
			for i := 0; i < 3; i++ {
				ch <- i * 10
			}
			close(ch)
		}()
		assert.Equal(t, []int{0, 10, 20}, Collect[int](FromChan(ch)))
	})

	t.Run("closed channel is empty", func(t *testing.T) {
		ch := make(chan string)
		close(ch)
		s := FromChan(ch)
		assert.True(t, s.Empty())
		assert.PanicsWithError(t, ErrPullFromEmptySequence.Error(), func() {
			s.Pull()
		})
	})

	t.Run("buffered elements wait in order", func(t *testing.T) {
		ch := make(chan int, 2)
		ch <- 1
		ch <- 2
		close(ch)
		s := FromChan(ch)
		assert.False(t, s.Empty())
		assert.False(t, s.Empty())
		assert.Equal(t, 1, s.Pull())
		assert.Equal(t, 2, s.Pull())
		assert.True(t, s.Empty())
	})
}
