package ranges

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTerminals(t *testing.T) {
	t.Run("each", func(t *testing.T) {
		var got []int
		Each(Ints(3), func(v int) { got = append(got, v) })
		assert.Equal(t, []int{0, 1, 2}, got)
	})

	t.Run("each ref mutates in place", func(t *testing.T) {
		xs := []int{1, 2, 3}
		EachRef(xs, func(v *int) { *v = -*v })
		assert.Equal(t, []int{-1, -2, -3}, xs)
	})

	t.Run("each ref needs a front reference", func(t *testing.T) {
		assert.PanicsWithError(t, ErrMissingFrontRef.Error(), func() {
			EachRef(Ints(3), func(*int) {})
		})
	})

	t.Run("collect on an empty sequence", func(t *testing.T) {
		out := Collect[int](Ints(0))
		assert.NotNil(t, out)
		assert.Empty(t, out)
	})

	t.Run("collect round trip is idempotent", func(t *testing.T) {
		first := Collect[int](IntsBetween(3, 7))
		assert.Equal(t, first, Collect[int](first))
	})

	t.Run("take collect", func(t *testing.T) {
		assert.Equal(t, []int{0, 1}, TakeCollect[int](Ints(10), 2))
		assert.Equal(t, []int{0, 1, 2}, TakeCollect[int](Ints(3), 5))
		assert.Empty(t, TakeCollect[int](Ints(3), 0))
		assert.Empty(t, TakeCollect[int](Ints(3), -1))
	})

	t.Run("take collect copies the front instead of pulling", func(t *testing.T) {
		s := &markedPull{elems: []int{1, 2, 3}}
		assert.Equal(t, []int{1, 2}, TakeCollect[int](s, 2))
	})

	t.Run("drain", func(t *testing.T) {
		assert.Equal(t, 4, Drain[int](Ints(4)))
		assert.Equal(t, 0, Drain[int](Ints(0)))
		assert.Equal(t, 3, Drain[string](FromIter(Replicate(3, "x").Values())))
	})
}

func TestAccumulate(t *testing.T) {
	t.Run("ints", func(t *testing.T) {
		assert.Equal(t, 10, Accumulate[int](Ints(5)))
	})

	t.Run("empty sum is the zero value", func(t *testing.T) {
		assert.Zero(t, Accumulate[int](Ints(0)))
	})

	t.Run("strings concatenate", func(t *testing.T) {
		assert.Equal(t, "ab", Accumulate[string]([]string{"a", "b"}))
	})

	t.Run("floats", func(t *testing.T) {
		assert.InDelta(t, 0.6, Accumulate[float64]([]float64{0.1, 0.2, 0.3}), 1e-9)
	})
}

func TestMinMax(t *testing.T) {
	t.Run("min and max", func(t *testing.T) {
		smallest, ok := MinElem[int]([]int{3, 1, 2})
		assert.True(t, ok)
		assert.Equal(t, 1, smallest)

		largest, ok := MaxElem[int]([]int{3, 1, 2})
		assert.True(t, ok)
		assert.Equal(t, 3, largest)
	})

	t.Run("empty sequence has neither", func(t *testing.T) {
		_, ok := MinElem[string]([]string{})
		assert.False(t, ok)
		_, ok = MaxElem[int](Ints(0))
		assert.False(t, ok)
	})
}

func TestSprint(t *testing.T) {
	t.Run("elements", func(t *testing.T) {
		assert.Equal(t, "[0,1,2]", Sprint[int](Ints(3)))
		assert.Equal(t, "[a]", Sprint[string]([]string{"a"}))
	})

	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, "[]", Sprint[int](Ints(0)))
	})
}
