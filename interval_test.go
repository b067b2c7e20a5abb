package ranges

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterval(t *testing.T) {
	t.Run("collect", func(t *testing.T) {
		assert.Equal(t, []int{0, 1, 2, 3, 4}, Collect[int](Ints(5)))
		assert.Equal(t, []int{2, 3, 4}, Collect[int](IntsBetween(2, 5)))
	})

	t.Run("empty intervals", func(t *testing.T) {
		assert.True(t, Empty(Ints(0)))
		assert.Equal(t, []int{}, Collect[int](IntsBetween(3, 3)))
	})

	t.Run("invalid bounds panic", func(t *testing.T) {
		assert.PanicsWithError(t, ErrIntervalEndBeforeStart.Error(), func() {
			IntsBetween(5, 2)
		})
	})

	t.Run("front and advance", func(t *testing.T) {
		r := Ints(2)
		assert.Equal(t, 0, r.FrontVal())
		r.Advance()
		assert.Equal(t, 1, r.FrontVal())
		r.Advance()
		assert.True(t, r.Empty())
		assert.PanicsWithError(t, ErrEmptySequence.Error(), func() {
			r.Advance()
		})
		assert.PanicsWithError(t, ErrEmptySequence.Error(), func() {
			r.FrontVal()
		})
	})

	t.Run("unbounded", func(t *testing.T) {
		r := IntsFrom(7)
		assert.True(t, DefinitelyInfinite(r))
		assert.False(t, DefinitelyInfinite(Ints(3)))
		assert.Equal(t, []int{7, 8, 9}, TakeCollect[int](r, 3))
	})

	t.Run("other integer types", func(t *testing.T) {
		assert.Equal(t, []byte{1, 2}, Collect[byte](NewInterval[byte](1, 3)))
	})

	t.Run("conventional iteration", func(t *testing.T) {
		var got []int
		for v := range Ints(4).Values() {
			if v == 2 {
				break
			}
			got = append(got, v)
		}
		assert.Equal(t, []int{0, 1}, got)
	})
}
