package ranges

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

type emptyOnly struct{}

func (emptyOnly) Empty() bool { return true }

//readable front but no way to make progress
type frontNoProgress struct{ v int }

func (s *frontNoProgress) Empty() bool   { return false }
func (s *frontNoProgress) FrontVal() int { return s.v }

type pullOnly struct {
	elems []int
}

func (s *pullOnly) Empty() bool { return len(s.elems) == 0 }

func (s *pullOnly) Pull() int {
	v := s.elems[0]
	s.elems = s.elems[1:]
	return v
}

type resolveProbe struct{ n int }

func (s *resolveProbe) Empty() bool { return s.n <= 0 }

func (s *resolveProbe) Pull() int {
	s.n--
	return s.n
}

func TestCapabilityResolution(t *testing.T) {
	t.Run("non sequences", func(t *testing.T) {
		assert.False(t, IsSequence[int](3))
		assert.False(t, IsSequence[int](nil))
		assert.False(t, IsSequence[int]("abc"))
		assert.False(t, IsSequence[int](emptyOnly{}))
		assert.False(t, IsSequence[int](&frontNoProgress{v: 1}))
	})

	t.Run("pull only type is a sequence", func(t *testing.T) {
		s := &pullOnly{elems: []int{1, 2}}
		assert.True(t, IsSequence[int](s))

		caps := Caps[int](s)
		assert.True(t, caps.Has(CapEmpty))
		assert.True(t, caps.Has(CapPull))
		assert.False(t, caps.Has(CapFrontVal))
		assert.False(t, caps.Has(CapAdvance))
	})

	t.Run("interval closure gains pull", func(t *testing.T) {
		r := Ints(3)
		assert.Equal(t, CapEmpty|CapAdvance|CapFrontVal|CapValues, Resolve[int](r).Declared())
		assert.Equal(t, CapEmpty|CapAdvance|CapFrontVal|CapValues|CapPull, Caps[int](r))
	})

	t.Run("slice view closure", func(t *testing.T) {
		s := FromSlice([]int{1})
		assert.True(t, Resolve[int](s).Declared().Has(CapFrontRef))
		assert.True(t, Caps[int](s).Has(CapPull))
	})

	t.Run("element type must match", func(t *testing.T) {
		assert.True(t, IsSequence[int](Ints(3)))
		assert.False(t, IsSequence[string](Ints(3)))
	})

	t.Run("resolution is cached per type", func(t *testing.T) {
		a, b := Ints(1), Ints(2)
		assert.Same(t, Resolve[int](a), Resolve[int](b))
	})

	t.Run("fresh resolutions are logged", func(t *testing.T) {
		var buf bytes.Buffer
		SetLogger(zerolog.New(&buf))
		defer SetLogger(zerolog.Nop())

		assert.True(t, IsSequence[int](&resolveProbe{n: 1}))
		assert.Contains(t, buf.String(), "resolved sequence capabilities")
		assert.Contains(t, buf.String(), "empty|pull")
	})

	t.Run("capability set rendering", func(t *testing.T) {
		assert.Equal(t, "empty|advance", (CapEmpty | CapAdvance).String())
		assert.Equal(t, "", CapSet(0).String())
	})
}

func TestBind(t *testing.T) {
	t.Run("manual iteration", func(t *testing.T) {
		b := Bind[int](Ints(3))
		var got []int
		for !b.Empty() {
			got = append(got, b.Pull())
		}
		assert.Equal(t, []int{0, 1, 2}, got)
	})

	t.Run("non sequence panics", func(t *testing.T) {
		assert.PanicsWithError(t, ErrNotSequence.Error(), func() {
			Bind[int](42)
		})
	})

	t.Run("rebinding returns the same bound", func(t *testing.T) {
		b := Bind[int](Ints(3))
		assert.Same(t, b, Bind[int](b))
	})

	t.Run("missing capabilities panic", func(t *testing.T) {
		b := Bind[int](&pullOnly{elems: []int{1}})
		assert.PanicsWithError(t, ErrMissingFrontVal.Error(), func() {
			b.FrontVal()
		})
		assert.PanicsWithError(t, ErrMissingAdvance.Error(), func() {
			b.Advance()
		})
		assert.PanicsWithError(t, ErrMissingValues.Error(), func() {
			b.Values()
		})
	})
}
