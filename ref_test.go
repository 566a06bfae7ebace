package reactive_test

import (
	"testing"

	"github.com/nodalgraph/reactive"
	"github.com/stretchr/testify/assert"
)

func TestRef(t *testing.T) {
	t.Run("reruns a dependent effect only on an actual value change", func(t *testing.T) {
		sys := reactive.NewSystem()
		count := reactive.NewRefIn(sys, 0)

		runs := 0
		sys.NewEffect(func() {
			count.Value()
			runs++
		})

		count.SetValue(0) // unchanged, no rerun
		assert.Equal(t, 1, runs)

		count.SetValue(1)
		assert.Equal(t, 2, runs)
	})

	t.Run("IsRef recognizes a ref regardless of its type parameter", func(t *testing.T) {
		r := reactive.NewRef("hello")
		assert.True(t, reactive.IsRef(r))
		assert.False(t, reactive.IsRef("hello"))
		assert.False(t, reactive.IsRef(42))
	})

	t.Run("a ref holding a reactive map still tracks mutations through it", func(t *testing.T) {
		sys := reactive.NewSystem()
		inner := sys.NewMap(map[string]any{"n": 1})
		r := reactive.NewRefIn(sys, inner)

		runs := 0
		sys.NewEffect(func() {
			r.Value().Get("n")
			runs++
		})

		inner.Set("n", 2)
		assert.Equal(t, 2, runs)
	})

	t.Run("ToRefs entries read and write through the backing map", func(t *testing.T) {
		sys := reactive.NewSystem()
		m := sys.NewMap(map[string]any{"x": 1, "y": 2})
		refs := reactive.ToRefs(m)

		assert.Equal(t, 1, refs["x"].Value())

		refs["x"].SetValue(10)
		assert.Equal(t, 10, m.Get("x"))

		m.Set("y", 20)
		assert.Equal(t, 20, refs["y"].Value())
	})
}
