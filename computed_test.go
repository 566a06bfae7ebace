package reactive_test

import (
	"fmt"
	"testing"

	"github.com/nodalgraph/reactive"
	"github.com/stretchr/testify/assert"
)

func TestComputed(t *testing.T) {
	t.Run("memoizes until a dependency changes", func(t *testing.T) {
		sys := reactive.NewSystem()
		m := sys.NewMap(map[string]any{"count": 0})

		evaluations := 0
		double := reactive.NewComputedIn(sys, func() int {
			evaluations++
			return m.Get("count").(int) * 2
		})

		assert.Equal(t, 0, double.Value())
		assert.Equal(t, 0, double.Value())
		assert.Equal(t, 1, evaluations)

		m.Set("count", 5)
		assert.Equal(t, 10, double.Value())
		assert.Equal(t, 2, evaluations)
	})

	t.Run("writable computed forwards SetValue to its setter", func(t *testing.T) {
		sys := reactive.NewSystem()
		m := sys.NewMap(map[string]any{"count": 1})

		c := reactive.NewWritableComputedIn(sys,
			func() int { return m.Get("count").(int) },
			func(v int) { m.Set("count", v) },
		)

		assert.Equal(t, 1, c.Value())
		c.SetValue(9)
		assert.Equal(t, 9, c.Value())
		assert.Equal(t, 9, m.Get("count"))
	})

	t.Run("a readonly computed ignores SetValue", func(t *testing.T) {
		sys := reactive.NewSystem()
		m := sys.NewMap(map[string]any{"count": 1})

		c := reactive.NewComputedIn(sys, func() int { return m.Get("count").(int) })
		c.SetValue(99)

		assert.Equal(t, 1, c.Value())
	})

	t.Run("computed chain propagates and recomputes in order", func(t *testing.T) {
		sys := reactive.NewSystem()
		m := sys.NewMap(map[string]any{"count": 1})

		a := reactive.NewComputedIn(sys, func() int { return m.Get("count").(int) * 2 })
		b := reactive.NewComputedIn(sys, func() int { return a.Value() * 2 })

		var log []string
		sys.NewEffect(func() {
			log = append(log, fmt.Sprintf("b=%d", b.Value()))
		})

		m.Set("count", 2)

		assert.Equal(t, []string{"b=4", "b=8"}, log)
	})

	t.Run("computed effects fire before ordinary effects on the same trigger", func(t *testing.T) {
		sys := reactive.NewSystem()
		m := sys.NewMap(map[string]any{"count": 1})

		doubled := reactive.NewComputedIn(sys, func() int { return m.Get("count").(int) * 2 })

		var log []string
		sys.NewEffect(func() {
			log = append(log, fmt.Sprintf("computed=%d", doubled.Value()))
		})
		sys.NewEffect(func() {
			log = append(log, fmt.Sprintf("raw=%d", m.Get("count")))
		})

		log = nil
		m.Set("count", 5)

		assert.Equal(t, []string{"computed=10", "raw=5"}, log)
	})
}
