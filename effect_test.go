package reactive_test

import (
	"fmt"
	"testing"

	"github.com/nodalgraph/reactive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffect(t *testing.T) {
	t.Run("runs immediately and reruns on tracked write", func(t *testing.T) {
		sys := reactive.NewSystem()
		m := sys.NewMap(map[string]any{"count": 0})

		var log []string
		sys.NewEffect(func() {
			log = append(log, fmt.Sprintf("ran %v", m.Get("count")))
		})

		m.Set("count", 1)
		m.Set("count", 2)

		assert.Equal(t, []string{"ran 0", "ran 1", "ran 2"}, log)
	})

	t.Run("does not rerun on a write to an untracked key", func(t *testing.T) {
		sys := reactive.NewSystem()
		m := sys.NewMap(map[string]any{"a": 1, "b": 1})

		runs := 0
		sys.NewEffect(func() {
			m.Get("a")
			runs++
		})

		m.Set("b", 2)

		assert.Equal(t, 1, runs)
	})

	t.Run("re-derives its dependency set on every run", func(t *testing.T) {
		sys := reactive.NewSystem()
		m := sys.NewMap(map[string]any{"branch": "x", "x": 1, "y": 2})

		runs := 0
		sys.NewEffect(func() {
			branch := m.Get("branch").(string)
			m.Get(branch)
			runs++
		})
		require.Equal(t, 1, runs)

		m.Set("branch", "y")
		require.Equal(t, 2, runs)

		// now only "y" is tracked; a write to "x" must not rerun the effect.
		m.Set("x", 100)
		assert.Equal(t, 2, runs)

		m.Set("y", 200)
		assert.Equal(t, 3, runs)
	})

	t.Run("stop prevents further reruns", func(t *testing.T) {
		sys := reactive.NewSystem()
		m := sys.NewMap(map[string]any{"count": 0})

		runs := 0
		e := sys.NewEffect(func() {
			m.Get("count")
			runs++
		})

		e.Stop()
		m.Set("count", 1)

		assert.Equal(t, 1, runs)
		assert.False(t, e.Active())
	})

	t.Run("lazy effect neither runs nor tracks before its first explicit run", func(t *testing.T) {
		sys := reactive.NewSystem()
		m := sys.NewMap(map[string]any{"count": 0})

		runs := 0
		sys.NewEffect(func() {
			m.Get("count")
			runs++
		}, reactive.WithLazy())

		assert.Equal(t, 0, runs)

		m.Set("count", 1) // nothing was tracked, so nothing is triggered
		assert.Equal(t, 0, runs)
	})

	t.Run("self-writing effect does not recurse unboundedly", func(t *testing.T) {
		sys := reactive.NewSystem()
		m := sys.NewMap(map[string]any{"count": 0})

		runs := 0
		sys.NewEffect(func() {
			n := m.Get("count").(int)
			runs++
			if n < 3 {
				m.Set("count", n+1)
			}
		})

		assert.Equal(t, 4, runs)
		assert.Equal(t, 3, m.Get("count"))
	})

	t.Run("pause/resume tracking suspends dependency collection", func(t *testing.T) {
		sys := reactive.NewSystem()
		m := sys.NewMap(map[string]any{"count": 0})

		runs := 0
		sys.NewEffect(func() {
			sys.PauseTracking()
			m.Get("count")
			sys.ResumeTracking()
			runs++
		})

		m.Set("count", 1)
		assert.Equal(t, 1, runs)
	})
}
