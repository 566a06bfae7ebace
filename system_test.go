package reactive_test

import (
	"testing"

	"github.com/nodalgraph/reactive"
	"github.com/stretchr/testify/assert"
)

func TestSystemIsolation(t *testing.T) {
	t.Run("two systems track independently", func(t *testing.T) {
		a := reactive.NewSystem()
		b := reactive.NewSystem()

		ma := a.NewMap(map[string]any{"count": 0})
		mb := b.NewMap(map[string]any{"count": 0})

		runsA, runsB := 0, 0
		a.NewEffect(func() { ma.Get("count"); runsA++ })
		b.NewEffect(func() { mb.Get("count"); runsB++ })

		ma.Set("count", 1)
		assert.Equal(t, 2, runsA)
		assert.Equal(t, 1, runsB)
	})

	t.Run("dispose drops a raw target from its registry", func(t *testing.T) {
		sys := reactive.NewSystem()
		m := sys.NewMap(map[string]any{"count": 0})

		assert.False(t, sys.IsDisposed(m))
		sys.Dispose(m)
		assert.True(t, sys.IsDisposed(m))
	})
}

func TestDevHooks(t *testing.T) {
	t.Run("onTrack and onTrigger fire with the expected op", func(t *testing.T) {
		reactive.EnableDevMode()
		defer reactive.DisableDevMode()

		sys := reactive.NewSystem()
		m := sys.NewMap(map[string]any{"count": 0})

		var tracked, triggered []reactive.Op
		sys.NewEffect(func() {
			m.Get("count")
		}, reactive.WithOnTrack(func(ev reactive.DebugEvent) {
			tracked = append(tracked, ev.Type)
		}), reactive.WithOnTrigger(func(ev reactive.DebugEvent) {
			triggered = append(triggered, ev.Type)
		}))

		m.Set("count", 1)

		// the rerun clears its deps first, so its read re-links and fires onTrack again
		assert.Equal(t, []reactive.Op{reactive.OpGet, reactive.OpGet}, tracked)
		assert.Equal(t, []reactive.Op{reactive.OpSet}, triggered)
	})
}
