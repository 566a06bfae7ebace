package reactive_test

import (
	"testing"

	"github.com/nodalgraph/reactive"
	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	t.Run("adding a read key reruns the effect, writing an unread key does not", func(t *testing.T) {
		sys := reactive.NewSystem()
		m := sys.NewMap(map[string]any{"a": 1})

		var seenKeys []string
		sys.NewEffect(func() {
			m.Get("b")
			seenKeys = append(seenKeys, "tracked-b")
		})

		m.Set("b", 2) // new key: ADD, observed by the GET("b") dependent
		assert.Equal(t, []string{"tracked-b", "tracked-b"}, seenKeys)

		m.Set("a", 5) // not tracked by this effect
		assert.Equal(t, []string{"tracked-b", "tracked-b"}, seenKeys)
	})

	t.Run("delete only triggers when the key existed", func(t *testing.T) {
		sys := reactive.NewSystem()
		m := sys.NewMap(map[string]any{"a": 1})

		assert.False(t, m.Delete("missing"))
		assert.True(t, m.Delete("a"))
		assert.False(t, m.Has("a"))
	})

	t.Run("readonly lock: engaged warns/no-ops, disengaged forwards", func(t *testing.T) {
		sys := reactive.NewSystem()
		m := sys.NewMap(map[string]any{"a": 1})
		ro := m.Readonly()

		sys.Lock()
		ro.Set("a", 99)
		assert.Equal(t, 1, m.Get("a"))

		sys.Unlock()
		ro.Set("a", 99)
		assert.Equal(t, 99, m.Get("a"))
	})

	t.Run("iterating over keys tracks ITERATE, so adding a key reruns it", func(t *testing.T) {
		sys := reactive.NewSystem()
		m := sys.NewMap(map[string]any{"a": 1})

		runs := 0
		sys.NewEffect(func() {
			m.Keys()
			runs++
		})

		m.Set("b", 2)
		assert.Equal(t, 2, runs)
	})
}

func TestSlice(t *testing.T) {
	t.Run("push triggers both the new index and length observers", func(t *testing.T) {
		sys := reactive.NewSystem()
		s := sys.NewSlice([]any{1, 2})

		lenRuns := 0
		sys.NewEffect(func() {
			s.Len()
			lenRuns++
		})

		s.Push(3)
		assert.Equal(t, 2, lenRuns)
		assert.Equal(t, 3, s.Len())
	})

	t.Run("deleteAt reports existence", func(t *testing.T) {
		sys := reactive.NewSystem()
		s := sys.NewSlice([]any{1, 2, 3})

		assert.True(t, s.DeleteAt(1))
		assert.Equal(t, []any{1, 3}, s.Values())
		assert.False(t, s.DeleteAt(99))
	})
}

func TestOrderedMap(t *testing.T) {
	t.Run("clear triggers once for all entries, only when non-empty", func(t *testing.T) {
		sys := reactive.NewSystem()
		m := sys.NewOrderedMap()
		m.SetEntry("a", 1)
		m.SetEntry("b", 2)

		runs := 0
		sys.NewEffect(func() {
			m.Size()
			runs++
		})

		m.Clear()
		assert.Equal(t, 2, runs)
		assert.Equal(t, 0, m.Size())

		m.Clear() // already empty: no additional trigger
		assert.Equal(t, 2, runs)
	})

	t.Run("entries preserve insertion order", func(t *testing.T) {
		sys := reactive.NewSystem()
		m := sys.NewOrderedMap()
		m.SetEntry("z", 1)
		m.SetEntry("a", 2)

		entries := m.Entries()
		assert.Equal(t, []reactive.Entry{{Key: "z", Value: 1}, {Key: "a", Value: 2}}, entries)
	})
}

func TestCollectionSet(t *testing.T) {
	t.Run("add only triggers for a new member", func(t *testing.T) {
		sys := reactive.NewSystem()
		s := sys.NewCollectionSet()
		s.Add("x")

		runs := 0
		sys.NewEffect(func() {
			s.Size()
			runs++
		})

		s.Add("x") // already present
		assert.Equal(t, 1, runs)

		s.Add("y")
		assert.Equal(t, 2, runs)
	})
}

func TestWeakCollections(t *testing.T) {
	t.Run("weak map supports get/has/set/delete but no iteration surface", func(t *testing.T) {
		sys := reactive.NewSystem()
		wm := sys.NewWeakMap()

		key := sys.NewMap(map[string]any{})
		wm.SetEntry(key, "value")

		assert.True(t, wm.Has(key))
		assert.Equal(t, "value", wm.Get(key))
		assert.True(t, wm.Delete(key))
		assert.False(t, wm.Has(key))
	})

	t.Run("weak set supports has/add/delete only", func(t *testing.T) {
		sys := reactive.NewSystem()
		ws := sys.NewWeakSet()

		member := sys.NewMap(map[string]any{})
		ws.Add(member)
		assert.True(t, ws.Has(member))
		assert.True(t, ws.Delete(member))
	})
}
