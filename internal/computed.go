package internal

// Computed is a lazy, self-invalidating derived value built atop an effect
// with WithLazy, WithComputedClass, and a scheduler that only flips a dirty
// flag (spec §4.5). It never re-subscribes its own readers directly: see
// bridge, which copies the backing effect's raw dependencies onto whichever
// effect is currently reading Get, so that trigger's computed-before-ordinary
// partition (§4.4) is all that is needed to keep chained computeds correct.
type Computed struct {
	sys *System

	value  any
	dirty  bool
	getter func() any
	setter func(any)

	effect *Effect
}

// NewComputed creates a computed backed by getter. setter may be nil, in
// which case writes are rejected with a dev-mode warning (a readonly
// computed, spec §4.5).
func (s *System) NewComputed(getter func() any, setter func(any)) *Computed {
	c := &Computed{
		sys:    s,
		dirty:  true,
		getter: getter,
		setter: setter,
	}

	c.effect = s.NewEffect(func() {
		c.value = c.getter()
	}, WithLazy(), WithComputedClass(), WithScheduler(func(*Effect) {
		c.dirty = true
	}))

	return c
}

// Get returns the current value, recomputing first if dirty, then
// bridge-tracking the reader onto the backing effect's raw dependencies.
func (c *Computed) Get() any {
	if c.dirty {
		c.effect.Run()
		c.dirty = false
	}

	c.bridge()

	return c.value
}

// Set invokes the user-provided setter, or warns and no-ops for a readonly
// computed.
func (c *Computed) Set(v any) {
	if c.setter == nil {
		warnReadonlyWrite(c)
		return
	}
	c.setter(v)
}

func (c *Computed) bridge() {
	reader := c.sys.CurrentEffect()
	if reader == nil || reader == c.effect {
		return
	}

	for _, d := range c.effect.deps {
		if !d.has(reader) {
			d.add(reader)
			reader.deps = append(reader.deps, d)
		}
	}
}
