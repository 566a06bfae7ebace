package reactive

import "github.com/nodalgraph/reactive/internal"

// Computed is a lazy, self-invalidating derived value (spec §4.5): reading
// Value recomputes only if a dependency has changed since the last read, and
// reading Value from within another effect's run makes that effect a
// dependent of every cell the computed itself depends on, transitively.
type Computed[T any] struct {
	c *internal.Computed
}

// NewComputed creates a readonly computed backed by getter: writes to
// Value are rejected with a dev-mode warning.
func NewComputed[T any](getter func() T) *Computed[T] {
	return newComputedOn[T](defaultSystem(), getter, nil)
}

// NewComputedIn is System's instance-scoped equivalent of the package-level
// NewComputed.
func NewComputedIn[T any](s *System, getter func() T) *Computed[T] {
	return newComputedOn[T](s.sys, getter, nil)
}

// NewWritableComputed creates a computed with both a getter and a setter;
// writes to Value invoke setter instead of being rejected.
func NewWritableComputed[T any](getter func() T, setter func(T)) *Computed[T] {
	return newComputedOn[T](defaultSystem(), getter, setter)
}

// NewWritableComputedIn is System's instance-scoped equivalent of the
// package-level NewWritableComputed.
func NewWritableComputedIn[T any](s *System, getter func() T, setter func(T)) *Computed[T] {
	return newComputedOn[T](s.sys, getter, setter)
}

func newComputedOn[T any](sys *internal.System, getter func() T, setter func(T)) *Computed[T] {
	var internalSetter func(any)
	if setter != nil {
		internalSetter = func(v any) { setter(as[T](v)) }
	}
	return &Computed[T]{
		c: sys.NewComputed(func() any { return getter() }, internalSetter),
	}
}

// Value returns the current value, recomputing first if a dependency
// changed since the last read.
func (c *Computed[T]) Value() T { return as[T](c.c.Get()) }

// SetValue invokes the computed's setter, or warns and no-ops if it is
// readonly (no setter was provided).
func (c *Computed[T]) SetValue(v T) { c.c.Set(v) }
