// Package reactive is a fine-grained reactivity engine: application code
// expresses computations (effects) whose re-execution is automatically
// scheduled when any mutable data they previously read is later mutated.
//
// Go has no generic proxy-trap facility, so observation is transparent only
// over the handful of "observable shapes" this package defines explicitly
// (RawMap, RawSlice, RawOrderedMap, RawSet, RawWeakMap, RawWeakSet) rather
// than over arbitrary user structs — see SPEC_FULL.md for the reasoning.
// Everything else — the dependency graph, the effect runtime, computed's
// lazy/dirty protocol, the readonly lock — behaves exactly as in a
// proxy-based port.
package reactive

import "github.com/nodalgraph/reactive/internal"

// as does a checked type assertion, returning the zero value for a nil any
// instead of panicking — mirrors the teacher's root-package helper of the
// same name.
func as[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}
	return v.(T)
}

// System holds an independent reactivity system: its own targetMap, raw↔
// observed registries, active-effect stack, and readonly lock. Most callers
// never need one explicitly — the package-level functions operate on the
// calling goroutine's default system (DefaultSystem) — but tests that want
// isolation from other tests running concurrently should create their own.
type System struct {
	sys *internal.System
}

// NewSystem allocates an independent reactivity system.
func NewSystem() *System {
	return &System{sys: internal.NewSystem()}
}

func defaultSystem() *internal.System {
	return internal.DefaultSystem()
}

// Reactive wraps target in a mutable observed proxy, or returns it unchanged
// per the rules of spec §4.1 (already readonly, already mutable, opted out,
// not observable, ...). target may be a raw shape (RawMap, RawSlice, ...) or
// an already-wrapped proxy, mutable or readonly.
func Reactive(target any) any { return reactiveOn(defaultSystem(), target) }

// Reactive is System's instance-scoped equivalent of the package-level
// Reactive.
func (s *System) Reactive(target any) any { return reactiveOn(s.sys, target) }

// Readonly wraps target in a readonly observed proxy.
func Readonly(target any) any { return readonlyOn(defaultSystem(), target) }

// Readonly is System's instance-scoped equivalent of the package-level
// Readonly.
func (s *System) Readonly(target any) any { return readonlyOn(s.sys, target) }

// ToRaw returns the raw value behind a mutable or readonly proxy, or x
// unchanged if x is not a proxy.
func ToRaw(x any) any { return defaultSystem().ToRaw(resolveProxy(x)) }

// ToRaw is System's instance-scoped equivalent of the package-level ToRaw.
func (s *System) ToRaw(x any) any { return s.sys.ToRaw(resolveProxy(x)) }

// IsReactive reports whether x is a mutable observed proxy.
func IsReactive(x any) bool { return defaultSystem().IsReactive(resolveProxy(x)) }

// IsReactive is System's instance-scoped equivalent.
func (s *System) IsReactive(x any) bool { return s.sys.IsReactive(resolveProxy(x)) }

// IsReadonly reports whether x is a readonly observed proxy.
func IsReadonly(x any) bool { return defaultSystem().IsReadonly(resolveProxy(x)) }

// IsReadonly is System's instance-scoped equivalent.
func (s *System) IsReadonly(x any) bool { return s.sys.IsReadonly(resolveProxy(x)) }

// MarkReadonly opts raw into always resolving to a readonly proxy when
// passed to Reactive, and returns raw unchanged.
func MarkReadonly(raw any) any { return defaultSystem().MarkReadonly(resolveRaw(raw)) }

// MarkReadonly is System's instance-scoped equivalent.
func (s *System) MarkReadonly(raw any) any { return s.sys.MarkReadonly(resolveRaw(raw)) }

// MarkNonReactive opts raw out of observation entirely: Reactive/Readonly
// return it unchanged.
func MarkNonReactive(raw any) any { return defaultSystem().MarkNonReactive(resolveRaw(raw)) }

// MarkNonReactive is System's instance-scoped equivalent.
func (s *System) MarkNonReactive(raw any) any { return s.sys.MarkNonReactive(resolveRaw(raw)) }

// Dispose removes raw from every registry, letting it (and its dependency
// entries) be garbage collected. Go has no identity-keyed weak map, so
// without an explicit Dispose call a registered raw root is retained for
// the life of its System (Design Notes §9).
func Dispose(raw any) { defaultSystem().Dispose(resolveRaw(raw)) }

// Dispose is System's instance-scoped equivalent.
func (s *System) Dispose(raw any) { s.sys.Dispose(resolveRaw(raw)) }

// IsDisposed reports whether raw was previously passed to Dispose.
func IsDisposed(raw any) bool { return defaultSystem().IsDisposed(resolveRaw(raw)) }

// IsDisposed is System's instance-scoped equivalent.
func (s *System) IsDisposed(raw any) bool { return s.sys.IsDisposed(resolveRaw(raw)) }
