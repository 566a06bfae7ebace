package reactive

import "github.com/nodalgraph/reactive/internal"

// refLike is implemented by every *Ref[T] regardless of T, letting IsRef and
// container interceptors recognize a ref without knowing its type parameter.
type refLike interface {
	internalRef() *internal.Ref
}

// Ref is a single reactive value slot (spec §4.1/§4.5). A compound value
// stored in a Ref is itself converted via Reactive, so nested mutation
// through a ref's current value is still tracked.
type Ref[T any] struct {
	r *internal.Ref
}

// NewRef allocates a ref holding initial on the calling goroutine's default
// system.
func NewRef[T any](initial T) *Ref[T] {
	return &Ref[T]{r: defaultSystem().NewRef(initial)}
}

// NewRefIn is System's instance-scoped equivalent of the package-level
// NewRef.
func NewRefIn[T any](s *System, initial T) *Ref[T] {
	return &Ref[T]{r: s.sys.NewRef(initial)}
}

// Value reads the current value, tracking a GET against the calling effect.
func (r *Ref[T]) Value() T { return as[T](r.r.Get()) }

// SetValue writes v, triggering dependents iff the value actually changed.
func (r *Ref[T]) SetValue(v T) { r.r.Set(v) }

func (r *Ref[T]) internalRef() *internal.Ref { return r.r }

// IsRef reports whether x is a *Ref[T] for some T.
func IsRef(x any) bool {
	_, ok := x.(refLike)
	return ok
}

// ProxyRef is the ref-shaped view over a single key of a Map, returned by
// ToRefs; reading/writing it reads/writes through to the underlying map
// entry (spec §4.5's "ref forwarding" companion operation).
type ProxyRef struct {
	p *internal.ProxyRef
}

// Value reads the backing map entry.
func (p *ProxyRef) Value() any { return p.p.Get() }

// SetValue writes the backing map entry.
func (p *ProxyRef) SetValue(v any) { p.p.Set(v) }

// ToRefs returns a sibling map of proxy refs over m's current keys, so that
// destructuring m's entries does not lose reactivity (spec §4.5).
func ToRefs(m *Map) map[string]*ProxyRef {
	out := make(map[string]*ProxyRef)
	for k, p := range m.sys.ToRefs(m.m) {
		out[k] = &ProxyRef{p: p}
	}
	return out
}
