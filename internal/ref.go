package internal

// refKeyType is the sentinel key a Ref tracks/triggers itself under — the
// spec's "sentinel key \"\"".
type refKeyType struct{}

var refKey any = refKeyType{}

// Ref is a single-slot reactive box. It participates in the same dep
// registry as every other raw target: it is tracked/triggered against
// itself, keyed by refKey.
type Ref struct {
	sys   *System
	value any
}

// NewRef allocates a ref holding initial. Compound raw shapes are
// recursively converted via Reactive; primitives are stored as-is.
func (s *System) NewRef(initial any) *Ref {
	r := &Ref{sys: s}
	r.store(initial)
	return r
}

func (r *Ref) store(v any) {
	if isCompoundRawShape(v) {
		v = r.sys.Reactive(v)
	}
	r.value = v
}

// Get reads the current value, tracking GET on the ref with the sentinel key.
func (r *Ref) Get() any {
	r.sys.Track(r, OpGet, refKey)
	return r.value
}

// Set writes v, triggering SET on the ref with the sentinel key if the value
// actually changed (identity/value compare).
func (r *Ref) Set(v any) {
	old := r.value
	r.store(v)

	if !rawEqual(old, r.value) {
		r.sys.Trigger(r, OpSet, refKey, &DebugEvent{OldValue: old, HasOldValue: true, NewValue: r.value, HasNewValue: true})
	}
}

func rawEqual(a, b any) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	return a == b
}

// ProxyRef is a ref-shaped wrapper over a single key of an ObservedMap: it
// reads/writes through to the underlying key without any tracking of its
// own, since tracking already happens through the map's interceptors. This
// backs ToRefs.
type ProxyRef struct {
	container *ObservedMap
	key       string
}

// Get reads the backing map entry.
func (p *ProxyRef) Get() any {
	return p.container.Get(p.key)
}

// Set writes the backing map entry.
func (p *ProxyRef) Set(v any) {
	p.container.Set(p.key, v)
}

// ToRefs returns a sibling map of proxy refs over m's current keys.
func (s *System) ToRefs(m *ObservedMap) map[string]*ProxyRef {
	out := make(map[string]*ProxyRef)
	for _, k := range m.RawKeys() {
		out[k] = &ProxyRef{container: m, key: k}
	}
	return out
}
