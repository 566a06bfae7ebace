package internal

import "sync"

// RawMap is the raw backing store for the "plain object" shape (spec §4.2).
// It is the identity both ObservedMap and ReadonlyMap wrap, so that a
// mutable and a readonly view of the same raw data share one targetMap
// entry, per the raw/observed bijection invariant (spec §3).
type RawMap struct {
	mu     sync.Mutex
	values map[string]any
}

// NewRawMap allocates a raw map seeded with initial (copied, not aliased).
func NewRawMap(initial map[string]any) *RawMap {
	values := make(map[string]any, len(initial))
	for k, v := range initial {
		values[k] = v
	}
	return &RawMap{values: values}
}

func (r *RawMap) get(k string) (any, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.values[k]
	return v, ok
}

func (r *RawMap) set(k string, v any) (old any, hadKey bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	old, hadKey = r.values[k]
	r.values[k] = v
	return old, hadKey
}

func (r *RawMap) del(k string) (old any, hadKey bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	old, hadKey = r.values[k]
	if hadKey {
		delete(r.values, k)
	}
	return old, hadKey
}

func (r *RawMap) keys() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.values))
	for k := range r.values {
		out = append(out, k)
	}
	return out
}

// ObservedMap is the mutable observed proxy over a RawMap.
type ObservedMap struct {
	sys *System
	raw *RawMap
}

// ReadonlyMap is the readonly observed proxy over a RawMap.
type ReadonlyMap struct {
	sys *System
	raw *RawMap
}

// Get reads key, tracking GET, recursively wrapping compound children via
// Reactive and unwrapping ref children to their current value.
func (m *ObservedMap) Get(key string) any {
	m.sys.Track(m.raw, OpGet, key)
	v, _ := m.raw.get(key)
	return wrapChildRead(m.sys, v, false)
}

// Set writes key, triggering ADD for a new key or SET for a changed existing
// key (identity compare), with ref-forward: if the old value at key is a
// Ref and the new value is not, the write is forwarded into the ref instead
// of replacing the outer key.
func (m *ObservedMap) Set(key string, value any) {
	old, hadKey := m.raw.get(key)

	if ref, ok := old.(*Ref); ok {
		if _, isRef := value.(*Ref); !isRef {
			ref.Set(value)
			return
		}
	}

	if hadKey && rawEqual(old, value) {
		return
	}

	m.raw.set(key, value)

	if !hadKey {
		m.sys.Trigger(m.raw, OpAdd, key, &DebugEvent{NewValue: value, HasNewValue: true})
	} else {
		m.sys.Trigger(m.raw, OpSet, key, &DebugEvent{OldValue: old, HasOldValue: true, NewValue: value, HasNewValue: true})
	}
}

// Has tests key presence, tracking HAS.
func (m *ObservedMap) Has(key string) bool {
	m.sys.Track(m.raw, OpHas, key)
	_, ok := m.raw.get(key)
	return ok
}

// Delete removes key, triggering DELETE iff it existed.
func (m *ObservedMap) Delete(key string) bool {
	old, hadKey := m.raw.del(key)
	if !hadKey {
		return false
	}
	m.sys.Trigger(m.raw, OpDelete, key, &DebugEvent{OldValue: old, HasOldValue: true})
	return true
}

// RawKeys enumerates keys, tracking ITERATE.
func (m *ObservedMap) RawKeys() []string {
	m.sys.Track(m.raw, OpIterate, IterateKey)
	return m.raw.keys()
}

// Get reads key without ever triggering a mutation; children are wrapped
// readonly.
func (m *ReadonlyMap) Get(key string) any {
	m.sys.Track(m.raw, OpGet, key)
	v, _ := m.raw.get(key)
	return wrapChildRead(m.sys, v, true)
}

// Has tests key presence, tracking HAS.
func (m *ReadonlyMap) Has(key string) bool {
	m.sys.Track(m.raw, OpHas, key)
	_, ok := m.raw.get(key)
	return ok
}

// RawKeys enumerates keys, tracking ITERATE.
func (m *ReadonlyMap) RawKeys() []string {
	m.sys.Track(m.raw, OpIterate, IterateKey)
	return m.raw.keys()
}

// Set guards the write behind the readonly lock (spec §4.3/§6/§7): while
// engaged it warns and no-ops, returning true (a "success-looking" value);
// while disengaged it forwards to the mutable implementation sharing the
// same raw store.
func (m *ReadonlyMap) Set(key string, value any) bool {
	if m.sys.IsLocked() {
		warnReadonlyViolation(OpSet, m.raw, key)
		return true
	}
	(&ObservedMap{sys: m.sys, raw: m.raw}).Set(key, value)
	return true
}

// Delete guards the delete behind the readonly lock; see Set.
func (m *ReadonlyMap) Delete(key string) bool {
	if m.sys.IsLocked() {
		warnReadonlyViolation(OpDelete, m.raw, key)
		return false
	}
	return (&ObservedMap{sys: m.sys, raw: m.raw}).Delete(key)
}

// wrapChildRead applies recursive wrapping + ref-unwrap on a value read out
// of a container.
func wrapChildRead(sys *System, v any, readonly bool) any {
	if ref, ok := v.(*Ref); ok {
		return ref.Get()
	}
	if isCompoundRawShape(v) {
		if readonly {
			return sys.Readonly(v)
		}
		return sys.Reactive(v)
	}
	return v
}
