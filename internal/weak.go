package internal

import "sync"

// RawWeakMap / RawWeakSet back the "weak key-value" / "weak set" shapes
// spec §3 lists as observable but never details. Real weak collections
// expose no size, no clear, no forEach, and no iteration (a weakly-held
// member can vanish at any time, so enumerating them is meaningless) — this
// engine mirrors that reduced surface. Go has no weak-map primitive, so
// entries are held strongly until Dispose(raw) is called explicitly, the
// same documented deviation as the main registry (spec Design Notes §9).
type RawWeakMap struct {
	mu     sync.Mutex
	values map[any]any
}

// NewRawWeakMap allocates an empty raw weak map.
func NewRawWeakMap() *RawWeakMap {
	return &RawWeakMap{values: make(map[any]any)}
}

func (r *RawWeakMap) get(k any) (any, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.values[k]
	return v, ok
}

func (r *RawWeakMap) set(k, v any) (old any, hadKey bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	old, hadKey = r.values[k]
	r.values[k] = v
	return old, hadKey
}

func (r *RawWeakMap) del(k any) (old any, hadKey bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	old, hadKey = r.values[k]
	if hadKey {
		delete(r.values, k)
	}
	return old, hadKey
}

// WeakOrderedMap is the mutable observed proxy over a RawWeakMap.
type WeakOrderedMap struct {
	sys *System
	raw *RawWeakMap
}

// ReadonlyWeakOrderedMap is the readonly observed proxy over a RawWeakMap.
type ReadonlyWeakOrderedMap struct {
	sys *System
	raw *RawWeakMap
}

func (m *WeakOrderedMap) normKey(k any) any { return m.sys.ToRaw(k) }

func (m *WeakOrderedMap) Get(k any) any {
	k = m.normKey(k)
	m.sys.Track(m.raw, OpGet, k)
	v, _ := m.raw.get(k)
	return wrapChildRead(m.sys, v, false)
}

func (m *WeakOrderedMap) Has(k any) bool {
	k = m.normKey(k)
	m.sys.Track(m.raw, OpHas, k)
	_, ok := m.raw.get(k)
	return ok
}

func (m *WeakOrderedMap) SetEntry(k, v any) {
	k = m.normKey(k)
	old, hadKey := m.raw.get(k)
	if hadKey && rawEqual(old, v) {
		return
	}
	m.raw.set(k, v)
	if !hadKey {
		m.sys.Trigger(m.raw, OpAdd, k, &DebugEvent{NewValue: v, HasNewValue: true})
	} else {
		m.sys.Trigger(m.raw, OpSet, k, &DebugEvent{OldValue: old, HasOldValue: true, NewValue: v, HasNewValue: true})
	}
}

func (m *WeakOrderedMap) Delete(k any) bool {
	k = m.normKey(k)
	old, hadKey := m.raw.del(k)
	if !hadKey {
		return false
	}
	m.sys.Trigger(m.raw, OpDelete, k, &DebugEvent{OldValue: old, HasOldValue: true})
	return true
}

func (m *ReadonlyWeakOrderedMap) normKey(k any) any { return m.sys.ToRaw(k) }

func (m *ReadonlyWeakOrderedMap) Get(k any) any {
	k = m.normKey(k)
	m.sys.Track(m.raw, OpGet, k)
	v, _ := m.raw.get(k)
	return wrapChildRead(m.sys, v, true)
}

func (m *ReadonlyWeakOrderedMap) Has(k any) bool {
	k = m.normKey(k)
	m.sys.Track(m.raw, OpHas, k)
	_, ok := m.raw.get(k)
	return ok
}

func (m *ReadonlyWeakOrderedMap) SetEntry(k, v any) any {
	if m.sys.IsLocked() {
		warnReadonlyViolation(OpSet, m.raw, k)
		return m
	}
	(&WeakOrderedMap{sys: m.sys, raw: m.raw}).SetEntry(k, v)
	return m
}

func (m *ReadonlyWeakOrderedMap) Delete(k any) bool {
	if m.sys.IsLocked() {
		warnReadonlyViolation(OpDelete, m.raw, k)
		return false
	}
	return (&WeakOrderedMap{sys: m.sys, raw: m.raw}).Delete(k)
}

// RawWeakSet is the raw backing store for the weak-set shape.
type RawWeakSet struct {
	mu     sync.Mutex
	values map[any]struct{}
}

// NewRawWeakSet allocates an empty raw weak set.
func NewRawWeakSet() *RawWeakSet {
	return &RawWeakSet{values: make(map[any]struct{})}
}

func (r *RawWeakSet) has(v any) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.values[v]
	return ok
}

func (r *RawWeakSet) add(v any) (wasPresent bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, wasPresent = r.values[v]
	r.values[v] = struct{}{}
	return wasPresent
}

func (r *RawWeakSet) del(v any) (hadValue bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, hadValue = r.values[v]
	delete(r.values, v)
	return hadValue
}

// WeakSet is the mutable observed proxy over a RawWeakSet.
type WeakSet struct {
	sys *System
	raw *RawWeakSet
}

// ReadonlyWeakSet is the readonly observed proxy over a RawWeakSet.
type ReadonlyWeakSet struct {
	sys *System
	raw *RawWeakSet
}

func (s *WeakSet) Has(v any) bool {
	v = s.sys.ToRaw(v)
	s.sys.Track(s.raw, OpHas, v)
	return s.raw.has(v)
}

func (s *WeakSet) Add(v any) {
	v = s.sys.ToRaw(v)
	if s.raw.add(v) {
		return
	}
	s.sys.Trigger(s.raw, OpAdd, v, &DebugEvent{NewValue: v, HasNewValue: true})
}

func (s *WeakSet) Delete(v any) bool {
	v = s.sys.ToRaw(v)
	if !s.raw.del(v) {
		return false
	}
	s.sys.Trigger(s.raw, OpDelete, v, &DebugEvent{OldValue: v, HasOldValue: true})
	return true
}

func (s *ReadonlyWeakSet) Has(v any) bool {
	v = s.sys.ToRaw(v)
	s.sys.Track(s.raw, OpHas, v)
	return s.raw.has(v)
}

func (s *ReadonlyWeakSet) Add(v any) any {
	if s.sys.IsLocked() {
		warnReadonlyViolation(OpAdd, s.raw, v)
		return s
	}
	(&WeakSet{sys: s.sys, raw: s.raw}).Add(v)
	return s
}

func (s *ReadonlyWeakSet) Delete(v any) bool {
	if s.sys.IsLocked() {
		warnReadonlyViolation(OpDelete, s.raw, v)
		return false
	}
	return (&WeakSet{sys: s.sys, raw: s.raw}).Delete(v)
}
