package internal

import "sync"

// RawOrderedMap is the raw backing store for the key-value container shape
// (spec §4.3) — "Map"-like, arbitrary comparable keys, insertion order
// preserved because Go maps make no iteration-order guarantee and Entries
// must be deterministic to be testable.
type RawOrderedMap struct {
	mu     sync.Mutex
	values map[any]any
	order  []any
}

// NewRawOrderedMap allocates an empty raw ordered map.
func NewRawOrderedMap() *RawOrderedMap {
	return &RawOrderedMap{values: make(map[any]any)}
}

func (r *RawOrderedMap) get(k any) (any, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.values[k]
	return v, ok
}

func (r *RawOrderedMap) size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.values)
}

func (r *RawOrderedMap) set(k, v any) (old any, hadKey bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	old, hadKey = r.values[k]
	if !hadKey {
		r.order = append(r.order, k)
	}
	r.values[k] = v
	return old, hadKey
}

func (r *RawOrderedMap) del(k any) (old any, hadKey bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	old, hadKey = r.values[k]
	if hadKey {
		delete(r.values, k)
		for i, ok := range r.order {
			if ok == k {
				r.order = append(r.order[:i], r.order[i+1:]...)
				break
			}
		}
	}
	return old, hadKey
}

func (r *RawOrderedMap) clear() (hadEntries bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	hadEntries = len(r.values) > 0
	r.values = make(map[any]any)
	r.order = nil
	return hadEntries
}

func (r *RawOrderedMap) orderedKeys() []any {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]any(nil), r.order...)
}

// OrderedMap is the mutable observed proxy over a RawOrderedMap.
type OrderedMap struct {
	sys *System
	raw *RawOrderedMap
}

// ReadonlyOrderedMap is the readonly observed proxy over a RawOrderedMap.
type ReadonlyOrderedMap struct {
	sys *System
	raw *RawOrderedMap
}

func (m *OrderedMap) normKey(k any) any { return m.sys.ToRaw(k) }

// Get tracks GET on (raw, k) and returns the inner value, recursively
// wrapped if compound.
func (m *OrderedMap) Get(k any) any {
	k = m.normKey(k)
	m.sys.Track(m.raw, OpGet, k)
	v, _ := m.raw.get(k)
	return wrapChildRead(m.sys, v, false)
}

// Has tracks HAS on (raw, k).
func (m *OrderedMap) Has(k any) bool {
	k = m.normKey(k)
	m.sys.Track(m.raw, OpHas, k)
	_, ok := m.raw.get(k)
	return ok
}

// Size tracks ITERATE on raw and returns the container's size.
func (m *OrderedMap) Size() int {
	m.sys.Track(m.raw, OpIterate, IterateKey)
	return m.raw.size()
}

// SetEntry triggers ADD if k is new, else SET if v differs from the old
// value, with ref-forward as ObservedMap.Set.
func (m *OrderedMap) SetEntry(k, v any) {
	k = m.normKey(k)

	old, hadKey := m.raw.get(k)
	if hadKey {
		if ref, ok := old.(*Ref); ok {
			if _, isRef := v.(*Ref); !isRef {
				ref.Set(v)
				return
			}
		}
		if rawEqual(old, v) {
			return
		}
	}

	m.raw.set(k, v)

	if !hadKey {
		m.sys.Trigger(m.raw, OpAdd, k, &DebugEvent{NewValue: v, HasNewValue: true})
	} else {
		m.sys.Trigger(m.raw, OpSet, k, &DebugEvent{OldValue: old, HasOldValue: true, NewValue: v, HasNewValue: true})
	}
}

// Delete triggers DELETE on k only when k was present.
func (m *OrderedMap) Delete(k any) bool {
	k = m.normKey(k)
	old, hadKey := m.raw.del(k)
	if !hadKey {
		return false
	}
	m.sys.Trigger(m.raw, OpDelete, k, &DebugEvent{OldValue: old, HasOldValue: true})
	return true
}

// Clear snapshots existence first, triggering CLEAR with no key when the
// container was non-empty.
func (m *OrderedMap) Clear() {
	before := m.raw.orderedKeys()
	hadEntries := m.raw.clear()
	if hadEntries {
		m.sys.Trigger(m.raw, OpClear, nil, &DebugEvent{OldTarget: before, HasOldTarget: true})
	}
}

// ForEach tracks ITERATE and invokes cb(wrappedValue, wrappedKey) for every
// entry in insertion order.
func (m *OrderedMap) ForEach(cb func(value, key any)) {
	m.sys.Track(m.raw, OpIterate, IterateKey)
	for _, k := range m.raw.orderedKeys() {
		v, ok := m.raw.get(k)
		if !ok {
			continue
		}
		cb(wrapChildRead(m.sys, v, false), wrapChildRead(m.sys, k, false))
	}
}

// Keys tracks ITERATE and returns the wrapped keys in insertion order.
func (m *OrderedMap) Keys() []any {
	m.sys.Track(m.raw, OpIterate, IterateKey)
	keys := m.raw.orderedKeys()
	out := make([]any, len(keys))
	for i, k := range keys {
		out[i] = wrapChildRead(m.sys, k, false)
	}
	return out
}

// Values tracks ITERATE and returns the wrapped values in insertion order.
func (m *OrderedMap) Values() []any {
	m.sys.Track(m.raw, OpIterate, IterateKey)
	keys := m.raw.orderedKeys()
	out := make([]any, 0, len(keys))
	for _, k := range keys {
		if v, ok := m.raw.get(k); ok {
			out = append(out, wrapChildRead(m.sys, v, false))
		}
	}
	return out
}

// Entry is a single key/value pair returned by Entries.
type Entry struct {
	Key   any
	Value any
}

// Entries tracks ITERATE and returns wrapped key/value pairs in insertion
// order (both key and value are wrapped, per spec §4.3's pair-yielding
// methods rule).
func (m *OrderedMap) Entries() []Entry {
	m.sys.Track(m.raw, OpIterate, IterateKey)
	keys := m.raw.orderedKeys()
	out := make([]Entry, 0, len(keys))
	for _, k := range keys {
		if v, ok := m.raw.get(k); ok {
			out = append(out, Entry{
				Key:   wrapChildRead(m.sys, k, false),
				Value: wrapChildRead(m.sys, v, false),
			})
		}
	}
	return out
}

// Get, Has, Size, ForEach, Keys, Values, Entries on ReadonlyOrderedMap mirror
// OrderedMap exactly but wrap children readonly; mutating methods are
// guarded by the readonly lock.

func (m *ReadonlyOrderedMap) normKey(k any) any { return m.sys.ToRaw(k) }

func (m *ReadonlyOrderedMap) Get(k any) any {
	k = m.normKey(k)
	m.sys.Track(m.raw, OpGet, k)
	v, _ := m.raw.get(k)
	return wrapChildRead(m.sys, v, true)
}

func (m *ReadonlyOrderedMap) Has(k any) bool {
	k = m.normKey(k)
	m.sys.Track(m.raw, OpHas, k)
	_, ok := m.raw.get(k)
	return ok
}

func (m *ReadonlyOrderedMap) Size() int {
	m.sys.Track(m.raw, OpIterate, IterateKey)
	return m.raw.size()
}

func (m *ReadonlyOrderedMap) ForEach(cb func(value, key any)) {
	m.sys.Track(m.raw, OpIterate, IterateKey)
	for _, k := range m.raw.orderedKeys() {
		v, ok := m.raw.get(k)
		if !ok {
			continue
		}
		cb(wrapChildRead(m.sys, v, true), wrapChildRead(m.sys, k, true))
	}
}

func (m *ReadonlyOrderedMap) Keys() []any {
	m.sys.Track(m.raw, OpIterate, IterateKey)
	keys := m.raw.orderedKeys()
	out := make([]any, len(keys))
	for i, k := range keys {
		out[i] = wrapChildRead(m.sys, k, true)
	}
	return out
}

func (m *ReadonlyOrderedMap) Values() []any {
	m.sys.Track(m.raw, OpIterate, IterateKey)
	keys := m.raw.orderedKeys()
	out := make([]any, 0, len(keys))
	for _, k := range keys {
		if v, ok := m.raw.get(k); ok {
			out = append(out, wrapChildRead(m.sys, v, true))
		}
	}
	return out
}

func (m *ReadonlyOrderedMap) Entries() []Entry {
	m.sys.Track(m.raw, OpIterate, IterateKey)
	keys := m.raw.orderedKeys()
	out := make([]Entry, 0, len(keys))
	for _, k := range keys {
		if v, ok := m.raw.get(k); ok {
			out = append(out, Entry{
				Key:   wrapChildRead(m.sys, k, true),
				Value: wrapChildRead(m.sys, v, true),
			})
		}
	}
	return out
}

// SetEntry guards the write behind the readonly lock; see ReadonlyMap.Set.
func (m *ReadonlyOrderedMap) SetEntry(k, v any) any {
	if m.sys.IsLocked() {
		warnReadonlyViolation(OpSet, m.raw, k)
		return m
	}
	(&OrderedMap{sys: m.sys, raw: m.raw}).SetEntry(k, v)
	return m
}

// Delete guards the delete behind the readonly lock; see ReadonlyMap.Delete.
func (m *ReadonlyOrderedMap) Delete(k any) bool {
	if m.sys.IsLocked() {
		warnReadonlyViolation(OpDelete, m.raw, k)
		return false
	}
	return (&OrderedMap{sys: m.sys, raw: m.raw}).Delete(k)
}

// Clear guards the clear behind the readonly lock; returns the receiver
// otherwise, per the "this" convention of spec §4.3's readonly collection
// guards.
func (m *ReadonlyOrderedMap) Clear() any {
	if m.sys.IsLocked() {
		warnReadonlyViolation(OpClear, m.raw, nil)
		return m
	}
	(&OrderedMap{sys: m.sys, raw: m.raw}).Clear()
	return m
}
