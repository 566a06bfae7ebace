package reactive

import "github.com/nodalgraph/reactive/internal"

func lift(sys *internal.System, v any) any { return wrapProxy(sys, v) }

func liftSlice(sys *internal.System, vs []any) []any {
	out := make([]any, len(vs))
	for i, v := range vs {
		out[i] = wrapProxy(sys, v)
	}
	return out
}

func liftEntries(sys *internal.System, es []Entry) []Entry {
	out := make([]Entry, len(es))
	for i, e := range es {
		out[i] = Entry{Key: wrapProxy(sys, e.Key), Value: wrapProxy(sys, e.Value)}
	}
	return out
}

// Map is the mutable observed proxy over a plain key/value object (spec
// §4.2), keyed by string.
type Map struct {
	sys *internal.System
	raw *internal.RawMap
	m   *internal.ObservedMap
}

// ReadonlyMap is the readonly observed proxy over the same raw store as a
// Map obtained from the same initial value.
type ReadonlyMap struct {
	sys *internal.System
	raw *internal.RawMap
	m   *internal.ReadonlyMap
}

func (m *Map) rawTarget() any         { return m.raw }
func (m *Map) proxyTarget() any       { return m.m }
func (m *ReadonlyMap) rawTarget() any   { return m.raw }
func (m *ReadonlyMap) proxyTarget() any { return m.m }

// NewMap allocates a fresh plain object seeded with initial (copied) and
// wraps it mutably on the calling goroutine's default system.
func NewMap(initial map[string]any) *Map {
	return newMapOn(defaultSystem(), initial)
}

// NewMap is System's instance-scoped equivalent of the package-level NewMap.
func (s *System) NewMap(initial map[string]any) *Map {
	return newMapOn(s.sys, initial)
}

func newMapOn(sys *internal.System, initial map[string]any) *Map {
	return reactiveOn(sys, internal.NewRawMap(initial)).(*Map)
}

// Readonly returns the readonly view of the same raw store as m.
func (m *Map) Readonly() *ReadonlyMap { return readonlyOn(m.sys, m.raw).(*ReadonlyMap) }

// Get reads key, tracking GET, recursively wrapping compound children.
func (m *Map) Get(key string) any { return lift(m.sys, m.m.Get(key)) }

// Set writes key, triggering ADD for a new key or SET for a changed value,
// forwarding into an existing ref at key instead of replacing it.
func (m *Map) Set(key string, value any) { m.m.Set(key, resolveProxy(value)) }

// Has tests key presence, tracking HAS.
func (m *Map) Has(key string) bool { return m.m.Has(key) }

// Delete removes key, triggering DELETE iff it existed.
func (m *Map) Delete(key string) bool { return m.m.Delete(key) }

// Keys enumerates keys, tracking ITERATE.
func (m *Map) Keys() []string { return m.m.RawKeys() }

// Get reads key without ever triggering a mutation; children wrap readonly.
func (m *ReadonlyMap) Get(key string) any { return lift(m.sys, m.m.Get(key)) }

// Has tests key presence, tracking HAS.
func (m *ReadonlyMap) Has(key string) bool { return m.m.Has(key) }

// Keys enumerates keys, tracking ITERATE.
func (m *ReadonlyMap) Keys() []string { return m.m.RawKeys() }

// Set guards the write behind the readonly lock (spec §7): while engaged it
// warns and no-ops; while disengaged it forwards to the mutable view sharing
// the same raw store.
func (m *ReadonlyMap) Set(key string, value any) bool { return m.m.Set(key, resolveProxy(value)) }

// Delete guards the delete behind the readonly lock; see Set.
func (m *ReadonlyMap) Delete(key string) bool { return m.m.Delete(key) }

// Slice is the mutable observed proxy over an ordered sequence (spec
// §4.2), whose add/delete also trigger "length" observers.
type Slice struct {
	sys *internal.System
	raw *internal.RawSlice
	s   *internal.ObservedSlice
}

// ReadonlySlice is the readonly observed proxy over the same raw store as a
// Slice.
type ReadonlySlice struct {
	sys *internal.System
	raw *internal.RawSlice
	s   *internal.ReadonlySlice
}

func (s *Slice) rawTarget() any           { return s.raw }
func (s *Slice) proxyTarget() any         { return s.s }
func (s *ReadonlySlice) rawTarget() any   { return s.raw }
func (s *ReadonlySlice) proxyTarget() any { return s.s }

// NewSlice allocates a fresh ordered sequence seeded with a copy of initial.
func NewSlice(initial []any) *Slice { return newSliceOn(defaultSystem(), initial) }

// NewSlice is System's instance-scoped equivalent of the package-level
// NewSlice.
func (s *System) NewSlice(initial []any) *Slice { return newSliceOn(s.sys, initial) }

func newSliceOn(sys *internal.System, initial []any) *Slice {
	return reactiveOn(sys, internal.NewRawSlice(initial)).(*Slice)
}

// Readonly returns the readonly view of the same raw store as s.
func (s *Slice) Readonly() *ReadonlySlice { return readonlyOn(s.sys, s.raw).(*ReadonlySlice) }

// Get reads index i, tracking GET.
func (s *Slice) Get(i int) any { return lift(s.sys, s.s.Get(i)) }

// Len reads the length, tracking ITERATE via the length shape key.
func (s *Slice) Len() int { return s.s.Len() }

// Set writes index i (an existing index, or exactly Len(), the append
// position), triggering SET or ADD as appropriate.
func (s *Slice) Set(i int, value any) { s.s.Set(i, resolveProxy(value)) }

// Push appends value, triggering ADD at the new index and at length.
func (s *Slice) Push(value any) { s.s.Push(resolveProxy(value)) }

// DeleteAt removes the element at i, triggering DELETE at i and at length.
func (s *Slice) DeleteAt(i int) bool { return s.s.DeleteAt(i) }

// Has tests index presence, tracking HAS.
func (s *Slice) Has(i int) bool { return s.s.Has(i) }

// Values returns a snapshot of the elements, tracking ITERATE.
func (s *Slice) Values() []any { return liftSlice(s.sys, s.s.Values()) }

// Get reads index i, tracking GET, wrapping children readonly.
func (s *ReadonlySlice) Get(i int) any { return lift(s.sys, s.s.Get(i)) }

// Len reads the length, tracking ITERATE via the length shape key.
func (s *ReadonlySlice) Len() int { return s.s.Len() }

// Values returns a readonly-wrapped snapshot, tracking ITERATE.
func (s *ReadonlySlice) Values() []any { return liftSlice(s.sys, s.s.Values()) }

// Set guards the write behind the readonly lock; see ReadonlyMap.Set.
func (s *ReadonlySlice) Set(i int, value any) bool { return s.s.Set(i, resolveProxy(value)) }

// DeleteAt guards the delete behind the readonly lock; see ReadonlyMap.Delete.
func (s *ReadonlySlice) DeleteAt(i int) bool { return s.s.DeleteAt(i) }

// Entry is a single key/value pair yielded by an OrderedMap's Entries.
type Entry = internal.Entry

// OrderedMap is the mutable observed proxy over a key-value container with
// arbitrary comparable keys (spec §4.3).
type OrderedMap struct {
	sys *internal.System
	raw *internal.RawOrderedMap
	m   *internal.OrderedMap
}

// ReadonlyOrderedMap is the readonly observed proxy over the same raw store
// as an OrderedMap.
type ReadonlyOrderedMap struct {
	sys *internal.System
	raw *internal.RawOrderedMap
	m   *internal.ReadonlyOrderedMap
}

func (m *OrderedMap) rawTarget() any           { return m.raw }
func (m *OrderedMap) proxyTarget() any         { return m.m }
func (m *ReadonlyOrderedMap) rawTarget() any   { return m.raw }
func (m *ReadonlyOrderedMap) proxyTarget() any { return m.m }

// NewOrderedMap allocates a fresh, empty key-value container.
func NewOrderedMap() *OrderedMap { return newOrderedMapOn(defaultSystem()) }

// NewOrderedMap is System's instance-scoped equivalent of the package-level
// NewOrderedMap.
func (s *System) NewOrderedMap() *OrderedMap { return newOrderedMapOn(s.sys) }

func newOrderedMapOn(sys *internal.System) *OrderedMap {
	return reactiveOn(sys, internal.NewRawOrderedMap()).(*OrderedMap)
}

// Readonly returns the readonly view of the same raw store as m.
func (m *OrderedMap) Readonly() *ReadonlyOrderedMap {
	return readonlyOn(m.sys, m.raw).(*ReadonlyOrderedMap)
}

// Get tracks GET on k and returns the inner value, recursively wrapped.
func (m *OrderedMap) Get(k any) any { return lift(m.sys, m.m.Get(resolveProxy(k))) }

// Has tracks HAS on k.
func (m *OrderedMap) Has(k any) bool { return m.m.Has(resolveProxy(k)) }

// Size tracks ITERATE and returns the container's size.
func (m *OrderedMap) Size() int { return m.m.Size() }

// SetEntry triggers ADD if k is new, else SET if v differs from the old
// value, forwarding into an existing ref at k instead of replacing it.
func (m *OrderedMap) SetEntry(k, v any) { m.m.SetEntry(resolveProxy(k), resolveProxy(v)) }

// Delete triggers DELETE on k only when k was present.
func (m *OrderedMap) Delete(k any) bool { return m.m.Delete(resolveProxy(k)) }

// Clear triggers CLEAR with no key when the container was non-empty.
func (m *OrderedMap) Clear() { m.m.Clear() }

// ForEach tracks ITERATE and invokes cb(value, key) for every entry in
// insertion order.
func (m *OrderedMap) ForEach(cb func(value, key any)) {
	m.m.ForEach(func(value, key any) { cb(lift(m.sys, value), lift(m.sys, key)) })
}

// Keys tracks ITERATE and returns the wrapped keys in insertion order.
func (m *OrderedMap) Keys() []any { return liftSlice(m.sys, m.m.Keys()) }

// Values tracks ITERATE and returns the wrapped values in insertion order.
func (m *OrderedMap) Values() []any { return liftSlice(m.sys, m.m.Values()) }

// Entries tracks ITERATE and returns wrapped key/value pairs in insertion
// order.
func (m *OrderedMap) Entries() []Entry { return liftEntries(m.sys, m.m.Entries()) }

// Get, Has, Size, ForEach, Keys, Values, Entries on ReadonlyOrderedMap mirror
// OrderedMap but wrap children readonly; the mutating methods are guarded by
// the readonly lock.

func (m *ReadonlyOrderedMap) Get(k any) any  { return lift(m.sys, m.m.Get(resolveProxy(k))) }
func (m *ReadonlyOrderedMap) Has(k any) bool { return m.m.Has(resolveProxy(k)) }
func (m *ReadonlyOrderedMap) Size() int      { return m.m.Size() }
func (m *ReadonlyOrderedMap) ForEach(cb func(value, key any)) {
	m.m.ForEach(func(value, key any) { cb(lift(m.sys, value), lift(m.sys, key)) })
}
func (m *ReadonlyOrderedMap) Keys() []any      { return liftSlice(m.sys, m.m.Keys()) }
func (m *ReadonlyOrderedMap) Values() []any    { return liftSlice(m.sys, m.m.Values()) }
func (m *ReadonlyOrderedMap) Entries() []Entry { return liftEntries(m.sys, m.m.Entries()) }

// SetEntry guards the write behind the readonly lock; see ReadonlyMap.Set.
func (m *ReadonlyOrderedMap) SetEntry(k, v any) { m.m.SetEntry(resolveProxy(k), resolveProxy(v)) }

// Delete guards the delete behind the readonly lock; see ReadonlyMap.Delete.
func (m *ReadonlyOrderedMap) Delete(k any) bool { return m.m.Delete(resolveProxy(k)) }

// Clear guards the clear behind the readonly lock.
func (m *ReadonlyOrderedMap) Clear() { m.m.Clear() }

// CollectionSet is the mutable observed proxy over a set-like container
// (spec §4.3). Named CollectionSet, not Set, to avoid colliding with the
// package's own Set/Readonly family naming and with Go's set-less stdlib
// vocabulary.
type CollectionSet struct {
	sys *internal.System
	raw *internal.RawSet
	s   *internal.Set
}

// ReadonlyCollectionSet is the readonly observed proxy over the same raw
// store as a CollectionSet.
type ReadonlyCollectionSet struct {
	sys *internal.System
	raw *internal.RawSet
	s   *internal.ReadonlySet
}

func (s *CollectionSet) rawTarget() any           { return s.raw }
func (s *CollectionSet) proxyTarget() any         { return s.s }
func (s *ReadonlyCollectionSet) rawTarget() any   { return s.raw }
func (s *ReadonlyCollectionSet) proxyTarget() any { return s.s }

// NewCollectionSet allocates a fresh, empty set-like container.
func NewCollectionSet() *CollectionSet { return newSetOn(defaultSystem()) }

// NewCollectionSet is System's instance-scoped equivalent of the
// package-level NewCollectionSet.
func (s *System) NewCollectionSet() *CollectionSet { return newSetOn(s.sys) }

func newSetOn(sys *internal.System) *CollectionSet {
	return reactiveOn(sys, internal.NewRawSet()).(*CollectionSet)
}

// Readonly returns the readonly view of the same raw store as s.
func (s *CollectionSet) Readonly() *ReadonlyCollectionSet {
	return readonlyOn(s.sys, s.raw).(*ReadonlyCollectionSet)
}

// Has tracks HAS on v.
func (s *CollectionSet) Has(v any) bool { return s.s.Has(resolveProxy(v)) }

// Size tracks ITERATE on the set.
func (s *CollectionSet) Size() int { return s.s.Size() }

// Add triggers ADD on v only when v was not previously present.
func (s *CollectionSet) Add(v any) { s.s.Add(resolveProxy(v)) }

// Delete triggers DELETE on v only when v was present.
func (s *CollectionSet) Delete(v any) bool { return s.s.Delete(resolveProxy(v)) }

// Clear triggers CLEAR when the set was non-empty.
func (s *CollectionSet) Clear() { s.s.Clear() }

// ForEach tracks ITERATE and invokes cb(value) for each member.
func (s *CollectionSet) ForEach(cb func(value any)) {
	s.s.ForEach(func(value any) { cb(lift(s.sys, value)) })
}

// Values tracks ITERATE and returns the wrapped members in insertion order.
func (s *CollectionSet) Values() []any { return liftSlice(s.sys, s.s.Values()) }

func (s *ReadonlyCollectionSet) Has(v any) bool { return s.s.Has(resolveProxy(v)) }
func (s *ReadonlyCollectionSet) Size() int      { return s.s.Size() }
func (s *ReadonlyCollectionSet) ForEach(cb func(value any)) {
	s.s.ForEach(func(value any) { cb(lift(s.sys, value)) })
}
func (s *ReadonlyCollectionSet) Values() []any { return liftSlice(s.sys, s.s.Values()) }

// Add guards the add behind the readonly lock; see ReadonlyMap.Set.
func (s *ReadonlyCollectionSet) Add(v any) { s.s.Add(resolveProxy(v)) }

// Delete guards the delete behind the readonly lock; see ReadonlyMap.Delete.
func (s *ReadonlyCollectionSet) Delete(v any) bool { return s.s.Delete(resolveProxy(v)) }

// Clear guards the clear behind the readonly lock.
func (s *ReadonlyCollectionSet) Clear() { s.s.Clear() }

// WeakMap is the mutable observed proxy over a weak key-value container
// (spec §3). It exposes a reduced surface (no Size/Clear/iteration) — real
// weak collections can't be enumerated, since a weakly-held member may
// vanish at any time. Go has no weak-map primitive, so entries are held
// strongly until Dispose(raw) is called explicitly (SPEC_FULL.md Design
// Notes).
type WeakMap struct {
	sys *internal.System
	raw *internal.RawWeakMap
	m   *internal.WeakOrderedMap
}

// ReadonlyWeakMap is the readonly observed proxy over the same raw store as
// a WeakMap.
type ReadonlyWeakMap struct {
	sys *internal.System
	raw *internal.RawWeakMap
	m   *internal.ReadonlyWeakOrderedMap
}

func (m *WeakMap) rawTarget() any           { return m.raw }
func (m *WeakMap) proxyTarget() any         { return m.m }
func (m *ReadonlyWeakMap) rawTarget() any   { return m.raw }
func (m *ReadonlyWeakMap) proxyTarget() any { return m.m }

// NewWeakMap allocates a fresh, empty weak key-value container.
func NewWeakMap() *WeakMap { return newWeakMapOn(defaultSystem()) }

// NewWeakMap is System's instance-scoped equivalent of the package-level
// NewWeakMap.
func (s *System) NewWeakMap() *WeakMap { return newWeakMapOn(s.sys) }

func newWeakMapOn(sys *internal.System) *WeakMap {
	return reactiveOn(sys, internal.NewRawWeakMap()).(*WeakMap)
}

// Readonly returns the readonly view of the same raw store as m.
func (m *WeakMap) Readonly() *ReadonlyWeakMap { return readonlyOn(m.sys, m.raw).(*ReadonlyWeakMap) }

// Get tracks GET on k.
func (m *WeakMap) Get(k any) any { return lift(m.sys, m.m.Get(resolveProxy(k))) }

// Has tracks HAS on k.
func (m *WeakMap) Has(k any) bool { return m.m.Has(resolveProxy(k)) }

// SetEntry triggers ADD or SET on k as appropriate.
func (m *WeakMap) SetEntry(k, v any) { m.m.SetEntry(resolveProxy(k), resolveProxy(v)) }

// Delete triggers DELETE on k only when k was present.
func (m *WeakMap) Delete(k any) bool { return m.m.Delete(resolveProxy(k)) }

func (m *ReadonlyWeakMap) Get(k any) any  { return lift(m.sys, m.m.Get(resolveProxy(k))) }
func (m *ReadonlyWeakMap) Has(k any) bool { return m.m.Has(resolveProxy(k)) }

// SetEntry guards the write behind the readonly lock; see ReadonlyMap.Set.
func (m *ReadonlyWeakMap) SetEntry(k, v any) { m.m.SetEntry(resolveProxy(k), resolveProxy(v)) }

// Delete guards the delete behind the readonly lock; see ReadonlyMap.Delete.
func (m *ReadonlyWeakMap) Delete(k any) bool { return m.m.Delete(resolveProxy(k)) }

// WeakSet is the mutable observed proxy over a weak set-like container
// (spec §3), with the same reduced surface as WeakMap.
type WeakSet struct {
	sys *internal.System
	raw *internal.RawWeakSet
	s   *internal.WeakSet
}

// ReadonlyWeakSet is the readonly observed proxy over the same raw store as
// a WeakSet.
type ReadonlyWeakSet struct {
	sys *internal.System
	raw *internal.RawWeakSet
	s   *internal.ReadonlyWeakSet
}

func (s *WeakSet) rawTarget() any           { return s.raw }
func (s *WeakSet) proxyTarget() any         { return s.s }
func (s *ReadonlyWeakSet) rawTarget() any   { return s.raw }
func (s *ReadonlyWeakSet) proxyTarget() any { return s.s }

// NewWeakSet allocates a fresh, empty weak set-like container.
func NewWeakSet() *WeakSet { return newWeakSetOn(defaultSystem()) }

// NewWeakSet is System's instance-scoped equivalent of the package-level
// NewWeakSet.
func (s *System) NewWeakSet() *WeakSet { return newWeakSetOn(s.sys) }

func newWeakSetOn(sys *internal.System) *WeakSet {
	return reactiveOn(sys, internal.NewRawWeakSet()).(*WeakSet)
}

// Readonly returns the readonly view of the same raw store as s.
func (s *WeakSet) Readonly() *ReadonlyWeakSet { return readonlyOn(s.sys, s.raw).(*ReadonlyWeakSet) }

// Has tracks HAS on v.
func (s *WeakSet) Has(v any) bool { return s.s.Has(resolveProxy(v)) }

// Add triggers ADD on v only when v was not previously present.
func (s *WeakSet) Add(v any) { s.s.Add(resolveProxy(v)) }

// Delete triggers DELETE on v only when v was present.
func (s *WeakSet) Delete(v any) bool { return s.s.Delete(resolveProxy(v)) }

func (s *ReadonlyWeakSet) Has(v any) bool { return s.s.Has(resolveProxy(v)) }

// Add guards the add behind the readonly lock; see ReadonlyMap.Set.
func (s *ReadonlyWeakSet) Add(v any) { s.s.Add(resolveProxy(v)) }

// Delete guards the delete behind the readonly lock; see ReadonlyMap.Delete.
func (s *ReadonlyWeakSet) Delete(v any) bool { return s.s.Delete(resolveProxy(v)) }
