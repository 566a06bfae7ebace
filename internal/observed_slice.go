package internal

import "sync"

// RawSlice is the raw backing store for the "ordered sequence" shape (spec
// §3/§4.2). Unlike RawMap it reports LengthKey ("length") instead of
// IterateKey as its shape-key, so ADD/DELETE trigger length observers too.
type RawSlice struct {
	mu     sync.Mutex
	values []any
}

// NewRawSlice allocates a raw slice seeded with a copy of initial.
func NewRawSlice(initial []any) *RawSlice {
	values := make([]any, len(initial))
	copy(values, initial)
	return &RawSlice{values: values}
}

func (r *RawSlice) shapeKey() any { return LengthKey }

func (r *RawSlice) length() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.values)
}

func (r *RawSlice) get(i int) (any, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i < 0 || i >= len(r.values) {
		return nil, false
	}
	return r.values[i], true
}

// set writes index i, appending v if i == len(values) (append semantics),
// the single out-of-range case this engine supports: writing the next index.
// Any other out-of-range i writes nothing.
func (r *RawSlice) set(i int, v any) (old any, hadIndex bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i >= 0 && i < len(r.values) {
		old = r.values[i]
		r.values[i] = v
		return old, true
	}
	if i == len(r.values) {
		r.values = append(r.values, v)
		return nil, false
	}
	return nil, false
}

func (r *RawSlice) push(v any) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values = append(r.values, v)
	return len(r.values) - 1
}

func (r *RawSlice) deleteAt(i int) (any, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i < 0 || i >= len(r.values) {
		return nil, false
	}
	old := r.values[i]
	r.values = append(r.values[:i], r.values[i+1:]...)
	return old, true
}

func (r *RawSlice) snapshot() []any {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]any, len(r.values))
	copy(out, r.values)
	return out
}

// ObservedSlice is the mutable observed proxy over a RawSlice.
type ObservedSlice struct {
	sys *System
	raw *RawSlice
}

// ReadonlySlice is the readonly observed proxy over a RawSlice.
type ReadonlySlice struct {
	sys *System
	raw *RawSlice
}

// Get reads index i, tracking GET, with recursive wrapping/ref-unwrap.
func (s *ObservedSlice) Get(i int) any {
	s.sys.Track(s.raw, OpGet, i)
	v, _ := s.raw.get(i)
	return wrapChildRead(s.sys, v, false)
}

// Len reads the length, tracking ITERATE via the "length" shape key.
func (s *ObservedSlice) Len() int {
	s.sys.Track(s.raw, OpIterate, LengthKey)
	return s.raw.length()
}

// Set writes index i (must be an existing index or exactly len(values), the
// append position), triggering SET for an existing differing index or ADD
// for the append case, with ref-forward exactly as ObservedMap.Set.
func (s *ObservedSlice) Set(i int, value any) {
	old, hadIndex := s.raw.get(i)

	if hadIndex {
		if ref, ok := old.(*Ref); ok {
			if _, isRef := value.(*Ref); !isRef {
				ref.Set(value)
				return
			}
		}
		if rawEqual(old, value) {
			return
		}
	}

	_, hadIndex = s.raw.set(i, value)

	if !hadIndex {
		// Trigger's own OpAdd handling additionally fires dm[shapeKeyFor(raw)]
		// (LengthKey for a slice), so one call here already reaches both the
		// index-i dependents and the length dependents.
		s.sys.Trigger(s.raw, OpAdd, i, &DebugEvent{NewValue: value, HasNewValue: true})
	} else {
		s.sys.Trigger(s.raw, OpSet, i, &DebugEvent{OldValue: old, HasOldValue: true, NewValue: value, HasNewValue: true})
	}
}

// Push appends value, triggering ADD at the new index; Trigger's own
// OpAdd handling additionally reaches the length dependents (see Set).
func (s *ObservedSlice) Push(value any) {
	i := s.raw.push(value)
	s.sys.Trigger(s.raw, OpAdd, i, &DebugEvent{NewValue: value, HasNewValue: true})
}

// DeleteAt removes the element at i, triggering DELETE at i; Trigger's own
// OpDelete handling additionally reaches the length dependents (see Set),
// iff the index existed.
func (s *ObservedSlice) DeleteAt(i int) bool {
	old, existed := s.raw.deleteAt(i)
	if !existed {
		return false
	}
	s.sys.Trigger(s.raw, OpDelete, i, &DebugEvent{OldValue: old, HasOldValue: true})
	return true
}

// Has tests index presence, tracking HAS.
func (s *ObservedSlice) Has(i int) bool {
	s.sys.Track(s.raw, OpHas, i)
	_, ok := s.raw.get(i)
	return ok
}

// Values returns a snapshot of the slice's elements, each recursively
// wrapped, tracking ITERATE (filed under the "length" shape key, same as
// Len, so push/delete/append re-run both).
func (s *ObservedSlice) Values() []any {
	s.sys.Track(s.raw, OpIterate, LengthKey)
	raw := s.raw.snapshot()
	out := make([]any, len(raw))
	for i, v := range raw {
		out[i] = wrapChildRead(s.sys, v, false)
	}
	return out
}

// Get reads index i, tracking GET, wrapping children readonly.
func (s *ReadonlySlice) Get(i int) any {
	s.sys.Track(s.raw, OpGet, i)
	v, _ := s.raw.get(i)
	return wrapChildRead(s.sys, v, true)
}

// Len reads the length, tracking ITERATE via the "length" shape key.
func (s *ReadonlySlice) Len() int {
	s.sys.Track(s.raw, OpIterate, LengthKey)
	return s.raw.length()
}

// Values returns a readonly-wrapped snapshot, tracking ITERATE (filed under
// the "length" shape key, same as Len).
func (s *ReadonlySlice) Values() []any {
	s.sys.Track(s.raw, OpIterate, LengthKey)
	raw := s.raw.snapshot()
	out := make([]any, len(raw))
	for i, v := range raw {
		out[i] = wrapChildRead(s.sys, v, true)
	}
	return out
}

// Set guards the write behind the readonly lock; see ReadonlyMap.Set.
func (s *ReadonlySlice) Set(i int, value any) bool {
	if s.sys.IsLocked() {
		warnReadonlyViolation(OpSet, s.raw, i)
		return true
	}
	(&ObservedSlice{sys: s.sys, raw: s.raw}).Set(i, value)
	return true
}

// DeleteAt guards the delete behind the readonly lock; see ReadonlyMap.Delete.
func (s *ReadonlySlice) DeleteAt(i int) bool {
	if s.sys.IsLocked() {
		warnReadonlyViolation(OpDelete, s.raw, i)
		return false
	}
	return (&ObservedSlice{sys: s.sys, raw: s.raw}).DeleteAt(i)
}
