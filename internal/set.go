package internal

import "sync"

// RawSet is the raw backing store for the set-like container shape
// (spec §4.3).
type RawSet struct {
	mu     sync.Mutex
	values map[any]struct{}
	order  []any
}

// NewRawSet allocates an empty raw set.
func NewRawSet() *RawSet {
	return &RawSet{values: make(map[any]struct{})}
}

func (r *RawSet) has(v any) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.values[v]
	return ok
}

func (r *RawSet) size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.values)
}

func (r *RawSet) add(v any) (wasPresent bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, wasPresent = r.values[v]
	if !wasPresent {
		r.values[v] = struct{}{}
		r.order = append(r.order, v)
	}
	return wasPresent
}

func (r *RawSet) del(v any) (hadValue bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, hadValue = r.values[v]
	if hadValue {
		delete(r.values, v)
		for i, ov := range r.order {
			if ov == v {
				r.order = append(r.order[:i], r.order[i+1:]...)
				break
			}
		}
	}
	return hadValue
}

func (r *RawSet) clear() (hadEntries bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	hadEntries = len(r.values) > 0
	r.values = make(map[any]struct{})
	r.order = nil
	return hadEntries
}

func (r *RawSet) orderedValues() []any {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]any(nil), r.order...)
}

// Set is the mutable observed proxy over a RawSet.
type Set struct {
	sys *System
	raw *RawSet
}

// ReadonlySet is the readonly observed proxy over a RawSet.
type ReadonlySet struct {
	sys *System
	raw *RawSet
}

func (s *Set) normVal(v any) any { return s.sys.ToRaw(v) }

// Has tracks HAS on (raw, v).
func (s *Set) Has(v any) bool {
	v = s.normVal(v)
	s.sys.Track(s.raw, OpHas, v)
	return s.raw.has(v)
}

// Size tracks ITERATE on raw.
func (s *Set) Size() int {
	s.sys.Track(s.raw, OpIterate, IterateKey)
	return s.raw.size()
}

// Add triggers ADD on (raw, v) only when v was not previously present.
func (s *Set) Add(v any) {
	v = s.normVal(v)
	if s.raw.add(v) {
		return
	}
	s.sys.Trigger(s.raw, OpAdd, v, &DebugEvent{NewValue: v, HasNewValue: true})
}

// Delete triggers DELETE on v only when v was present.
func (s *Set) Delete(v any) bool {
	v = s.normVal(v)
	if !s.raw.del(v) {
		return false
	}
	s.sys.Trigger(s.raw, OpDelete, v, &DebugEvent{OldValue: v, HasOldValue: true})
	return true
}

// Clear snapshots existence first, triggering CLEAR when non-empty.
func (s *Set) Clear() {
	before := s.raw.orderedValues()
	if s.raw.clear() {
		s.sys.Trigger(s.raw, OpClear, nil, &DebugEvent{OldTarget: before, HasOldTarget: true})
	}
}

// ForEach tracks ITERATE and invokes cb(wrappedValue) for each member.
func (s *Set) ForEach(cb func(value any)) {
	s.sys.Track(s.raw, OpIterate, IterateKey)
	for _, v := range s.raw.orderedValues() {
		cb(wrapChildRead(s.sys, v, false))
	}
}

// Values tracks ITERATE and returns the wrapped members in insertion order.
func (s *Set) Values() []any {
	s.sys.Track(s.raw, OpIterate, IterateKey)
	vals := s.raw.orderedValues()
	out := make([]any, len(vals))
	for i, v := range vals {
		out[i] = wrapChildRead(s.sys, v, false)
	}
	return out
}

func (s *ReadonlySet) normVal(v any) any { return s.sys.ToRaw(v) }

func (s *ReadonlySet) Has(v any) bool {
	v = s.normVal(v)
	s.sys.Track(s.raw, OpHas, v)
	return s.raw.has(v)
}

func (s *ReadonlySet) Size() int {
	s.sys.Track(s.raw, OpIterate, IterateKey)
	return s.raw.size()
}

func (s *ReadonlySet) ForEach(cb func(value any)) {
	s.sys.Track(s.raw, OpIterate, IterateKey)
	for _, v := range s.raw.orderedValues() {
		cb(wrapChildRead(s.sys, v, true))
	}
}

func (s *ReadonlySet) Values() []any {
	s.sys.Track(s.raw, OpIterate, IterateKey)
	vals := s.raw.orderedValues()
	out := make([]any, len(vals))
	for i, v := range vals {
		out[i] = wrapChildRead(s.sys, v, true)
	}
	return out
}

// Add guards the add behind the readonly lock; see ReadonlyMap.Set.
func (s *ReadonlySet) Add(v any) any {
	if s.sys.IsLocked() {
		warnReadonlyViolation(OpAdd, s.raw, v)
		return s
	}
	(&Set{sys: s.sys, raw: s.raw}).Add(v)
	return s
}

// Delete guards the delete behind the readonly lock; see ReadonlyMap.Delete.
func (s *ReadonlySet) Delete(v any) bool {
	if s.sys.IsLocked() {
		warnReadonlyViolation(OpDelete, s.raw, v)
		return false
	}
	return (&Set{sys: s.sys, raw: s.raw}).Delete(v)
}

// Clear guards the clear behind the readonly lock; see
// ReadonlyOrderedMap.Clear.
func (s *ReadonlySet) Clear() any {
	if s.sys.IsLocked() {
		warnReadonlyViolation(OpClear, s.raw, nil)
		return s
	}
	(&Set{sys: s.sys, raw: s.raw}).Clear()
	return s
}
