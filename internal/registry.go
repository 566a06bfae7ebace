package internal

// isCompoundRawShape reports whether v is one of the raw container shapes
// this engine can wrap: a non-nil compound value that is NOT flagged as
// framework instance or virtual node (the Go port has no component
// framework, so that disqualifier never applies) and whose
// runtime shape is one of {plain object, ordered sequence, key-value
// container, set-like container, weak key-value, weak set}.
func isCompoundRawShape(v any) bool {
	switch v.(type) {
	case *RawMap, *RawSlice, *RawOrderedMap, *RawSet, *RawWeakMap, *RawWeakSet:
		return true
	default:
		return false
	}
}

func (s *System) isObservable(raw any) bool {
	if !isCompoundRawShape(raw) {
		return false
	}
	_, optedOut := s.explicitlyNonReactive[raw]
	return !optedOut
}

func (s *System) isMutableProxy(x any) bool {
	_, ok := s.reactiveToRaw[x]
	return ok
}

func (s *System) isReadonlyProxy(x any) bool {
	_, ok := s.readonlyToRaw[x]
	return ok
}

// wrapMutable allocates the mutable proxy matching raw's concrete shape.
func wrapMutable(s *System, raw any) any {
	switch t := raw.(type) {
	case *RawMap:
		return &ObservedMap{sys: s, raw: t}
	case *RawSlice:
		return &ObservedSlice{sys: s, raw: t}
	case *RawOrderedMap:
		return &OrderedMap{sys: s, raw: t}
	case *RawSet:
		return &Set{sys: s, raw: t}
	case *RawWeakMap:
		return &WeakOrderedMap{sys: s, raw: t}
	case *RawWeakSet:
		return &WeakSet{sys: s, raw: t}
	default:
		return raw
	}
}

// wrapReadonly allocates the readonly proxy matching raw's concrete shape.
func wrapReadonly(s *System, raw any) any {
	switch t := raw.(type) {
	case *RawMap:
		return &ReadonlyMap{sys: s, raw: t}
	case *RawSlice:
		return &ReadonlySlice{sys: s, raw: t}
	case *RawOrderedMap:
		return &ReadonlyOrderedMap{sys: s, raw: t}
	case *RawSet:
		return &ReadonlySet{sys: s, raw: t}
	case *RawWeakMap:
		return &ReadonlyWeakOrderedMap{sys: s, raw: t}
	case *RawWeakSet:
		return &ReadonlyWeakSet{sys: s, raw: t}
	default:
		return raw
	}
}

// Reactive returns: target itself if it is already a readonly proxy;
// Readonly(target) if the user explicitly pre-marked it readonly; the
// existing cached mutable proxy; target if it is already a mutable proxy of
// something; target unchanged if it is not an observable type; otherwise a
// newly allocated proxy installed in both directions of the mutable
// registry. Spec §4.1.
func (s *System) Reactive(target any) any {
	if target == nil {
		return target
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isReadonlyProxy(target) {
		return target
	}
	if s.isMutableProxy(target) {
		return target
	}

	if _, ok := s.explicitlyReadonly[target]; ok {
		return s.readonlyProxyFor(target)
	}

	if p, ok := s.rawToReactive[target]; ok {
		return p
	}

	if !s.isObservable(target) {
		warnNotObservable(target)
		return target
	}

	proxy := wrapMutable(s, target)
	s.rawToReactive[target] = proxy
	s.reactiveToRaw[proxy] = target
	return proxy
}

// Readonly is symmetric to Reactive but, when called on an already-mutable
// proxy, first resolves back to the raw value so that readonly views share
// the raw underlying target with mutable views. Spec §4.1.
func (s *System) Readonly(target any) any {
	if target == nil {
		return target
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.readonlyProxyFor(target)
}

// readonlyProxyFor is Readonly's body, callable while s.mu is already held.
func (s *System) readonlyProxyFor(target any) any {
	if s.isReadonlyProxy(target) {
		return target
	}

	if raw, ok := s.reactiveToRaw[target]; ok {
		target = raw
	}

	if p, ok := s.rawToReadonly[target]; ok {
		return p
	}

	if !s.isObservable(target) {
		warnNotObservable(target)
		return target
	}

	proxy := wrapReadonly(s, target)
	s.rawToReadonly[target] = proxy
	s.readonlyToRaw[proxy] = target
	return proxy
}

// ToRaw returns the raw behind a mutable or readonly proxy, else x.
func (s *System) ToRaw(x any) any {
	s.mu.Lock()
	defer s.mu.Unlock()

	if raw, ok := s.reactiveToRaw[x]; ok {
		return raw
	}
	if raw, ok := s.readonlyToRaw[x]; ok {
		return raw
	}
	return x
}

// IsReactive tests mutable-registry membership.
func (s *System) IsReactive(x any) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isMutableProxy(x)
}

// IsReadonly tests readonly-registry membership.
func (s *System) IsReadonly(x any) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isReadonlyProxy(x)
}

// MarkReadonly inserts x into the explicitly-readonly opt-in set and
// returns x.
func (s *System) MarkReadonly(x any) any {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.explicitlyReadonly[x] = struct{}{}
	return x
}

// MarkNonReactive inserts x into the nonreactive opt-out set and returns x.
func (s *System) MarkNonReactive(x any) any {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.explicitlyNonReactive[x] = struct{}{}
	return x
}

// Dispose removes raw from every registry and from targetMap, letting it be
// garbage collected. The engine holds no weak references (Go has no
// identity-keyed weak map primitive, Design Notes §9), so without this call
// a raw root registered with Reactive/Readonly is retained for the life of
// the System.
func (s *System) Dispose(raw any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p, ok := s.rawToReactive[raw]; ok {
		delete(s.reactiveToRaw, p)
	}
	if p, ok := s.rawToReadonly[raw]; ok {
		delete(s.readonlyToRaw, p)
	}
	delete(s.rawToReactive, raw)
	delete(s.rawToReadonly, raw)
	delete(s.explicitlyReadonly, raw)
	delete(s.explicitlyNonReactive, raw)
	delete(s.targetMap, raw)

	s.disposed[raw] = struct{}{}
}

// IsDisposed reports whether raw was previously passed to Dispose.
func (s *System) IsDisposed(raw any) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.disposed[raw]
	return ok
}
