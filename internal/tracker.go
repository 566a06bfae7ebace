package internal

// isOrderedSequence is implemented by raw shapes whose shape key is
// "length" instead of ITERATE_KEY: their iteration reads are tracked, and
// their add/delete trigger, under that key.
type isOrderedSequence interface {
	shapeKey() any
}

func shapeKeyFor(raw any) any {
	if seq, ok := raw.(isOrderedSequence); ok {
		return seq.shapeKey()
	}
	return IterateKey
}

// Track records that the currently active effect read (raw, op, key).
func (s *System) Track(raw any, op Op, key any) {
	if s.pauseDepth > 0 {
		return
	}

	e := s.CurrentEffect()
	if e == nil {
		return
	}

	if op == OpIterate {
		key = shapeKeyFor(raw)
	}

	dm := s.ensureDepMap(raw)
	d, ok := dm[key]
	if !ok {
		d = newDep()
		dm[key] = d
	}

	if d.add(e) {
		e.deps = append(e.deps, d)

		if DevMode && e.onTrack != nil {
			e.onTrack(DebugEvent{Effect: e, Target: raw, Type: op, Key: key})
		}
	}
}

// Trigger fires the effects that depend on (raw, op, key), running every
// computed-class effect before any ordinary effect, per spec §4.4/§5.
func (s *System) Trigger(raw any, op Op, key any, extra *DebugEvent) {
	dm, ok := s.targetMap[raw]
	if !ok {
		return
	}

	var sources []*dep

	switch op {
	case OpClear:
		for _, d := range dm {
			sources = append(sources, d)
		}
	default:
		if d, ok := dm[key]; ok {
			sources = append(sources, d)
		}
		if op == OpAdd || op == OpDelete {
			if d, ok := dm[shapeKeyFor(raw)]; ok {
				sources = append(sources, d)
			}
		}
	}

	if len(sources) == 0 {
		return
	}

	seen := make(map[*Effect]struct{})
	var computedRunners, ordinary []*Effect

	for _, d := range sources {
		for _, e := range d.snapshot() {
			if _, dup := seen[e]; dup {
				continue
			}
			seen[e] = struct{}{}

			if e.computedClass {
				computedRunners = append(computedRunners, e)
			} else {
				ordinary = append(ordinary, e)
			}
		}
	}

	fire := func(e *Effect) {
		if DevMode && e.onTrigger != nil {
			ev := DebugEvent{Effect: e, Target: raw, Type: op, Key: key}
			if extra != nil {
				ev.OldValue, ev.HasOldValue = extra.OldValue, extra.HasOldValue
				ev.NewValue, ev.HasNewValue = extra.NewValue, extra.HasNewValue
				ev.OldTarget, ev.HasOldTarget = extra.OldTarget, extra.HasOldTarget
			}
			e.onTrigger(ev)
		}

		if e.scheduler != nil {
			e.scheduler(e)
		} else {
			e.Run()
		}
	}

	for _, e := range computedRunners {
		fire(e)
	}
	for _, e := range ordinary {
		fire(e)
	}
}

// PauseTracking suspends dependency collection; triggers are unaffected.
// Nested calls require a matching number of ResumeTracking calls.
func (s *System) PauseTracking() {
	s.pauseDepth++
}

// ResumeTracking reverses one PauseTracking call.
func (s *System) ResumeTracking() {
	if s.pauseDepth > 0 {
		s.pauseDepth--
	}
}
