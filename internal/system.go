package internal

import (
	"sync"

	"github.com/petermattis/goid"
)

// System holds every piece of process-wide mutable state the spec describes
// (targetMap, the four raw/observed registries, the two opt-out sets, the
// active-effect stack, the tracking flag, and the readonly lock) behind one
// value, per Design Notes §9 ("a target-language port should encapsulate
// them in one reactivity system value passed explicitly — tests can then
// instantiate independent systems").
type System struct {
	mu sync.Mutex

	targetMap map[any]depMap

	rawToReactive map[any]any
	reactiveToRaw map[any]any
	rawToReadonly map[any]any
	readonlyToRaw map[any]any

	explicitlyReadonly    map[any]struct{}
	explicitlyNonReactive map[any]struct{}
	disposed              map[any]struct{}

	activeStack []*Effect
	pauseDepth  int

	readonlyLocked bool
}

// NewSystem allocates an independent reactivity system.
func NewSystem() *System {
	return &System{
		targetMap:             make(map[any]depMap),
		rawToReactive:         make(map[any]any),
		reactiveToRaw:         make(map[any]any),
		rawToReadonly:         make(map[any]any),
		readonlyToRaw:         make(map[any]any),
		explicitlyReadonly:    make(map[any]struct{}),
		explicitlyNonReactive: make(map[any]struct{}),
		disposed:              make(map[any]struct{}),
	}
}

var systems sync.Map

// DefaultSystem returns the system for the calling goroutine, creating one
// on first use. Matching the teacher's internal.GetRuntime(), the engine is
// keyed by goroutine id so package-level sugar (reactive.NewEffect,
// reactive.NewRef, ...) never requires threading a *System through call sites explicitly,
// while §5's single-threaded execution model is still honored per goroutine.
func DefaultSystem() *System {
	gid := goid.Get()

	if s, ok := systems.Load(gid); ok {
		return s.(*System)
	}

	s := NewSystem()
	systems.Store(gid, s)
	return s
}

func (s *System) ensureDepMap(raw any) depMap {
	dm, ok := s.targetMap[raw]
	if !ok {
		dm = make(depMap)
		s.targetMap[raw] = dm
	}
	return dm
}

func (s *System) pushEffect(e *Effect) {
	s.activeStack = append(s.activeStack, e)
}

func (s *System) popEffect() {
	s.activeStack = s.activeStack[:len(s.activeStack)-1]
}

func (s *System) isOnStack(e *Effect) bool {
	for _, a := range s.activeStack {
		if a == e {
			return true
		}
	}
	return false
}

// CurrentEffect returns the effect currently collecting reads, or nil.
func (s *System) CurrentEffect() *Effect {
	if len(s.activeStack) == 0 {
		return nil
	}
	return s.activeStack[len(s.activeStack)-1]
}

// Lock engages the process-wide readonly lock: writes to readonly proxies
// become warn+no-op instead of being forwarded to the mutable implementation.
func (s *System) Lock() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.readonlyLocked = true
}

// Unlock disengages the readonly lock.
func (s *System) Unlock() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.readonlyLocked = false
}

// IsLocked reports whether the readonly lock is currently engaged.
func (s *System) IsLocked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readonlyLocked
}
