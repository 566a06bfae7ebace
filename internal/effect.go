package internal

// EffectOption configures an Effect at creation time.
type EffectOption func(*effectConfig)

type effectConfig struct {
	lazy          bool
	computedClass bool
	scheduler     func(*Effect)
	onTrack       func(DebugEvent)
	onTrigger     func(DebugEvent)
	onStop        func()
}

// WithLazy suppresses the first run; the effect first runs when explicitly
// invoked via Run. Until then it has tracked nothing, so no write triggers it.
func WithLazy() EffectOption {
	return func(c *effectConfig) { c.lazy = true }
}

// WithComputedClass marks the effect as computed-class for trigger
// partitioning (spec §4.4/§4.5). It is only meant to be used by Computed.
func WithComputedClass() EffectOption {
	return func(c *effectConfig) { c.computedClass = true }
}

// WithScheduler installs a function called in place of a direct re-run
// whenever the effect is triggered.
func WithScheduler(fn func(*Effect)) EffectOption {
	return func(c *effectConfig) { c.scheduler = fn }
}

// WithOnTrack installs a dev-mode hook fired when a new dependency link is
// established.
func WithOnTrack(fn func(DebugEvent)) EffectOption {
	return func(c *effectConfig) { c.onTrack = fn }
}

// WithOnTrigger installs a dev-mode hook fired whenever the effect is fired
// by a trigger.
func WithOnTrigger(fn func(DebugEvent)) EffectOption {
	return func(c *effectConfig) { c.onTrigger = fn }
}

// WithOnStop installs a hook fired when the effect is stopped.
func WithOnStop(fn func()) EffectOption {
	return func(c *effectConfig) { c.onStop = fn }
}

// Effect is a callable whose reads are tracked and which is re-invoked when
// any tracked cell is mutated.
type Effect struct {
	sys *System

	fn     func()
	deps   []*dep
	active bool

	computedClass bool
	scheduler     func(*Effect)

	onTrack   func(DebugEvent)
	onTrigger func(DebugEvent)
	onStop    func()
}

// NewEffect wraps fn into a reactive effect and, unless WithLazy is given,
// runs it immediately.
func (s *System) NewEffect(fn func(), opts ...EffectOption) *Effect {
	cfg := &effectConfig{}
	for _, o := range opts {
		o(cfg)
	}

	e := &Effect{
		sys:           s,
		fn:            fn,
		active:        true,
		computedClass: cfg.computedClass,
		scheduler:     cfg.scheduler,
		onTrack:       cfg.onTrack,
		onTrigger:     cfg.onTrigger,
		onStop:        cfg.onStop,
	}

	if !cfg.lazy {
		e.Run()
	}

	return e
}

// Run executes the run protocol of spec §4.4:
//  1. a stopped effect calls fn outside any tracking context;
//  2. a re-entrant call (effect already on the active stack) calls fn as a
//     non-tracking pass-through, preventing unbounded self-triggered recursion;
//  3. otherwise: clear previous deps, push, call fn, pop (always, even on
//     panic), then re-collect deps from scratch during the call.
func (e *Effect) Run() {
	if !e.active {
		e.fn()
		return
	}

	if e.sys.isOnStack(e) {
		e.fn()
		return
	}

	e.clearDeps()
	e.sys.pushEffect(e)
	defer e.sys.popEffect()

	e.fn()
}

func (e *Effect) clearDeps() {
	for _, d := range e.deps {
		d.remove(e)
	}
	e.deps = e.deps[:0]
}

// Stop deactivates e: it is removed from every dep it belongs to, onStop
// fires, and future direct calls to Run execute fn untracked.
func (s *System) Stop(e *Effect) {
	if !e.active {
		return
	}

	e.clearDeps()
	e.active = false

	if e.onStop != nil {
		e.onStop()
	}
}

// Active reports whether the effect has not been stopped.
func (e *Effect) Active() bool {
	return e.active
}

// Stop is a convenience wrapper around e.sys.Stop(e), so callers holding
// only an *Effect (not its owning *System) can still stop it.
func (e *Effect) Stop() {
	e.sys.Stop(e)
}
