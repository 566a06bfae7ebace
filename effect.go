package reactive

import "github.com/nodalgraph/reactive/internal"

// EffectOption configures an Effect at creation time.
type EffectOption = internal.EffectOption

// WithLazy suppresses the first run; the effect first runs when explicitly
// invoked via Run. Until then it has tracked nothing, so no write triggers it
// (spec §4.4).
func WithLazy() EffectOption { return internal.WithLazy() }

// WithScheduler installs fn in place of a direct re-run whenever the effect
// is triggered; fn receives the effect so it can call Run itself (e.g. to
// batch, defer, or throttle re-execution).
func WithScheduler(fn func(*Effect)) EffectOption {
	return internal.WithScheduler(func(e *internal.Effect) {
		fn(&Effect{e: e})
	})
}

// WithOnTrack installs a dev-mode hook fired when the effect establishes a
// new dependency link.
func WithOnTrack(fn func(DebugEvent)) EffectOption { return internal.WithOnTrack(fn) }

// WithOnTrigger installs a dev-mode hook fired whenever the effect is fired
// by a trigger.
func WithOnTrigger(fn func(DebugEvent)) EffectOption { return internal.WithOnTrigger(fn) }

// WithOnStop installs a hook fired when the effect is stopped.
func WithOnStop(fn func()) EffectOption { return internal.WithOnStop(fn) }

// Effect is a callable whose reads are tracked and which is re-invoked (or
// whose scheduler is invoked) whenever a tracked cell is mutated (spec §4.4).
type Effect struct {
	e *internal.Effect
}

// NewEffect wraps fn into a reactive effect on the calling goroutine's
// default system and, unless WithLazy is given, runs it immediately.
func NewEffect(fn func(), opts ...EffectOption) *Effect {
	return &Effect{e: defaultSystem().NewEffect(fn, opts...)}
}

// NewEffect is System's instance-scoped equivalent of the package-level
// NewEffect.
func (s *System) NewEffect(fn func(), opts ...EffectOption) *Effect {
	return &Effect{e: s.sys.NewEffect(fn, opts...)}
}

// Run re-executes the effect's function under tracking, following the
// three-case run protocol of spec §4.4 (stopped / re-entrant / normal).
func (e *Effect) Run() { e.e.Run() }

// Stop deactivates the effect: it is removed from every dependency it
// belongs to, its onStop hook fires, and future direct Run calls execute its
// function untracked.
func (e *Effect) Stop() { e.e.Stop() }

// Active reports whether the effect has not been stopped.
func (e *Effect) Active() bool { return e.e.Active() }

// PauseTracking suspends dependency collection on the calling goroutine's
// default system; triggers are unaffected. Nested calls require a matching
// number of ResumeTracking calls.
func PauseTracking() { defaultSystem().PauseTracking() }

// PauseTracking is System's instance-scoped equivalent of the package-level
// PauseTracking.
func (s *System) PauseTracking() { s.sys.PauseTracking() }

// ResumeTracking reverses one PauseTracking call.
func ResumeTracking() { defaultSystem().ResumeTracking() }

// ResumeTracking is System's instance-scoped equivalent of the
// package-level ResumeTracking.
func (s *System) ResumeTracking() { s.sys.ResumeTracking() }
