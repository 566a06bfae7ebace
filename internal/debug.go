package internal

import (
	"log"
	"os"
)

// DevMode gates the development-time diagnostics described in spec §6: rich
// onTrack/onTrigger payloads (oldValue/newValue/oldTarget), readonly-violation
// warnings, and non-observable warnings. It is a single process-wide
// build-time-style flag, not a per-System setting, matching "one build-time
// flag gates development diagnostics".
var DevMode = false

// EnableDevMode turns on development diagnostics.
func EnableDevMode() { DevMode = true }

// DisableDevMode turns off development diagnostics.
func DisableDevMode() { DevMode = false }

// Logger is where dev-mode warnings are written. Tests may swap it out to
// assert on warnings.
var Logger = log.New(os.Stderr, "reactive: ", 0)

// DebugEvent is the payload passed to onTrack/onTrigger hooks; onStop hooks
// take no payload.
type DebugEvent struct {
	Effect    *Effect
	Target    any
	Type      Op
	Key       any
	OldValue  any
	NewValue  any
	OldTarget any

	HasOldValue  bool
	HasNewValue  bool
	HasOldTarget bool
}

func warnNotObservable(target any) {
	if DevMode {
		Logger.Printf("value of type %T passed to reactive/readonly is not observable and was returned unchanged", target)
	}
}

func warnReadonlyViolation(op Op, target any, key any) {
	if DevMode {
		Logger.Printf("%s on key %v of readonly target %T was ignored (readonly lock engaged)", op, key, target)
	}
}

func warnReadonlyWrite(target any) {
	if DevMode {
		Logger.Printf("set on readonly computed %T was ignored, no setter was provided", target)
	}
}
