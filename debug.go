package reactive

import "github.com/nodalgraph/reactive/internal"

// DebugEvent is the payload passed to onTrack/onTrigger hooks (spec §6);
// onStop hooks take no payload. Only the fields relevant to the firing operation are
// populated; check the corresponding HasX flag before reading OldValue,
// NewValue, or OldTarget.
type DebugEvent = internal.DebugEvent

// EnableDevMode turns on the development diagnostics described in spec §6:
// rich onTrack/onTrigger payloads and readonly/non-observable warnings.
func EnableDevMode() { internal.EnableDevMode() }

// DisableDevMode turns off development diagnostics.
func DisableDevMode() { internal.DisableDevMode() }
