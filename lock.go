package reactive

// Lock engages the readonly lock on the calling goroutine's default system:
// writes to readonly proxies become a dev-mode warning and a no-op instead
// of being forwarded to the mutable implementation (spec §4.3/§6/§7).
func Lock() { defaultSystem().Lock() }

// Lock is System's instance-scoped equivalent of the package-level Lock.
func (s *System) Lock() { s.sys.Lock() }

// Unlock disengages the readonly lock.
func Unlock() { defaultSystem().Unlock() }

// Unlock is System's instance-scoped equivalent of the package-level Unlock.
func (s *System) Unlock() { s.sys.Unlock() }

// IsLocked reports whether the readonly lock is currently engaged.
func IsLocked() bool { return defaultSystem().IsLocked() }

// IsLocked is System's instance-scoped equivalent of the package-level
// IsLocked.
func (s *System) IsLocked() bool { return s.sys.IsLocked() }
