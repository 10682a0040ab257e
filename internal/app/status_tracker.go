package app

import "homework_status_bot/internal/domain/homework"

// StatusTracker remembers the last homework status that was notified.
// The zero value is the initial "unset" state.
type StatusTracker struct {
	last  homework.Status
	known bool
}

// Observe moves the tracker to s and reports whether that is a change,
// meaning the caller has to notify. Repeating the current status is a no-op.
func (t *StatusTracker) Observe(s homework.Status) bool {
	if t.known && t.last == s {
		return false
	}
	t.last = s
	t.known = true
	return true
}

// Last returns the current status, ok is false while nothing was observed.
func (t *StatusTracker) Last() (homework.Status, bool) {
	return t.last, t.known
}
