package app

// ErrorDeduplicator suppresses repeated notifications about the same error.
type ErrorDeduplicator struct {
	last string
}

// ShouldNotify reports whether errText differs from the last notified error
// and, if so, remembers it.
func (d *ErrorDeduplicator) ShouldNotify(errText string) bool {
	if errText == d.last {
		return false
	}
	d.last = errText
	return true
}

// Reset forgets the last notified error, so the next error notifies
// even if it repeats an earlier one.
func (d *ErrorDeduplicator) Reset() {
	d.last = ""
}
