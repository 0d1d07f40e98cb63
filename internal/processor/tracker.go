package processor

import "sync/atomic"

// DefaultMaxErrors is the error budget used when none is configured.
const DefaultMaxErrors = 100

// ErrorTracker counts per-line and per-field failures against a fixed
// maximum. The counter is atomic so the tracker stays safe under a future
// parallel orchestrator, even though the current one is sequential.
type ErrorTracker struct {
	max   int64
	count atomic.Int64
}

// NewErrorTracker returns a tracker with the given budget. A maximum of
// zero or less falls back to DefaultMaxErrors.
func NewErrorTracker(max int) *ErrorTracker {
	if max <= 0 {
		max = DefaultMaxErrors
	}
	return &ErrorTracker{max: int64(max)}
}

// Record counts one failure.
func (t *ErrorTracker) Record() {
	t.count.Add(1)
}

// Exhausted reports whether the budget has been used up. Once true,
// processing must stop entirely.
func (t *ErrorTracker) Exhausted() bool {
	return t.count.Load() >= t.max
}

// Count returns the number of failures recorded so far.
func (t *ErrorTracker) Count() int {
	return int(t.count.Load())
}
