package metrics

import (
	"sync/atomic"
	"time"
)

// Snapshot captures current in-memory counters.
type Snapshot struct {
	VerificationSuccesses       uint64
	VerificationFailures        uint64
	VerificationErrors          uint64
	RateLimited                 uint64
	VerificationDurationCount   uint64
	VerificationDurationTotalNs int64
}

// InMemoryRecorder stores metrics in memory for tests and status reporting.
type InMemoryRecorder struct {
	verificationSuccesses       uint64
	verificationFailures        uint64
	verificationErrors          uint64
	rateLimited                 uint64
	verificationDurationCount   uint64
	verificationDurationTotalNs int64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		VerificationSuccesses:       atomic.LoadUint64(&m.verificationSuccesses),
		VerificationFailures:        atomic.LoadUint64(&m.verificationFailures),
		VerificationErrors:          atomic.LoadUint64(&m.verificationErrors),
		RateLimited:                 atomic.LoadUint64(&m.rateLimited),
		VerificationDurationCount:   atomic.LoadUint64(&m.verificationDurationCount),
		VerificationDurationTotalNs: atomic.LoadInt64(&m.verificationDurationTotalNs),
	}
}

// IncVerificationSuccess increments the success counter.
func (m *InMemoryRecorder) IncVerificationSuccess() {
	atomic.AddUint64(&m.verificationSuccesses, 1)
}

// IncVerificationFailure increments the failed-lookup counter.
func (m *InMemoryRecorder) IncVerificationFailure() {
	atomic.AddUint64(&m.verificationFailures, 1)
}

// IncVerificationError increments the system-error counter.
func (m *InMemoryRecorder) IncVerificationError() {
	atomic.AddUint64(&m.verificationErrors, 1)
}

// IncRateLimited increments the rejected-request counter.
func (m *InMemoryRecorder) IncRateLimited() {
	atomic.AddUint64(&m.rateLimited, 1)
}

// ObserveVerificationDuration records handling duration.
func (m *InMemoryRecorder) ObserveVerificationDuration(duration time.Duration) {
	atomic.AddUint64(&m.verificationDurationCount, 1)
	atomic.AddInt64(&m.verificationDurationTotalNs, duration.Nanoseconds())
}
