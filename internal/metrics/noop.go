package metrics

import "time"

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncVerificationSuccess is a no-op.
func (n *NoopRecorder) IncVerificationSuccess() {}

// IncVerificationFailure is a no-op.
func (n *NoopRecorder) IncVerificationFailure() {}

// IncVerificationError is a no-op.
func (n *NoopRecorder) IncVerificationError() {}

// IncRateLimited is a no-op.
func (n *NoopRecorder) IncRateLimited() {}

// ObserveVerificationDuration is a no-op.
func (n *NoopRecorder) ObserveVerificationDuration(duration time.Duration) {}
