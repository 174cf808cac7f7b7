package metrics

import "time"

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncHomeServed is a no-op.
func (n *NoopRecorder) IncHomeServed() {}

// IncTimeServed is a no-op.
func (n *NoopRecorder) IncTimeServed() {}

// IncResponse is a no-op.
func (n *NoopRecorder) IncResponse(status int) {}

// ObserveRequestDuration is a no-op.
func (n *NoopRecorder) ObserveRequestDuration(duration time.Duration) {}
