package metrics

import (
	"sync/atomic"
	"time"
)

// Snapshot captures current in-memory counters.
type Snapshot struct {
	HomeServed             uint64
	TimeServed             uint64
	Responses2xx           uint64
	Responses4xx           uint64
	Responses5xx           uint64
	RequestDurationCount   uint64
	RequestDurationTotalNs int64
}

// InMemoryRecorder keeps counters in process memory.
type InMemoryRecorder struct {
	homeServed             atomic.Uint64
	timeServed             atomic.Uint64
	responses2xx           atomic.Uint64
	responses4xx           atomic.Uint64
	responses5xx           atomic.Uint64
	requestDurationCount   atomic.Uint64
	requestDurationTotalNs atomic.Int64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		HomeServed:             m.homeServed.Load(),
		TimeServed:             m.timeServed.Load(),
		Responses2xx:           m.responses2xx.Load(),
		Responses4xx:           m.responses4xx.Load(),
		Responses5xx:           m.responses5xx.Load(),
		RequestDurationCount:   m.requestDurationCount.Load(),
		RequestDurationTotalNs: m.requestDurationTotalNs.Load(),
	}
}

// IncHomeServed increments the welcome page counter.
func (m *InMemoryRecorder) IncHomeServed() {
	m.homeServed.Add(1)
}

// IncTimeServed increments the time endpoint counter.
func (m *InMemoryRecorder) IncTimeServed() {
	m.timeServed.Add(1)
}

// IncResponse counts a response by status class.
// 1xx and 3xx are not tracked.
func (m *InMemoryRecorder) IncResponse(status int) {
	switch {
	case status >= 500:
		m.responses5xx.Add(1)
	case status >= 400:
		m.responses4xx.Add(1)
	case status >= 200 && status < 300:
		m.responses2xx.Add(1)
	}
}

// ObserveRequestDuration records request duration.
func (m *InMemoryRecorder) ObserveRequestDuration(duration time.Duration) {
	m.requestDurationCount.Add(1)
	m.requestDurationTotalNs.Add(duration.Nanoseconds())
}
