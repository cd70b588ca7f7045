package hlc

import (
	"sync"
	"time"
)

// Source abstracts the physical clock for testing purposes. Readings are
// milliseconds since the Unix epoch. A Source must not block; it is allowed
// to return a value less than or equal to a previous reading (e.g. after an
// NTP correction), and the clock treats every reading as untrusted input.
type Source interface {
	Now() int64
}

// SystemSource reads the system wall clock.
type SystemSource struct{}

// Now returns the current time in milliseconds since the Unix epoch.
func (SystemSource) Now() int64 {
	return time.Now().UnixMilli()
}

// ManualSource is a deterministic Source under the caller's control,
// intended for tests and simulations. The zero value reads as 0.
type ManualSource struct {
	mu sync.Mutex
	ms int64
}

// NewManualSource creates a manual source pinned at ms.
func NewManualSource(ms int64) *ManualSource {
	return &ManualSource{ms: ms}
}

// Now returns the currently pinned reading.
func (m *ManualSource) Now() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ms
}

// Set pins the source to the given reading. Values may move backward;
// clocks are expected to tolerate regressions.
func (m *ManualSource) Set(ms int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ms = ms
}

// Advance moves the source forward (or backward, if delta is negative).
func (m *ManualSource) Advance(delta int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ms += delta
}
