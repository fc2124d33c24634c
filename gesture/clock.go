package gesture

import (
	"sync"
	"time"
)

// TimeProvider supplies timestamps for touch samples
type TimeProvider interface {
	Now() time.Time
}

// systemClock returns wall time with monotonic reading
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock is the default TimeProvider
var SystemClock TimeProvider = systemClock{}

// MockTimeProvider is a manually stepped clock
// Tests advance it between touch callbacks to give samples exact timestamps
type MockTimeProvider struct {
	mu          sync.RWMutex
	currentTime time.Time
}

// NewMockTimeProvider returns a clock frozen at startTime
func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{currentTime: startTime}
}

// Now returns the timestamp the next touch sample will carry
func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// SetTime jumps the clock to t, backwards jumps are allowed
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = t
}

// Advance adds d to the clock, typically the interval between two touch events
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}
