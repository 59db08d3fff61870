package clock

import (
	"sync"
	"time"
)

// Clock abstracts time so session expiry can be tested.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system time in UTC.
type RealClock struct{}

// NewRealClock creates a new RealClock.
func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now().UTC()
}

// MockClock is a settable clock. It is safe for concurrent use, since the
// session store reads it from request goroutines.
type MockClock struct {
	mu      sync.RWMutex
	current time.Time
}

// NewMockClock creates a new MockClock starting at the given time.
func NewMockClock(startTime time.Time) *MockClock {
	return &MockClock{current: startTime}
}

func (m *MockClock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Set sets the mock current time.
func (m *MockClock) Set(t time.Time) {
	m.mu.Lock()
	m.current = t
	m.mu.Unlock()
}

// Advance moves the clock forward by d.
func (m *MockClock) Advance(d time.Duration) {
	m.mu.Lock()
	m.current = m.current.Add(d)
	m.mu.Unlock()
}
