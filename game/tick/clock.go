package tick

import "time"

// Clock is a monotonic time source.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock. time.Now carries a monotonic reading,
// so differences between two calls never go backwards.
type SystemClock struct{}

// NewSystemClock creates a new monotonic clock
func NewSystemClock() *SystemClock {
	return &SystemClock{}
}

// Now returns the current time with monotonic clock reading
func (SystemClock) Now() time.Time {
	return time.Now()
}

// MockClock is a manually driven clock for tests and replays.
type MockClock struct {
	now time.Time
}

// NewMockClock creates a mock clock stopped at start.
func NewMockClock(start time.Time) *MockClock {
	return &MockClock{now: start}
}

// Now returns the current mocked time
func (m *MockClock) Now() time.Time {
	return m.now
}

// Set moves the clock to t. Moving it backwards is allowed here so tests
// can check that the counter never reports a smaller tick.
func (m *MockClock) Set(t time.Time) {
	m.now = t
}

// Advance moves the clock forward by d
func (m *MockClock) Advance(d time.Duration) {
	m.now = m.now.Add(d)
}
