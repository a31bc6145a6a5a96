package engine

import (
	"sync"
	"time"
)

// TimeProvider abstracts the wall clock so frame timing is testable
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider returns time.Now, which carries a monotonic reading
type MonotonicTimeProvider struct{}

func (MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// MockTimeProvider provides a controllable time source for testing
type MockTimeProvider struct {
	mu          sync.RWMutex
	currentTime time.Time
}

func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{currentTime: start}
}

func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// Advance moves the mocked time forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}

// FrameClock turns successive ticks into frame deltas in seconds
// The first tick yields 0; deltas above maxDelta are capped so a stalled host cannot tunnel the avatar
type FrameClock struct {
	provider TimeProvider
	maxDelta time.Duration
	last     time.Time
	started  bool
}

func NewFrameClock(provider TimeProvider, maxDelta time.Duration) *FrameClock {
	if provider == nil {
		provider = MonotonicTimeProvider{}
	}
	return &FrameClock{provider: provider, maxDelta: maxDelta}
}

// Tick returns seconds elapsed since the previous Tick
func (c *FrameClock) Tick() float64 {
	now := c.provider.Now()
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}
	d := now.Sub(c.last)
	c.last = now
	if d < 0 {
		return 0
	}
	if c.maxDelta > 0 && d > c.maxDelta {
		d = c.maxDelta
	}
	return d.Seconds()
}
