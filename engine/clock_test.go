package engine

import (
	"testing"
	"time"
)

func TestFrameClockFirstTickIsZero(t *testing.T) {
	mock := NewMockTimeProvider(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	clock := NewFrameClock(mock, 100*time.Millisecond)

	if dt := clock.Tick(); dt != 0 {
		t.Fatalf("first tick = %v, want 0", dt)
	}

	mock.Advance(16 * time.Millisecond)
	if dt := clock.Tick(); dt != 0.016 {
		t.Errorf("tick = %v, want 0.016", dt)
	}

	// No time passed: zero delta, the game treats it as a no-op frame
	if dt := clock.Tick(); dt != 0 {
		t.Errorf("repeat tick = %v, want 0", dt)
	}
}

func TestFrameClockCapsStall(t *testing.T) {
	mock := NewMockTimeProvider(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	clock := NewFrameClock(mock, 100*time.Millisecond)
	clock.Tick()

	mock.Advance(3 * time.Second)
	if dt := clock.Tick(); dt != 0.1 {
		t.Errorf("stalled tick = %v, want cap 0.1", dt)
	}
}

func TestFrameClockUncapped(t *testing.T) {
	mock := NewMockTimeProvider(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	clock := NewFrameClock(mock, 0)
	clock.Tick()

	mock.Advance(2 * time.Second)
	if dt := clock.Tick(); dt != 2 {
		t.Errorf("tick = %v, want 2", dt)
	}
}

func TestFrameClockDefaultsToMonotonic(t *testing.T) {
	clock := NewFrameClock(nil, 0)
	clock.Tick()
	time.Sleep(2 * time.Millisecond)
	if dt := clock.Tick(); dt <= 0 {
		t.Errorf("real clock tick = %v, want > 0", dt)
	}
}
