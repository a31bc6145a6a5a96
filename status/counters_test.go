package status

import (
	"sync"
	"testing"
)

func TestStatsCopiesCounters(t *testing.T) {
	c := NewCounters()
	c.Frames.Add(3)
	c.Taps.Add(2)
	c.TapsDropped.Add(1)
	c.Score.Store(4)
	c.Best.Store(6)
	c.SetLastDelta(0.016)

	got := c.Stats()
	want := Stats{Frames: 3, Taps: 2, TapsDropped: 1, Score: 4, Best: 6, LastDelta: 0.016}
	if got != want {
		t.Fatalf("Stats = %+v, want %+v", got, want)
	}

	// Stats is a copy, later writes do not leak into it
	c.Frames.Add(1)
	if got.Frames != 3 {
		t.Errorf("copied Frames changed to %d", got.Frames)
	}
}

func TestLastDeltaZeroValue(t *testing.T) {
	var c Counters
	if c.LastDelta() != 0 {
		t.Fatalf("zero LastDelta = %v", c.LastDelta())
	}
}

func TestConcurrentWritersAndReader(t *testing.T) {
	c := NewCounters()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.Taps.Add(1)
				c.SetLastDelta(float64(j))
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for j := 0; j < 100; j++ {
			if s := c.Stats(); s.Taps < 0 || s.Taps > 800 {
				t.Errorf("taps out of range: %d", s.Taps)
			}
		}
	}()
	wg.Wait()

	if got := c.Stats().Taps; got != 800 {
		t.Errorf("taps = %d, want 800", got)
	}
}
