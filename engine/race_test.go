package engine

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/lixenwraith/flapper/config"
)

// TestConcurrentTapsAndReaders runs producers and readers against the frame loop
// Run with -race; readers check every snapshot is internally consistent
func TestConcurrentTapsAndReaders(t *testing.T) {
	cfg := config.Default()
	g := newTestGame(t, cfg)

	var stop atomic.Bool
	var wg sync.WaitGroup
	var torn atomic.Int64

	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for !stop.Load() {
				g.OnTap()
				runtime.Gosched()
			}
		}()
	}

	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var lastFrame uint64
			for !stop.Load() {
				snap := g.Snapshot()
				if snap.Frame < lastFrame {
					torn.Add(1)
				}
				lastFrame = snap.Frame
				// Obstacle rects always derive from the published x and gap
				if snap.Obstacle.Top.X != snap.Obstacle.X || snap.Obstacle.Bottom.X != snap.Obstacle.X {
					torn.Add(1)
				}
				if snap.Obstacle.Top.Y != snap.Obstacle.GapOffset-cfg.Obstacle.GapShift {
					torn.Add(1)
				}
			}
		}()
	}

	for i := 0; i < 2000; i++ {
		g.OnFrame(frameDt)
	}
	stop.Store(true)
	wg.Wait()

	if n := torn.Load(); n != 0 {
		t.Fatalf("%d inconsistent snapshots observed", n)
	}
	if g.Snapshot().Frame != 2000 {
		t.Errorf("frame = %d, want 2000", g.Snapshot().Frame)
	}
}
