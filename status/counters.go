// Package status exposes simulation counters that any goroutine may read
package status

import (
	"math"
	"sync/atomic"
)

// Counters is the session's live tally
// The engine is the only writer; the status bar and tests read through Stats
// Must not be copied after first use
type Counters struct {
	Frames      atomic.Int64 // valid frames simulated
	Taps        atomic.Int64 // taps received from the host
	TapsDropped atomic.Int64 // queue overflow plus taps behind a restart
	Restarts    atomic.Int64
	GameOvers   atomic.Int64
	Recycles    atomic.Int64

	Score atomic.Int64
	Best  atomic.Int64

	lastDelta atomic.Uint64 // float64 bits
}

func NewCounters() *Counters {
	return &Counters{}
}

// SetLastDelta records the dt of the most recent valid frame
func (c *Counters) SetLastDelta(dt float64) {
	c.lastDelta.Store(math.Float64bits(dt))
}

func (c *Counters) LastDelta() float64 {
	return math.Float64frombits(c.lastDelta.Load())
}

// Stats is a point-in-time copy of Counters
// Fields are loaded one by one, so values may straddle a frame boundary
type Stats struct {
	Frames      int64
	Taps        int64
	TapsDropped int64
	Restarts    int64
	GameOvers   int64
	Recycles    int64
	Score       int64
	Best        int64
	LastDelta   float64
}

// Stats loads every counter
func (c *Counters) Stats() Stats {
	return Stats{
		Frames:      c.Frames.Load(),
		Taps:        c.Taps.Load(),
		TapsDropped: c.TapsDropped.Load(),
		Restarts:    c.Restarts.Load(),
		GameOvers:   c.GameOvers.Load(),
		Recycles:    c.Recycles.Load(),
		Score:       c.Score.Load(),
		Best:        c.Best.Load(),
		LastDelta:   c.LastDelta(),
	}
}
