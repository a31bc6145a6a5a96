// Package obstacle moves the single top/bottom obstacle pair across the viewport and recycles it
package obstacle

import (
	"math"

	"github.com/lixenwraith/flapper/vmath"
)

// Geometry is the fixed layout of an obstacle pair
type Geometry struct {
	Width, Height  float64
	GapShift       float64 // lifts both rectangles so a zero offset centers the gap
	GapRange       float64 // offsets are clamped to [-GapRange, +GapRange]
	RightEdge      float64 // spawn and recycle X
	RecycleX       float64 // recycle once X is at or below this line
	ViewportHeight float64
}

// Sweep describes one Advance call
// From and To bracket the continuous motion; To is taken before any recycle jump, so a reset is never part of the sweep
type Sweep struct {
	From, To float64
	Recycled bool
}

// Track owns the active obstacle pair
// All methods must be called from the simulation goroutine; X and GapOffset are always replaced together
type Track struct {
	geo    Geometry
	source GapSource

	x         float64
	gapOffset float64
	recycles  uint64
}

// NewTrack creates a track with the pair at the right edge and a freshly drawn gap
func NewTrack(geo Geometry, source GapSource) *Track {
	t := &Track{geo: geo, source: source}
	t.Reset()
	return t
}

// Advance moves the pair left by speed*dt and recycles it once it reaches RecycleX
// Non-positive or non-finite dt leaves the track untouched
func (t *Track) Advance(dt, speed float64) Sweep {
	sweep := Sweep{From: t.x, To: t.x}
	if !(dt > 0) || !vmath.IsFinite(dt) || !vmath.IsFinite(speed) {
		return sweep
	}

	sweep.To = t.x - speed*dt
	if sweep.To <= t.geo.RecycleX {
		t.respawn()
		t.recycles++
		sweep.Recycled = true
		return sweep
	}
	t.x = sweep.To
	return sweep
}

// Reset returns the pair to the right edge with a new gap
func (t *Track) Reset() {
	t.respawn()
}

func (t *Track) respawn() {
	offset := t.clampOffset(t.source.NextGapOffset())
	t.x, t.gapOffset = t.geo.RightEdge, offset
}

func (t *Track) clampOffset(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return vmath.Clamp(v, -t.geo.GapRange, t.geo.GapRange)
}

func (t *Track) X() float64 { return t.x }
func (t *Track) GapOffset() float64 { return t.gapOffset }
func (t *Track) Recycles() uint64 { return t.recycles }

// TopY is the Y of the top rectangle's upper edge
func (t *Track) TopY() float64 {
	return t.gapOffset - t.geo.GapShift
}

// BottomY is the Y of the bottom rectangle's upper edge
func (t *Track) BottomY() float64 {
	return t.geo.ViewportHeight + t.gapOffset - t.geo.GapShift
}

// Rects returns the top and bottom obstacle rectangles
func (t *Track) Rects() [2]vmath.Rect {
	return [2]vmath.Rect{
		{X: t.x, Y: t.TopY(), W: t.geo.Width, H: t.geo.Height},
		{X: t.x, Y: t.BottomY(), W: t.geo.Width, H: t.geo.Height},
	}
}
