package physics

import "github.com/lixenwraith/flapper/vmath"

// Body is the avatar's vertical kinematic state
// Y is not constrained here; leaving the playfield is detected by Detector
type Body struct {
	Y  float64 // top edge, px
	VY float64 // px/s, negative is upward
}

// Integrate advances the body by dt seconds under constant gravity: p = p + v*dt; v = v + g*dt
// Position uses the start-of-interval velocity. Returns false without mutating when dt is not a positive finite value
func Integrate(b *Body, gravity, dt float64) bool {
	if !(dt > 0) || !vmath.IsFinite(dt) {
		return false
	}
	b.Y += b.VY * dt
	b.VY += gravity * dt
	return true
}

// SetImpulse overrides velocity (jump)
func SetImpulse(b *Body, vy float64) {
	b.VY = vy
}

// Reset places the body at y at rest
func Reset(b *Body, y float64) {
	b.Y = y
	b.VY = 0
}

// Bounds returns the avatar rectangle for a body at fixed x with the given size
func Bounds(b Body, x, w, h float64) vmath.Rect {
	return vmath.Rect{X: x, Y: b.Y, W: w, H: h}
}
