package physics

import "github.com/lixenwraith/flapper/vmath"

// Hit classifies what the avatar collided with
type Hit uint8

const (
	HitNone Hit = iota
	HitGround
	HitCeiling
	HitObstacle
)

func (h Hit) String() string {
	switch h {
	case HitNone:
		return "none"
	case HitGround:
		return "ground"
	case HitCeiling:
		return "ceiling"
	case HitObstacle:
		return "obstacle"
	default:
		return "unknown"
	}
}

// Detector tests the avatar against the playfield bounds and obstacle rectangles
// The avatar is reduced to one representative point, its center, for every test
type Detector struct {
	GroundMargin float64 // distance above viewport bottom that counts as ground
	CeilingY     float64
}

// Check returns true if the avatar is out of bounds or inside any obstacle
func (d Detector) Check(avatar vmath.Rect, obstacles []vmath.Rect, viewportHeight float64) bool {
	return d.Classify(avatar, obstacles, viewportHeight) != HitNone
}

// Classify reports the first collision found; bounds are tested before obstacles
func (d Detector) Classify(avatar vmath.Rect, obstacles []vmath.Rect, viewportHeight float64) Hit {
	p := avatar.Center()

	// NaN positions compare false everywhere and would pass as airborne
	if !vmath.IsFinite(p.Y) {
		return HitGround
	}
	if p.Y > viewportHeight-d.GroundMargin {
		return HitGround
	}
	if p.Y < d.CeilingY {
		return HitCeiling
	}

	for _, r := range obstacles {
		if r.Contains(p) {
			return HitObstacle
		}
	}
	return HitNone
}
