package engine

import (
	"github.com/lixenwraith/flapper/physics"
	"github.com/lixenwraith/flapper/vmath"
)

// AvatarView is the render-facing avatar state
type AvatarView struct {
	Bounds   vmath.Rect
	VY       float64
	Rotation float64 // radians, clamped
}

// ObstacleView is the render-facing obstacle pair state
type ObstacleView struct {
	X         float64
	GapOffset float64
	Top       vmath.Rect
	Bottom    vmath.Rect
}

// Snapshot is an immutable copy of everything a renderer needs for one frame
// Published once per frame after all checks, so fields always belong to the same frame
type Snapshot struct {
	Frame    uint64
	Round    uint64
	Phase    Phase
	Score    int
	Best     int
	Hit      physics.Hit // cause of the last game over, HitNone while playing
	Avatar   AvatarView
	Obstacle ObstacleView

	ViewportWidth  float64
	ViewportHeight float64
	GroundDrawY    float64 // top of the drawn ground strip, below the collision line
	ScoreLine      float64
}
