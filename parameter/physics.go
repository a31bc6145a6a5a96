package parameter

// Avatar Physics
// Units are pixels and seconds, +Y points down
const (
	// Gravity is the constant downward acceleration applied every frame (px/s²)
	Gravity = 1000.0

	// JumpForce is the vertical velocity set on tap, negative is upward (px/s)
	JumpForce = -360.0
)

// Avatar Rotation
// Vertical velocity is mapped linearly onto a tilt angle and clamped at both ends
const (
	RotationVelocityMin = -500.0
	RotationVelocityMax = 500.0

	// RotationAngleMin/Max are in radians
	RotationAngleMin = -0.7
	RotationAngleMax = 0.7
)
