package parameter

// Viewport defaults, used when the host does not supply its own dimensions
const (
	ViewportWidth  = 400.0
	ViewportHeight = 800.0
)

// Avatar Geometry
const (
	// AvatarWidth and AvatarHeight are the draw size of the avatar sprite
	AvatarWidth  = 64.0
	AvatarHeight = 48.0

	// AvatarXFraction places the avatar at this fraction of viewport width
	AvatarXFraction = 0.25

	// StartYFraction is the spawn height as a fraction of viewport height
	StartYFraction = 1.0 / 3.0
)

// Boundaries
const (
	// GroundMargin is the distance from the viewport bottom at which the avatar hits the ground
	GroundMargin = 100.0

	// GroundDrawOffset is where the ground strip is drawn, measured up from the viewport bottom
	GroundDrawOffset = 50.0

	// CeilingY is the top boundary, anything above it is out of bounds
	CeilingY = 0.0
)

// Obstacles
const (
	ObstacleWidth  = 120.0
	ObstacleHeight = 580.0

	// GapShift lifts both rectangles so a zero offset centers the gap
	GapShift = 320.0

	// GapRange bounds the random gap offset to [-GapRange, +GapRange]
	GapRange = 200.0

	// RecycleX is the off-screen-left line at or past which an obstacle is recycled
	RecycleX = -150.0

	// ScrollTraverseSeconds is how long an obstacle takes from right edge to RecycleX at multiplier 1
	ScrollTraverseSeconds = 3.0

	// SpeedMultiplierBase is the multiplier applied on start and on every restart
	SpeedMultiplierBase = 1.0
)

// Scoring
const (
	// ScoreMargin is subtracted from the avatar X to place the scoring line
	ScoreMargin = 100.0
)
