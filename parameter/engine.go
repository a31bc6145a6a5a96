package parameter

import "time"

// Host Timing
const (
	// FrameUpdateInterval is the default host frame interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps a single frame's dt so a stalled host does not tunnel through obstacles
	MaxFrameDelta = 100 * time.Millisecond
)

// Input Queue
const (
	// TapQueueSize is the fixed capacity of the tap ring buffer
	TapQueueSize = 64

	// TapBufferMask is the bitmask for fast modulo operations (64 - 1)
	TapBufferMask = 63
)
