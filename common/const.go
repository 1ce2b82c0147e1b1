package common

// Base render resolution of the host window.
const (
	BaseWidth  = 960
	BaseHeight = 640
)

// Vertical physics tuning, in pixels per tick (60 ticks per second).
const (
	Gravity      = 0.6
	JumpVelocity = -11.0
)

// Pointer gesture tuning.
const (
	// SwipeJumpThreshold is the minimum upward pointer travel, in pixels
	// from contact-start to release, that triggers a jump.
	SwipeJumpThreshold = 50.0
	// PointerDepth is the fixed depth constant the horizontal pointer
	// offset is measured against when deriving a rotation target.
	PointerDepth = 260.0
	// PitchClampDeg bounds the head pitch target in degrees.
	PitchClampDeg = 30.0
)
