package puppet

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/spritelathe/common"
)

// Rotation thresholds, in degrees of smoothed head rotation.
const (
	moveThresholdDeg = 4.0
	runThresholdDeg  = 25.0
)

// Damping factors for the exponential rotation/pitch smoothing.
const (
	dampControlled   = 0.15
	dampAirborne     = 0.05
	dampGroundedIdle = 0.25
)

// bodyLag is the fraction of the head rotation target the body chases.
const bodyLag = 0.95

// State is the mutable kinematic register bank for the one active puppet.
// It lives for the whole session; switching actors resets only the pose
// registers (see ResetPose).
type State struct {
	// ClockMs is the elapsed animation clock in milliseconds.
	ClockMs float64

	// Vertical physics. Y grows downward; GroundY is the rest position.
	Y       float64
	VY      float64
	GroundY float64

	// LastLean is the sign of the last lateral lean (-1 or +1), latched
	// while moving and consumed for airborne sequence selection.
	LastLean float64

	// Smoothed pose.
	BodyRotation float64
	HeadRotation float64
	Pitch        float64

	// Pose latched at jump takeoff, held as the target while airborne.
	AirRotation float64
	AirPitch    float64
	// JumpStartMs is the animation clock at takeoff, so airborne cycles
	// start at their first frame.
	JumpStartMs float64

	// Pointer contact.
	PointerDown bool
	Pointer     cp.Vector
	SwipeStartY float64
	Swiping     bool

	// Per-part last-valid source columns, the fallback for invalid
	// frame lookups, plus the grounded posture reference.
	LatchedColumn [partCount]int
	HasLatch      [partCount]bool
	GroundColumn  [partCount]int
}

// NewState creates kinematic state resting at the given ground row.
func NewState(groundY float64) *State {
	return &State{Y: groundY, GroundY: groundY}
}

// ResetPose zeroes rotation, pitch, and the animation clock when the
// active actor kind changes. Physical position and velocity carry over.
func (s *State) ResetPose() {
	s.ClockMs = 0
	s.BodyRotation = 0
	s.HeadRotation = 0
	s.Pitch = 0
	s.AirRotation = 0
	s.AirPitch = 0
	s.JumpStartMs = 0
	s.LastLean = 0
	s.HasLatch = [partCount]bool{}
	s.LatchedColumn = [partCount]int{}
	s.GroundColumn = [partCount]int{}
}

// Airborne reports whether the puppet is off the ground.
func (s *State) Airborne() bool {
	return s.Y < s.GroundY
}

// Moving reports whether the smoothed head rotation exceeds the motion
// threshold.
func (s *State) Moving() bool {
	return math.Abs(s.HeadRotation) > moveThresholdDeg
}

// Running reports whether the smoothed head rotation exceeds the run
// threshold.
func (s *State) Running() bool {
	return math.Abs(s.HeadRotation) > runThresholdDeg
}

// BeginContact records a pointer contact-start at screen coordinates.
func (s *State) BeginContact(x, y float64) {
	s.PointerDown = true
	s.Pointer = cp.Vector{X: x, Y: y}
	s.SwipeStartY = y
	s.Swiping = true
}

// MoveContact updates the live pointer position during contact.
func (s *State) MoveContact(x, y float64) {
	if !s.PointerDown {
		return
	}
	s.Pointer = cp.Vector{X: x, Y: y}
}

// EndContact ends the pointer contact at the given release coordinates
// and fires a jump when the contact was a recognized upward swipe. It
// reports whether a jump was triggered.
func (s *State) EndContact(x, y float64) bool {
	s.PointerDown = false
	swiped := s.Swiping
	s.Swiping = false

	if !swiped || s.Airborne() {
		return false
	}
	if s.SwipeStartY-y <= common.SwipeJumpThreshold {
		return false
	}

	s.VY = common.JumpVelocity
	s.AirRotation = s.HeadRotation
	s.AirPitch = s.Pitch
	s.JumpStartMs = s.ClockMs
	return true
}

// Step advances the kinematic state by one tick of dtMs milliseconds:
// vertical integration, then rotation/pitch target selection and
// exponential smoothing. The actor supplies the grounded-idle damping
// override; it may be nil before the first actor is ready.
func (s *State) Step(actor *Actor, dtMs float64) {
	s.ClockMs += dtMs

	if s.Airborne() || s.VY != 0 {
		s.VY += common.Gravity
		s.Y += s.VY
		if s.Y >= s.GroundY {
			s.Y = s.GroundY
			s.VY = 0
		}
	}

	headTarget, pitchTarget := s.poseTargets()
	bodyTarget := headTarget * bodyLag

	damp := s.dampFactor(actor)
	s.HeadRotation = cp.Lerp(s.HeadRotation, headTarget, damp)
	s.BodyRotation = cp.Lerp(s.BodyRotation, bodyTarget, damp)
	s.Pitch = cp.Lerp(s.Pitch, pitchTarget, damp)

	if s.Moving() && !s.Airborne() {
		if s.HeadRotation < 0 {
			s.LastLean = -1
		} else {
			s.LastLean = 1
		}
	}
}

func (s *State) poseTargets() (rotation, pitch float64) {
	switch {
	case s.PointerDown:
		off := s.Pointer.Sub(cp.Vector{X: common.BaseWidth / 2, Y: common.BaseHeight / 2})
		rotation = math.Atan2(off.X, common.PointerDepth) * 180 / math.Pi
		pitch = cp.Clamp(off.Y*0.15, -common.PitchClampDeg, common.PitchClampDeg)
	case s.Airborne():
		rotation = s.AirRotation
		pitch = s.AirPitch
	}
	return rotation, pitch
}

func (s *State) dampFactor(actor *Actor) float64 {
	switch {
	case s.PointerDown:
		return dampControlled
	case s.Airborne():
		return dampAirborne
	}
	if actor != nil && actor.Behavior != nil {
		if f, ok := actor.Behavior.IdleDampOverride(); ok {
			return f
		}
	}
	return dampGroundedIdle
}
