package puppet

import (
	"math"
	"testing"

	"github.com/milk9111/spritelathe/common"
)

const dt = 1000.0 / 60

func TestSwipeJumpTrigger(t *testing.T) {
	cases := []struct {
		name     string
		startY   float64
		endY     float64
		wantJump bool
	}{
		{"long_upward_swipe", 400, 300, true},
		{"threshold_not_met", 400, 360, false},
		{"downward_swipe", 300, 400, false},
		{"exact_threshold_not_met", 400, 350, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := NewState(500)
			s.BeginContact(100, c.startY)
			jumped := s.EndContact(100, c.endY)
			if jumped != c.wantJump {
				t.Fatalf("EndContact jump = %v, want %v", jumped, c.wantJump)
			}
			if c.wantJump && s.VY != common.JumpVelocity {
				t.Fatalf("jump velocity = %v, want %v", s.VY, common.JumpVelocity)
			}
			if !c.wantJump && s.VY != 0 {
				t.Fatalf("velocity must stay 0 without a jump, got %v", s.VY)
			}
		})
	}
}

func TestJumpLatchesPose(t *testing.T) {
	s := NewState(500)
	s.HeadRotation = 20
	s.Pitch = -8

	s.BeginContact(100, 400)
	if !s.EndContact(100, 300) {
		t.Fatalf("expected jump")
	}
	if s.AirRotation != 20 || s.AirPitch != -8 {
		t.Fatalf("takeoff pose not latched: rot=%v pitch=%v", s.AirRotation, s.AirPitch)
	}
	if s.JumpStartMs != s.ClockMs {
		t.Fatalf("jump start clock not recorded")
	}
}

func TestNoJumpWhileAirborne(t *testing.T) {
	s := NewState(500)
	s.BeginContact(100, 400)
	s.EndContact(100, 300)
	s.Step(nil, dt) // leave the ground

	if !s.Airborne() {
		t.Fatalf("expected airborne after jump step")
	}
	s.BeginContact(100, 400)
	if s.EndContact(100, 200) {
		t.Fatalf("swipe must not re-trigger a jump mid-air")
	}
}

func TestGravityGroundInvariant(t *testing.T) {
	s := NewState(500)
	s.BeginContact(100, 400)
	s.EndContact(100, 300)

	landed := false
	for i := 0; i < 600; i++ {
		s.Step(nil, dt)
		if s.Y > s.GroundY {
			t.Fatalf("position %v passed below ground %v at tick %d", s.Y, s.GroundY, i)
		}
		if s.Y == s.GroundY && i > 0 {
			if s.VY != 0 {
				t.Fatalf("velocity must be exactly 0 on landing, got %v", s.VY)
			}
			landed = true
			break
		}
	}
	if !landed {
		t.Fatalf("puppet never landed")
	}
}

func TestDampingConvergence(t *testing.T) {
	s := NewState(500)
	// hold the pointer right of center; the rotation target is constant
	s.BeginContact(common.BaseWidth/2+200, common.BaseHeight/2)

	target := math.Atan2(200, common.PointerDepth) * 180 / math.Pi

	prev := s.HeadRotation
	for i := 0; i < 400; i++ {
		s.Step(nil, dt)
		if s.HeadRotation < prev {
			t.Fatalf("rotation regressed at tick %d: %v -> %v", i, prev, s.HeadRotation)
		}
		if s.HeadRotation > target+1e-9 {
			t.Fatalf("rotation overshot target %v: %v", target, s.HeadRotation)
		}
		prev = s.HeadRotation
	}
	if target-s.HeadRotation > 0.01 {
		t.Fatalf("rotation did not converge: %v vs target %v", s.HeadRotation, target)
	}
}

func TestBodyLagsHead(t *testing.T) {
	s := NewState(500)
	s.BeginContact(common.BaseWidth/2+200, common.BaseHeight/2)
	for i := 0; i < 400; i++ {
		s.Step(nil, dt)
	}
	if s.BodyRotation >= s.HeadRotation {
		t.Fatalf("body rotation %v should trail head rotation %v", s.BodyRotation, s.HeadRotation)
	}
	wantBody := s.HeadRotation * 0.95
	if math.Abs(s.BodyRotation-wantBody) > 0.5 {
		t.Fatalf("body rotation %v, want about %v", s.BodyRotation, wantBody)
	}
}

func TestTargetsRelaxToZeroWhenIdle(t *testing.T) {
	s := NewState(500)
	s.HeadRotation = 30
	s.Pitch = 10
	for i := 0; i < 600; i++ {
		s.Step(nil, dt)
	}
	if math.Abs(s.HeadRotation) > 0.01 || math.Abs(s.Pitch) > 0.01 {
		t.Fatalf("idle pose did not relax to zero: rot=%v pitch=%v", s.HeadRotation, s.Pitch)
	}
}

func TestIdleDampOverride(t *testing.T) {
	def := NewState(500)
	def.HeadRotation = 30
	override := NewState(500)
	override.HeadRotation = 30

	strider := testActor(striderBehavior{})
	drifter := testActor(drifterBehavior{})

	def.Step(strider, dt)
	override.Step(drifter, dt)

	// drifter overrides the grounded-idle damping with a larger factor,
	// so it converges faster
	if override.HeadRotation >= def.HeadRotation {
		t.Fatalf("override damp %v should converge faster than default %v", override.HeadRotation, def.HeadRotation)
	}
}

func TestResetPosePreservesPhysics(t *testing.T) {
	s := NewState(500)
	s.BeginContact(100, 400)
	s.EndContact(100, 300)
	s.Step(nil, dt)

	y, vy := s.Y, s.VY
	s.HeadRotation = 12
	s.ClockMs = 900

	s.ResetPose()
	if s.Y != y || s.VY != vy {
		t.Fatalf("ResetPose must preserve position/velocity: %v/%v vs %v/%v", s.Y, s.VY, y, vy)
	}
	if s.HeadRotation != 0 || s.ClockMs != 0 {
		t.Fatalf("ResetPose must zero rotation and clock")
	}
}
