package puppet

import (
	"math"
	"testing"
)

func TestBobOffset(t *testing.T) {
	a := testActor(striderBehavior{})
	a.BobAmplitude = 2

	const clock = 400.0
	continuous := math.Sin(clock*idleBobFreq) * idleBobAmp
	if continuous == 0 {
		t.Fatalf("test clock must land on a nonzero bob phase")
	}

	cases := []struct {
		name                      string
		part                      Part
		moving, airborne, profile bool
		col                       int
		want                      float64
	}{
		{"idle_head_bobs_continuously", PartHead, false, false, false, 0, continuous},
		{"idle_body_is_still", PartBody, false, false, false, 0, 0},
		{"moving_profile_head_keeps_continuous_bob", PartHead, true, false, true, 0, continuous},
		{"moving_profile_head_continuous_ignores_parity", PartHead, true, false, true, 10, continuous},
		{"moving_head_steps_on_odd_frames", PartHead, true, false, false, 10, 2},
		{"moving_head_even_frame_no_step", PartHead, true, false, false, 20, 0},
		{"moving_body_steps_on_odd_frames", PartBody, true, false, false, 10, 2},
		{"moving_body_even_frame_no_step", PartBody, true, false, false, 20, 0},
		{"airborne_head_steps_not_continuous", PartHead, false, true, true, 10, 2},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := bobOffset(a, c.part, c.moving, c.airborne, c.profile, c.col, clock)
			if got != c.want {
				t.Fatalf("bobOffset = %v, want %v", got, c.want)
			}
		})
	}
}

func TestBobOffsetSuppressProfileBob(t *testing.T) {
	a := testActor(striderBehavior{})
	a.BobAmplitude = 2
	const clock = 400.0

	plain := bobOffset(a, PartHead, true, false, true, 0, clock)

	a.SuppressProfileBob = true
	suppressed := bobOffset(a, PartHead, true, false, true, 0, clock)

	if plain == suppressed {
		t.Fatalf("suppression flag must change the moving-profile head bob, both %v", plain)
	}
	if suppressed != 0 {
		t.Fatalf("suppressing actor on an even frame must not bob, got %v", suppressed)
	}
	// with the continuous bob suppressed, the head falls back to the
	// step bob on odd frame parities
	if got := bobOffset(a, PartHead, true, false, true, 10, clock); got != 2 {
		t.Fatalf("suppressing actor should step-bob on odd frames, got %v", got)
	}
	// suppression is scoped to the profile pose; an idle head still bobs
	if got := bobOffset(a, PartHead, false, false, false, 0, clock); got == 0 {
		t.Fatalf("idle head bob must survive the suppression flag")
	}
}
