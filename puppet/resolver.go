package puppet

// Part identifies one of the two independently animated puppet layers.
type Part int

const (
	PartBody Part = iota
	PartHead
	partCount
)

// ResolveColumn selects the sprite-sheet source column, in pixels, for
// one part at the current kinematic state. Invalid lookups fall back to
// the part's latched last-valid column; valid ones update the latch and,
// while grounded, the ground posture reference.
func ResolveColumn(a *Actor, part Part, s *State) int {
	airborne := s.Airborne()
	moving := s.Moving()
	running := s.Running()

	var animating bool
	if part == PartBody {
		animating = moving || airborne
	} else {
		animating = a.Behavior.IsProfilePose(moving, running) || airborne
	}

	var seq []int
	var index int
	if animating {
		// Airborne cycles are timed from takeoff so they always start at
		// their first frame, and follow the latched travel direction
		// rather than in-air wobble.
		elapsed := s.ClockMs
		rotation := s.HeadRotation
		if airborne {
			elapsed = s.ClockMs - s.JumpStartMs
			rotation = s.LastLean
		}
		seq = a.Sequence(a.Behavior.SequenceFor(rotation))
		index = frameIndex(a.Behavior.LoopMode(), elapsed, a.Period(running), len(seq))
	} else {
		seq = a.Sequence(IdleSequence)
		index = 0
	}

	if index < 0 || index >= len(seq) {
		return latchedColumn(s, part)
	}
	col := seq[index] * a.FrameWidth
	if col < 0 || col+a.FrameWidth > a.SheetWidth {
		return latchedColumn(s, part)
	}

	s.LatchedColumn[part] = col
	s.HasLatch[part] = true
	if !airborne {
		s.GroundColumn[part] = col
	}
	return col
}

// frameIndex computes the index within a sequence of the given length for
// the elapsed time and per-frame period.
func frameIndex(mode LoopMode, elapsedMs, periodMs float64, length int) int {
	if length <= 1 || periodMs <= 0 {
		if length <= 0 {
			return -1
		}
		return 0
	}
	steps := int(elapsedMs / periodMs)
	if steps < 0 {
		steps = 0
	}

	switch mode {
	case LoopPingPong:
		// One cycle is a forward sweep then a reverse sweep, 2(L-1) steps,
		// visiting each endpoint exactly once per cycle.
		cycle := 2*length - 2
		raw := steps % cycle
		if raw < length {
			return raw
		}
		return cycle - raw
	default:
		return steps % length
	}
}

func latchedColumn(s *State, part Part) int {
	if s.HasLatch[part] {
		return s.LatchedColumn[part]
	}
	return 0
}
