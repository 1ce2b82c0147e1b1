package puppet

import "fmt"

// LoopMode selects how an animation sequence advances over time.
type LoopMode int

const (
	// LoopCyclic repeats the sequence front to back.
	LoopCyclic LoopMode = iota
	// LoopPingPong sweeps forward then backward without repeating the
	// endpoint frames.
	LoopPingPong
)

// Behavior bundles the per-actor policy functions. All methods are pure.
type Behavior interface {
	// IsProfilePose reports whether the actor snaps toward a sideways
	// stance for the given motion flags.
	IsProfilePose(moving, running bool) bool
	// Mirror reports whether the sheet should be flipped horizontally at
	// the given rotation, in degrees.
	Mirror(rotationDeg float64) bool
	// LoopMode returns the frame-index policy for this actor's sequences.
	LoopMode() LoopMode
	// SequenceFor maps a rotation (or, while airborne, a latched lateral
	// direction carrying only its sign) to an animation sequence name.
	SequenceFor(rotationDeg float64) string
	// IdleDampOverride returns a grounded-idle damping factor override,
	// or false when the actor uses the default.
	IdleDampOverride() (float64, bool)
}

// BehaviorByName returns the behavior registered under the given tag.
func BehaviorByName(name string) (Behavior, error) {
	switch name {
	case "strider":
		return striderBehavior{}, nil
	case "drifter":
		return drifterBehavior{}, nil
	}
	return nil, fmt.Errorf("puppet: unknown behavior %q", name)
}

// striderBehavior is the walking actor: directional cyclic walk cycle,
// profile stance whenever it is moving at all.
type striderBehavior struct{}

func (striderBehavior) IsProfilePose(moving, running bool) bool { return moving }

func (striderBehavior) Mirror(rotationDeg float64) bool { return rotationDeg < 0 }

func (striderBehavior) LoopMode() LoopMode { return LoopCyclic }

func (striderBehavior) SequenceFor(rotationDeg float64) string {
	if rotationDeg < 0 {
		return "WALK_LEFT"
	}
	return "WALK_RIGHT"
}

func (striderBehavior) IdleDampOverride() (float64, bool) { return 0, false }

// drifterBehavior is the swaying actor: a single ping-pong sway cycle,
// profile stance only at running speed, and a snappier grounded-idle
// return to center.
type drifterBehavior struct{}

func (drifterBehavior) IsProfilePose(moving, running bool) bool { return running }

func (drifterBehavior) Mirror(rotationDeg float64) bool { return false }

func (drifterBehavior) LoopMode() LoopMode { return LoopPingPong }

func (drifterBehavior) SequenceFor(rotationDeg float64) string { return "SWAY" }

func (drifterBehavior) IdleDampOverride() (float64, bool) { return 0.35, true }
