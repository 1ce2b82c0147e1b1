package puppet

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// IdleSequence is the fallback animation every actor must define.
const IdleSequence = "IDLE"

// Actor is the static descriptor for one puppet kind. It is immutable
// after PrepareSequences has run; the renderer and resolver only read it.
type Actor struct {
	Name string

	// Sheet is the drawable sprite sheet. The actor holds a non-owning
	// reference; the image registry owns the resource.
	Sheet *ebiten.Image
	// SheetPixels is the decoded source image the deduplicator reads.
	SheetPixels image.Image
	// SheetWidth is the sheet's pixel width, cached so column validation
	// does not need the drawable surface.
	SheetWidth int

	FrameWidth  int
	FrameHeight int
	// NeckAnchorY is the pixel row splitting the head rows above from the
	// body rows below within a frame.
	NeckAnchorY int

	WalkPeriodMs float64
	RunPeriodMs  float64

	// Animations maps sequence names to ordered frame indices. Mutated
	// exactly once, by PrepareSequences, before first use.
	Animations  map[string][]int
	Deduplicate bool

	// Shape and shading coefficients.
	BobAmplitude       float64
	WidthScale         float64
	SlideScale         float64
	HeadRadiusScale    float64
	BodyRadiusScale    float64
	HeadSinkIdle       float64
	HeadSinkProfile    float64
	BottomTrimIdle     float64
	BottomTrimProfile  float64
	SuppressProfileBob bool

	Behavior Behavior

	prepared bool
}

// PrepareSequences runs the one-time duplicate-frame elimination pass over
// every animation sequence. It must complete before the actor is
// activatable; calling it again is a no-op.
func (a *Actor) PrepareSequences() {
	if a.prepared {
		return
	}
	a.prepared = true
	if !a.Deduplicate || a.SheetPixels == nil {
		return
	}
	for name, seq := range a.Animations {
		a.Animations[name] = Deduplicate(a.SheetPixels, a.FrameWidth, a.FrameHeight, seq)
	}
}

// Validate checks the invariants the resolver relies on: frame geometry,
// a behavior, and an IDLE sequence whose first frame maps to a column
// inside the sheet.
func (a *Actor) Validate() error {
	if a.FrameWidth <= 0 || a.FrameHeight <= 0 {
		return fmt.Errorf("puppet: actor %s: frame size %dx%d", a.Name, a.FrameWidth, a.FrameHeight)
	}
	if a.NeckAnchorY < 0 || a.NeckAnchorY > a.FrameHeight {
		return fmt.Errorf("puppet: actor %s: neck anchor %d outside frame height %d", a.Name, a.NeckAnchorY, a.FrameHeight)
	}
	if a.Behavior == nil {
		return fmt.Errorf("puppet: actor %s: no behavior", a.Name)
	}
	idle, ok := a.Animations[IdleSequence]
	if !ok || len(idle) == 0 {
		return fmt.Errorf("puppet: actor %s: missing %s sequence", a.Name, IdleSequence)
	}
	if col := idle[0] * a.FrameWidth; col < 0 || col+a.FrameWidth > a.SheetWidth {
		return fmt.Errorf("puppet: actor %s: %s frame 0 maps to column %d outside sheet width %d", a.Name, IdleSequence, col, a.SheetWidth)
	}
	return nil
}

// Period returns the per-frame animation duration in milliseconds for the
// current speed.
func (a *Actor) Period(running bool) float64 {
	if running {
		return a.RunPeriodMs
	}
	return a.WalkPeriodMs
}

// Sequence returns the named sequence, falling back to IDLE when absent.
func (a *Actor) Sequence(name string) []int {
	if seq, ok := a.Animations[name]; ok && len(seq) > 0 {
		return seq
	}
	return a.Animations[IdleSequence]
}
