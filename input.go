package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Pointer unifies mouse and single-touch contact into the
// start/move/end shape the kinematic state machine consumes.
type Pointer struct {
	// Down is true while a contact is active.
	Down bool
	// JustPressed is true on the frame a contact started.
	JustPressed bool
	// JustReleased is true on the frame a contact ended; X and Y still
	// hold the release coordinates.
	JustReleased bool
	// X and Y are the contact coordinates in screen pixels.
	X, Y float64

	touching bool
	touchID  ebiten.TouchID
	touches  []ebiten.TouchID
}

func NewPointer() *Pointer {
	return &Pointer{}
}

// Update polls mouse and touch state for this tick.
func (p *Pointer) Update() {
	p.JustPressed = false
	p.JustReleased = false

	if p.touching {
		if inpututil.IsTouchJustReleased(p.touchID) {
			p.touching = false
			p.Down = false
			p.JustReleased = true
			return
		}
		x, y := ebiten.TouchPosition(p.touchID)
		p.X, p.Y = float64(x), float64(y)
		return
	}

	p.touches = inpututil.AppendJustPressedTouchIDs(p.touches[:0])
	if len(p.touches) > 0 {
		p.touching = true
		p.touchID = p.touches[0]
		x, y := ebiten.TouchPosition(p.touchID)
		p.X, p.Y = float64(x), float64(y)
		p.Down = true
		p.JustPressed = true
		return
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		p.Down = true
		p.JustPressed = true
	}
	if p.Down {
		x, y := ebiten.CursorPosition()
		p.X, p.Y = float64(x), float64(y)
	}
	if p.Down && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		p.Down = false
		p.JustReleased = true
	}
}
