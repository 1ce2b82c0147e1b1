package main

import (
	"testing"

	"github.com/milk9111/spritelathe/common"
	"github.com/milk9111/spritelathe/puppet"
)

func TestForwardPointerUIContactNeverReachesPuppet(t *testing.T) {
	g := &Game{state: puppet.NewState(groundY)}

	// a press on the selector, dragged upward and released: the contact
	// belongs to the UI, so no puppet contact starts and no jump fires
	g.forwardPointer(&Pointer{JustPressed: true, Down: true, X: 900, Y: 150}, true)
	if g.state.PointerDown {
		t.Fatalf("a UI press must not start a puppet contact")
	}
	g.forwardPointer(&Pointer{Down: true, X: 900, Y: 40}, false)
	g.forwardPointer(&Pointer{JustReleased: true, X: 900, Y: 40}, false)
	if g.state.VY != 0 {
		t.Fatalf("an upward drag over the selector fired a jump, VY=%v", g.state.VY)
	}

	// the same gesture on the stage drives the state machine as usual
	g.forwardPointer(&Pointer{JustPressed: true, Down: true, X: 400, Y: 400}, false)
	if !g.state.PointerDown {
		t.Fatalf("a stage press must start a puppet contact")
	}
	g.forwardPointer(&Pointer{JustReleased: true, X: 400, Y: 300}, false)
	if g.state.VY != common.JumpVelocity {
		t.Fatalf("stage swipe should jump, VY=%v", g.state.VY)
	}
}

func TestSwitchActorAvailability(t *testing.T) {
	g := &Game{
		state:  puppet.NewState(groundY),
		active: "a",
		actors: map[string]*actorEntry{
			"a": {ready: true},
			"b": {failed: true},
			"c": {},
			"d": {ready: true},
		},
	}

	g.SwitchActor("b")
	if g.active != "a" {
		t.Fatalf("an actor whose sheet failed to load must not activate")
	}
	g.SwitchActor("c")
	if g.active != "a" {
		t.Fatalf("a not-yet-loaded actor must not activate")
	}

	g.state.HeadRotation = 12
	g.SwitchActor("d")
	if g.active != "d" {
		t.Fatalf("a ready actor should activate")
	}
	if g.state.HeadRotation != 0 {
		t.Fatalf("switching actors must reset the pose")
	}
}
