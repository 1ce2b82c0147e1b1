package main

import (
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	ebuiinput "github.com/ebitenui/ebitenui/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/milk9111/spritelathe/assets"
	"github.com/milk9111/spritelathe/common"
	"github.com/milk9111/spritelathe/prefabs"
	"github.com/milk9111/spritelathe/puppet"
	"github.com/milk9111/spritelathe/render"
)

// tickMs is the animation clock advance per tick at 60 TPS.
const tickMs = 1000.0 / 60

// groundY is the screen row the puppet rests on.
const groundY = common.BaseHeight * 0.78

type actorEntry struct {
	spec   *prefabs.ActorSpec
	actor  *puppet.Actor
	ready  bool
	failed bool
}

type Game struct {
	frames int
	debug  bool

	pointer  *Pointer
	state    *puppet.State
	renderer *puppet.Renderer
	loader   *render.Loader
	watcher  *prefabs.Watcher

	actors map[string]*actorEntry
	order  []string
	active string

	ui *ebitenui.UI
	// uiContact is true while the current pointer contact started on the
	// selector UI; such contacts never reach the puppet.
	uiContact bool
}

func NewGame(debug, watch bool) (*Game, error) {
	files, err := prefabs.ActorFiles()
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no actor prefabs found")
	}

	g := &Game{
		debug:   debug,
		pointer: NewPointer(),
		state:   puppet.NewState(groundY),
		loader:  render.NewLoader(len(files)),
		actors:  map[string]*actorEntry{},
	}

	maxW, maxH := 0, 0
	for _, file := range files {
		spec, err := prefabs.LoadActorSpec(file)
		if err != nil {
			return nil, err
		}
		g.actors[spec.Name] = &actorEntry{spec: spec}
		g.order = append(g.order, spec.Name)
		if spec.FrameWidth > maxW {
			maxW = spec.FrameWidth
		}
		if spec.FrameHeight > maxH {
			maxH = spec.FrameHeight
		}
		sheet := spec.Sheet
		g.loader.Load(sheet, func() ([]byte, error) { return assets.LoadFile(sheet) })
	}
	g.active = g.order[0]
	if maxW <= 0 || maxH <= 0 {
		return nil, fmt.Errorf("actor prefabs declare no frame geometry")
	}

	// The working buffer spans the widest possible projection plus bob
	// and slide headroom.
	g.renderer = puppet.NewRenderer(maxW*2, maxH+12)

	if watch {
		w, err := prefabs.NewWatcher("prefabs")
		if err != nil {
			log.Printf("prefab watcher disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	g.ui = NewSelectorUI(g)
	return g, nil
}

// Close releases the background watchers.
func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	g.frames++

	for _, sheet := range g.loader.Drain() {
		g.onSheetLoaded(sheet)
	}
	g.drainWatcher()

	g.pointer.Update()
	g.forwardPointer(g.pointer, ebuiinput.UIHovered)

	g.state.Step(g.activeActor(), tickMs)

	g.ui.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if actor := g.activeActor(); actor != nil {
		bodyCol := puppet.ResolveColumn(actor, puppet.PartBody, g.state)
		headCol := puppet.ResolveColumn(actor, puppet.PartHead, g.state)
		g.renderer.Render(actor, g.state, bodyCol, headCol)

		w, h := g.renderer.Size()
		g.renderer.Compose(screen, (common.BaseWidth-float64(w))/2, g.state.Y-float64(h))
	}

	g.ui.Draw(screen)

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.2f    actor: %s    rot: %.1f    pitch: %.1f",
			ebiten.ActualFPS(), g.active, g.state.HeadRotation, g.state.Pitch))
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// forwardPointer routes pointer events to the kinematic state. A contact
// that starts over the selector UI belongs to the UI for its whole
// lifetime, so a drag released off a button still cannot fire a jump.
func (g *Game) forwardPointer(p *Pointer, overUI bool) {
	if p.JustPressed {
		if overUI {
			g.uiContact = true
		} else {
			g.state.BeginContact(p.X, p.Y)
		}
	}
	if p.Down && !g.uiContact {
		g.state.MoveContact(p.X, p.Y)
	}
	if p.JustReleased {
		if g.uiContact {
			g.uiContact = false
		} else {
			g.state.EndContact(p.X, p.Y)
		}
	}
}

// SwitchActor makes the named actor kind active between ticks. Rotation,
// pitch, and the animation clock reset; position and velocity carry over.
func (g *Game) SwitchActor(name string) {
	entry, ok := g.actors[name]
	if !ok || name == g.active {
		return
	}
	if entry.failed {
		log.Printf("actor %s is unavailable", name)
		return
	}
	if !entry.ready {
		return
	}
	g.active = name
	g.state.ResetPose()
}

func (g *Game) activeActor() *puppet.Actor {
	if entry, ok := g.actors[g.active]; ok && entry.ready {
		return entry.actor
	}
	return nil
}

func (g *Game) onSheetLoaded(sheet render.Sheet) {
	if sheet.Err != nil {
		log.Printf("%v", sheet.Err)
		for _, name := range g.order {
			if entry := g.actors[name]; entry.spec.Sheet == sheet.Key {
				entry.failed = true
			}
		}
		return
	}
	render.RegisterSheet(sheet.Key, sheet)
	for _, name := range g.order {
		entry := g.actors[name]
		if entry.spec.Sheet != sheet.Key || entry.ready {
			continue
		}
		if err := g.buildActor(entry, sheet); err != nil {
			log.Printf("actor %s unavailable: %v", name, err)
			entry.failed = true
		}
	}
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Specs:
			if !ok {
				g.watcher = nil
				return
			}
			g.reloadSpec(name)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("prefab watcher: %v", err)
		default:
			return
		}
	}
}

// reloadSpec rebuilds one actor descriptor from an edited YAML. A parse
// or validation failure keeps the previous descriptor.
func (g *Game) reloadSpec(file string) {
	spec, err := prefabs.LoadActorSpec(file)
	if err != nil {
		log.Printf("reload %s: %v", file, err)
		return
	}
	entry, ok := g.actors[spec.Name]
	if !ok {
		return
	}
	sheet, ok := render.GetSheet(spec.Sheet)
	if !ok {
		return
	}
	prev := entry.spec
	entry.spec = spec
	if err := g.buildActor(entry, sheet); err != nil {
		log.Printf("reload %s: %v", file, err)
		entry.spec = prev
	}
}

// buildActor constructs the immutable descriptor from a spec and its
// decoded sheet, runs the one-time duplicate-frame pass, and validates.
func (g *Game) buildActor(entry *actorEntry, sheet render.Sheet) error {
	behavior, err := puppet.BehaviorByName(entry.spec.Behavior)
	if err != nil {
		return err
	}

	// The dedup pass mutates the animation tables, so the actor gets its
	// own copy; the spec stays pristine for hot reload.
	animations := make(map[string][]int, len(entry.spec.Animations))
	for name, seq := range entry.spec.Animations {
		animations[name] = append([]int(nil), seq...)
	}

	s := entry.spec
	actor := &puppet.Actor{
		Name:        s.Name,
		Sheet:       sheet.Image,
		SheetPixels: sheet.Pixels,
		SheetWidth:  sheet.Pixels.Bounds().Dx(),

		FrameWidth:  s.FrameWidth,
		FrameHeight: s.FrameHeight,
		NeckAnchorY: s.NeckAnchorY,

		WalkPeriodMs: s.WalkPeriodMs,
		RunPeriodMs:  s.RunPeriodMs,

		Animations:  animations,
		Deduplicate: s.Deduplicate,

		BobAmplitude:       s.Shading.BobAmplitude,
		WidthScale:         s.Shading.WidthScale,
		SlideScale:         s.Shading.SlideScale,
		HeadRadiusScale:    s.Shading.HeadRadiusScale,
		BodyRadiusScale:    s.Shading.BodyRadiusScale,
		HeadSinkIdle:       s.Shading.HeadSinkIdle,
		HeadSinkProfile:    s.Shading.HeadSinkProfile,
		BottomTrimIdle:     s.Shading.BottomTrimIdle,
		BottomTrimProfile:  s.Shading.BottomTrimProfile,
		SuppressProfileBob: s.Shading.SuppressProfileBob,

		Behavior: behavior,
	}

	actor.PrepareSequences()
	if err := actor.Validate(); err != nil {
		return err
	}
	entry.actor = actor
	entry.ready = true
	return nil
}
