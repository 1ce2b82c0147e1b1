package puppet

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/spritelathe/common"
)

// hiResScale is the supersampling factor of the working buffer; strips
// are rasterized at this scale and smoothed back down on compose.
const hiResScale = 3

const (
	// alphaFloor is the opacity of a strip at the visibility threshold;
	// opacity rises linearly with depth from here to fully opaque.
	alphaFloor = 0.35
	// chunkPitchDeg is the head pitch beyond which the head switches from
	// the single-blit strip to pitch-banded chunks.
	chunkPitchDeg = 2.0
	// Band heights in source pixels for the chunked strip path.
	bandFine   = 1
	bandCoarse = 4
	// Idle head bob.
	idleBobAmp  = 1.5
	idleBobFreq = 0.0035
	// accordionAmp is the idle sway amplitude in source pixels.
	accordionAmp = 1.0
)

// Renderer owns the working high-resolution buffer and rasterizes a
// puppet into it as cylindrical strips, one tick at a time. The buffer is
// cleared and reused across ticks, never reallocated.
type Renderer struct {
	buf  *ebiten.Image
	w, h int
}

// NewRenderer creates a renderer whose composed output covers w x h
// display pixels.
func NewRenderer(w, h int) *Renderer {
	return &Renderer{
		buf: ebiten.NewImage(w*hiResScale, h*hiResScale),
		w:   w,
		h:   h,
	}
}

// Size returns the composed output dimensions in display pixels.
func (r *Renderer) Size() (int, int) {
	return r.w, r.h
}

// Render rasterizes both puppet layers for this tick. The body pass
// always runs at zero pitch; only the head pass sees the pitched pose.
func (r *Renderer) Render(a *Actor, s *State, bodyCol, headCol int) {
	r.buf.Clear()
	r.drawPart(a, s, PartBody, bodyCol, s.BodyRotation, 0)
	r.drawPart(a, s, PartHead, headCol, s.HeadRotation, s.Pitch)
}

// Compose downsamples the working buffer onto the screen with smoothing,
// top-left at (x, y).
func (r *Renderer) Compose(screen *ebiten.Image, x, y float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(1.0/hiResScale, 1.0/hiResScale)
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(r.buf, op)
}

func (r *Renderer) drawPart(a *Actor, s *State, part Part, col int, rotationDeg, pitchDeg float64) {
	if a.Sheet == nil {
		return
	}

	moving := s.Moving()
	running := s.Running()
	airborne := s.Airborne()
	profile := a.Behavior.IsProfilePose(moving, running)
	mirrored := a.Behavior.Mirror(rotationDeg)

	srcY0, srcY1 := 0, a.NeckAnchorY
	radiusScale := a.HeadRadiusScale
	if part == PartBody {
		srcY0, srcY1 = a.NeckAnchorY, a.FrameHeight
		radiusScale = a.BodyRadiusScale
		trim := a.BottomTrimIdle
		if profile {
			trim = a.BottomTrimProfile
		}
		srcY1 -= int(trim)
	}
	if srcY1 <= srcY0 {
		return
	}
	srcH := srcY1 - srcY0

	radius := float64(a.FrameWidth) / 2 * radiusScale * a.WidthScale * hiResScale
	strips := ProjectColumns(a.FrameWidth, rotationDeg, radius, mirrored, profile)
	if len(strips) == 0 {
		return
	}

	centerX := float64(r.w)*hiResScale/2 + rotationDeg*a.SlideScale*hiResScale
	baseY := float64(r.h-a.FrameHeight)*hiResScale/2 + float64(srcY0)*hiResScale

	baseY += bobOffset(a, part, moving, airborne, profile, col, s.ClockMs) * hiResScale
	if part == PartHead {
		sink := a.HeadSinkIdle
		if profile {
			sink = a.HeadSinkProfile
		}
		baseY += sink * hiResScale
	}

	idleSway := part == PartBody && !moving && !airborne
	chunked := idleSway || (part == PartHead && math.Abs(pitchDeg) > chunkPitchDeg)

	for _, strip := range strips {
		srcX := col + strip.SrcColumn
		if !chunked {
			r.blit(a.Sheet, image.Rect(srcX, srcY0, srcX+1, srcY1), strip,
				centerX, baseY, hiResScale)
			continue
		}

		band := bandCoarse
		if idleSway {
			// 1 px bands keep the breathing wave smooth.
			band = bandFine
		}
		for y := srcY0; y < srcY1; y += band {
			y1 := y + band
			if y1 > srcY1 {
				y1 = srcY1
			}
			norm := float64(y-srcY0) / float64(srcH)
			off := rollOffset(norm, pitchDeg) * hiResScale
			if idleSway {
				off += swayOffset(norm, s.ClockMs) * accordionAmp * hiResScale
			}
			r.blit(a.Sheet, image.Rect(srcX, y, srcX+1, y1), strip,
				centerX, baseY+float64(y-srcY0)*hiResScale+off, hiResScale)
		}
	}
}

// bobOffset returns the vertical bob displacement, in source pixels, for
// one part. Moving and airborne poses step-bob on alternating resolved
// frame parities. An idle head bobs continuously instead, and a
// profile-pose head keeps the continuous bob while moving unless the
// actor suppresses it, in which case it falls back to the step bob.
func bobOffset(a *Actor, part Part, moving, airborne, profile bool, col int, clockMs float64) float64 {
	if part == PartHead && !airborne {
		if !moving || (profile && !a.SuppressProfileBob) {
			return math.Sin(clockMs*idleBobFreq) * idleBobAmp
		}
	}
	if (moving || airborne) && a.FrameWidth > 0 && (col/a.FrameWidth)%2 == 1 {
		return a.BobAmplitude
	}
	return 0
}

// blit draws one strip (or one band of one strip) with depth-modulated
// opacity, doubling up near-facing strips one offset pass to the right to
// hide sub-pixel seams.
func (r *Renderer) blit(sheet *ebiten.Image, src image.Rectangle, strip Strip, centerX, y, scaleY float64) {
	part := sheet.SubImage(src).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(strip.Width, scaleY)
	op.GeoM.Translate(centerX+strip.X, y)
	op.Filter = ebiten.FilterLinear
	op.ColorScale.ScaleAlpha(float32(common.Lerp(alphaFloor, 1, strip.Depth)))
	r.buf.DrawImage(part, op)

	if strip.Depth > nearDepth {
		op.GeoM.Translate(seamOffset, 0)
		r.buf.DrawImage(part, op)
	}
}
