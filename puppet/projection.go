package puppet

import "math"

// ArcDeg is the fixed angular arc the sheet's width subtends around the
// cylinder. 135 keeps the silhouette edges clear of extreme
// foreshortening.
const ArcDeg = 135.0

const (
	// depthCull is the visibility threshold; columns whose depth (cosine
	// of the projected angle) falls below it face away and are skipped.
	depthCull = 0.15
	// nearDepth marks strips facing the viewer closely enough to need the
	// seam-suppressing double draw.
	nearDepth = 0.85
	// seamOffset is the horizontal offset of the second draw.
	seamOffset = 0.6
	// profileSnapDeg is how far a profile pose pulls the effective
	// rotation back toward zero.
	profileSnapDeg = 18.0
)

// Strip is one projected vertical column of the wrapped sheet: where it
// lands horizontally relative to the cylinder axis, how wide it must be
// drawn to tile with its neighbor, and how directly it faces the viewer.
type Strip struct {
	// SrcColumn is the source column within the frame, in pixels.
	SrcColumn int
	// X is the left edge relative to the cylinder axis.
	X float64
	// Width is the horizontal extent to the next column's left edge.
	Width float64
	// Depth is the cosine of the projected angle, in (depthCull, 1].
	Depth float64
}

// ProjectColumns wraps frameW source columns around the cylinder at the
// given rotation and radius, returning the visible strips in source
// order. Mirroring remaps which source column lands where without
// changing the geometry; a profile pose reduces the apparent rotation.
func ProjectColumns(frameW int, rotationDeg, radius float64, mirrored, profile bool) []Strip {
	if frameW <= 0 || radius <= 0 {
		return nil
	}

	if profile {
		if rotationDeg > 0 {
			rotationDeg = math.Max(0, rotationDeg-profileSnapDeg)
		} else {
			rotationDeg = math.Min(0, rotationDeg+profileSnapDeg)
		}
	}

	edgeX := func(i int) float64 {
		t := float64(i)/float64(frameW) - 0.5
		return math.Sin((t*ArcDeg+rotationDeg)*math.Pi/180) * radius
	}

	strips := make([]Strip, 0, frameW)
	for i := 0; i < frameW; i++ {
		tc := (float64(i)+0.5)/float64(frameW) - 0.5
		depth := math.Cos((tc*ArcDeg + rotationDeg) * math.Pi / 180)
		if depth < depthCull {
			continue
		}
		src := i
		if mirrored {
			src = frameW - 1 - i
		}
		x := edgeX(i)
		strips = append(strips, Strip{
			SrcColumn: src,
			X:         x,
			Width:     edgeX(i+1) - x,
			Depth:     depth,
		})
	}
	return strips
}

// rollOffset is the pitch-driven vertical displacement, in source pixels,
// for a band at normalized height norm in [0, 1]. The sine shape bulges
// the middle bands, reading as convex or concave with the pitch sign.
func rollOffset(norm, pitchDeg float64) float64 {
	return math.Sin(norm*math.Pi) * pitchDeg * 0.2
}

// swayOffset is the idle accordion wave, in source pixels: a slow
// time-driven ripple phased down the part's height.
func swayOffset(norm, timeMs float64) float64 {
	return math.Sin(timeMs*0.002+norm*3.0)
}
