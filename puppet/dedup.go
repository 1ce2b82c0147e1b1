package puppet

import (
	"bytes"
	"image"
	"image/draw"
)

// Deduplicate collapses runs of visually identical consecutive frames in
// one animation sequence. Each referenced frame is rendered into an
// isolated frameW x frameH buffer and its raw pixel bytes compared, all
// channels, against the previously kept frame; exact matches are dropped.
// The first frame is always kept and relative order is preserved, so the
// result is a subsequence of the input. The pass is idempotent.
func Deduplicate(sheet image.Image, frameW, frameH int, seq []int) []int {
	if len(seq) <= 1 || frameW <= 0 || frameH <= 0 {
		return seq
	}

	bounds := image.Rect(0, 0, frameW, frameH)
	prev := image.NewRGBA(bounds)
	cur := image.NewRGBA(bounds)

	renderFrame(prev, sheet, seq[0]*frameW)
	kept := append(make([]int, 0, len(seq)), seq[0])

	for _, frame := range seq[1:] {
		renderFrame(cur, sheet, frame*frameW)
		// bytes.Equal stops at the first differing byte.
		if bytes.Equal(cur.Pix, prev.Pix) {
			continue
		}
		kept = append(kept, frame)
		prev, cur = cur, prev
	}
	return kept
}

func renderFrame(dst *image.RGBA, sheet image.Image, srcX int) {
	draw.Draw(dst, dst.Bounds(), image.Transparent, image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), sheet, image.Pt(srcX, 0), draw.Src)
}
