package render

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"

	"github.com/hajimehoshi/ebiten/v2"
)

// Loader decodes sprite sheets off the main loop and delivers them on
// Results. The game drains the channel once per tick, so decoded sheets
// only ever become visible between ticks.
type Loader struct {
	Results chan Sheet
}

// NewLoader creates a loader able to buffer n pending results.
func NewLoader(n int) *Loader {
	return &Loader{Results: make(chan Sheet, n)}
}

// Load decodes the sheet bytes produced by read on a goroutine and sends
// the result. A failed read or decode is delivered as a Sheet with Err
// set; the actor owning the sheet stays unavailable.
func (l *Loader) Load(key string, read func() ([]byte, error)) {
	go func() {
		b, err := read()
		if err != nil {
			l.Results <- Sheet{Key: key, Err: fmt.Errorf("render: read sheet %s: %w", key, err)}
			return
		}
		img, _, err := image.Decode(bytes.NewReader(b))
		if err != nil {
			l.Results <- Sheet{Key: key, Err: fmt.Errorf("render: decode sheet %s: %w", key, err)}
			return
		}
		l.Results <- Sheet{Key: key, Image: ebiten.NewImageFromImage(img), Pixels: img}
	}()
}

// Drain returns the sheets decoded since the previous tick without
// blocking.
func (l *Loader) Drain() []Sheet {
	var out []Sheet
	for {
		select {
		case s := <-l.Results:
			out = append(out, s)
		default:
			return out
		}
	}
}
