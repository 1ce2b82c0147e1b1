package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sheet is one decoded sprite sheet: the drawable surface plus the raw
// decoded pixels kept for load-time preprocessing.
type Sheet struct {
	Key    string
	Image  *ebiten.Image
	Pixels image.Image
	Err    error
}

var sheets = map[string]Sheet{}

// RegisterSheet stores a sheet by key.
func RegisterSheet(key string, s Sheet) {
	if key == "" {
		return
	}
	sheets[key] = s
}

// GetSheet returns a cached sheet by key.
func GetSheet(key string) (Sheet, bool) {
	if key == "" {
		return Sheet{}, false
	}
	s, ok := sheets[key]
	return s, ok
}
