// Package window runs Shape Dodger in a desktop window through Ebitengine.
// The core draws into a display list during Update; Draw replays it.
package window

import (
	"image/color"

	"github.com/vovakirdan/shape-dodger/internal/dodger"
)

// Item is one recorded draw call.
type Item struct {
	Kind  dodger.Kind
	X, Y  float64
	Size  float64
	Color dodger.RGB
}

// DisplayList records draw calls in order. It implements dodger.Renderer.
type DisplayList struct {
	items []Item
}

// Draw implements dodger.Renderer.
func (l *DisplayList) Draw(kind dodger.Kind, x, y, size float64, c dodger.RGB) {
	l.items = append(l.items, Item{Kind: kind, X: x, Y: y, Size: size, Color: c})
}

// Reset drops every recorded item, keeping capacity.
func (l *DisplayList) Reset() {
	l.items = l.items[:0]
}

// Items returns the recorded items in draw order.
func (l *DisplayList) Items() []Item {
	return l.items
}

// Len returns the number of recorded items.
func (l *DisplayList) Len() int {
	return len(l.items)
}

// RGBA converts a shape color to an opaque 8-bit color.
func RGBA(c dodger.RGB) color.RGBA {
	return color.RGBA{R: channel(c.R), G: channel(c.G), B: channel(c.B), A: 0xff}
}

func channel(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 0xff
	}
	return uint8(v*255 + 0.5)
}
