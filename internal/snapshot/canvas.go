// Package snapshot renders game frames to PNG images with gogpu/gg.
package snapshot

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gogpu/gg"

	"github.com/vovakirdan/shape-dodger/internal/dodger"
)

// Default frame size, matching the desktop window.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// Background is the clear color of every frame.
var Background = gg.RGB(0.15, 0.15, 0.15)

// Canvas is a dodger.Renderer backed by a software gg context.
type Canvas struct {
	dc *gg.Context
	vp dodger.Viewport
}

// New creates a canvas cleared to Background.
func New(width, height int) *Canvas {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	c := &Canvas{
		dc: gg.NewContext(width, height),
		vp: dodger.Viewport{W: float64(width), H: float64(height)},
	}
	c.Clear()
	return c
}

// Capture draws one game state on a fresh canvas.
func Capture(s dodger.State, width, height int) *Canvas {
	c := New(width, height)
	s.Draw(c)
	return c
}

// Clear fills the canvas with Background.
func (c *Canvas) Clear() {
	c.dc.ClearWithColor(Background)
}

// Draw fills one shape. It implements dodger.Renderer.
func (c *Canvas) Draw(kind dodger.Kind, x, y, size float64, color dodger.RGB) {
	c.dc.SetRGB(color.R, color.G, color.B)

	switch kind {
	case dodger.KindCircle:
		cx, cy := c.vp.ToScreen(x, y)
		rx, ry := c.vp.Scale(size/2, size/2)
		c.dc.DrawEllipse(cx, cy, rx, ry)
	default:
		for i, p := range dodger.Outline(kind, x, y, size) {
			px, py := c.vp.ToScreen(p.X, p.Y)
			if i == 0 {
				c.dc.MoveTo(px, py)
			} else {
				c.dc.LineTo(px, py)
			}
		}
		c.dc.ClosePath()
	}

	// A failed fill leaves the frame without this shape
	_ = c.dc.Fill()
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.dc.Width() }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.dc.Height() }

// Context exposes the underlying gg context.
func (c *Canvas) Context() *gg.Context { return c.dc }

// EncodePNG writes the frame as PNG to w.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if err := c.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("snapshot: encode png: %w", err)
	}
	return nil
}

// SavePNG writes the frame to path, creating parent directories.
func (c *Canvas) SavePNG(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("snapshot: cannot create directory %s: %w", dir, err)
		}
	}
	if err := c.dc.SavePNG(path); err != nil {
		return fmt.Errorf("snapshot: save %s: %w", path, err)
	}
	return nil
}

// Close releases the gg context.
func (c *Canvas) Close() error {
	return c.dc.Close()
}
