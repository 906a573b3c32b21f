package tui

import (
	"math"

	"github.com/vovakirdan/shape-dodger/internal/core"
	"github.com/vovakirdan/shape-dodger/internal/dodger"
)

// ShapeRune fills every cell covered by a shape.
const ShapeRune = '█'

// CellColor maps a shape color to the nearest terminal color.
// Colors outside the palette render white.
func CellColor(c dodger.RGB) core.Color {
	if id, ok := dodger.Lookup(c); ok {
		return core.PaletteColor(int(id))
	}
	return core.ColorWhite
}

// CellRenderer rasterizes shapes into a region of a Screen. A cell is filled
// when its center lies inside the shape; shapes smaller than a cell still
// mark the cell under their center.
type CellRenderer struct {
	screen *core.Screen
	area   core.Rect
}

// NewCellRenderer draws into area of s.
func NewCellRenderer(s *core.Screen, area core.Rect) *CellRenderer {
	return &CellRenderer{screen: s, area: area}
}

// SetArea moves the drawing region, e.g. after a resize.
func (r *CellRenderer) SetArea(area core.Rect) {
	r.area = area
}

// Area returns the drawing region.
func (r *CellRenderer) Area() core.Rect {
	return r.area
}

// Draw implements dodger.Renderer.
func (r *CellRenderer) Draw(kind dodger.Kind, x, y, size float64, color dodger.RGB) {
	if r.area.W <= 0 || r.area.H <= 0 {
		return
	}
	vp := dodger.Viewport{W: float64(r.area.W), H: float64(r.area.H)}
	cellColor := CellColor(color)

	w, h := dodger.Extent(kind, size)
	left, top := vp.ToScreen(x-w/2, y+h/2)
	right, bottom := vp.ToScreen(x+w/2, y-h/2)

	x0 := core.Max(int(math.Floor(left)), 0)
	x1 := core.Min(int(math.Ceil(right)), r.area.W)
	y0 := core.Max(int(math.Floor(top)), 0)
	y1 := core.Min(int(math.Ceil(bottom)), r.area.H)

	filled := false
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			px, py := vp.ToNDC(float64(cx)+0.5, float64(cy)+0.5)
			if dodger.Contains(kind, x, y, size, px, py) {
				r.screen.SetColored(r.area.X+cx, r.area.Y+cy, ShapeRune, cellColor)
				filled = true
			}
		}
	}

	if !filled {
		sx, sy := vp.ToScreen(x, y)
		cx, cy := int(math.Floor(sx)), int(math.Floor(sy))
		if cx >= 0 && cx < r.area.W && cy >= 0 && cy < r.area.H {
			r.screen.SetColored(r.area.X+cx, r.area.Y+cy, ShapeRune, cellColor)
		}
	}
}
