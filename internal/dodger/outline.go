package dodger

import "math"

// CircleSegments is the number of segments used to approximate circles.
const CircleSegments = 50

// Point is a position in normalized device coordinates.
type Point struct {
	X, Y float64
}

// Extent returns the drawn width and height of a shape. Rectangles are drawn
// half again as wide as they are tall; every other kind fits a size square.
func Extent(kind Kind, size float64) (w, h float64) {
	if kind == KindRectangle {
		return size * 1.5, size
	}
	return size, size
}

// Outline returns the polygon drawn for a shape centered at (x, y), counter
// clockwise in NDC (y up).
func Outline(kind Kind, x, y, size float64) []Point {
	switch kind {
	case KindTriangle:
		h := size / 2
		return []Point{{x, y + h}, {x - h, y - h}, {x + h, y - h}}
	case KindCircle:
		r := size / 2
		pts := make([]Point, CircleSegments)
		for i := range pts {
			a := 2 * math.Pi * float64(i) / CircleSegments
			pts[i] = Point{x + math.Cos(a)*r, y + math.Sin(a)*r}
		}
		return pts
	default:
		w, h := Extent(kind, size)
		return []Point{
			{x - w/2, y - h/2},
			{x + w/2, y - h/2},
			{x + w/2, y + h/2},
			{x - w/2, y + h/2},
		}
	}
}

// Contains reports whether (px, py) lies inside the drawn shape.
func Contains(kind Kind, x, y, size, px, py float64) bool {
	dx, dy := px-x, py-y
	switch kind {
	case KindCircle:
		r := size / 2
		return dx*dx+dy*dy <= r*r
	case KindTriangle:
		h := size / 2
		if dy < -h || dy > h {
			return false
		}
		// Half width shrinks linearly from h at the base to 0 at the apex
		return math.Abs(dx) <= (h-dy)/2
	default:
		w, h := Extent(kind, size)
		return math.Abs(dx) <= w/2 && math.Abs(dy) <= h/2
	}
}

// Viewport maps NDC onto a pixel or cell grid with y growing downward.
type Viewport struct {
	W, H float64
}

// ToScreen converts an NDC point to grid coordinates.
func (v Viewport) ToScreen(x, y float64) (sx, sy float64) {
	return (x + 1) / 2 * v.W, (1 - y) / 2 * v.H
}

// ToNDC converts grid coordinates back to NDC.
func (v Viewport) ToNDC(sx, sy float64) (x, y float64) {
	return sx/v.W*2 - 1, 1 - sy/v.H*2
}

// Scale converts an NDC length along each axis to grid units.
func (v Viewport) Scale(w, h float64) (sw, sh float64) {
	return w / 2 * v.W, h / 2 * v.H
}
