// Package core provides fundamental types and utilities shared by the
// simulation and its hosts. It contains no external dependencies (especially
// no Bubble Tea or ebiten) to keep game logic pure and testable.
package core

// Rect represents an integer cell rectangle on a Screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Box is an axis-aligned box in normalized device coordinates, described by
// its center and half extents.
type Box struct {
	CX, CY float64
	HalfW  float64
	HalfH  float64
}

// SquareBox returns the box of a square of side size centered at (x, y).
func SquareBox(x, y, size float64) Box {
	return Box{CX: x, CY: y, HalfW: size / 2, HalfH: size / 2}
}

// Overlaps reports whether two boxes overlap. Boxes that only touch along an
// edge count as overlapping.
func (b Box) Overlaps(o Box) bool {
	return !(b.CX+b.HalfW < o.CX-o.HalfW || b.CX-b.HalfW > o.CX+o.HalfW ||
		b.CY+b.HalfH < o.CY-o.HalfH || b.CY-b.HalfH > o.CY+o.HalfH)
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
