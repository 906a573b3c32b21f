package dodger

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/vovakirdan/shape-dodger/internal/core"
)

// Kind is the geometric kind of a shape.
type Kind int

const (
	KindRectangle Kind = iota
	KindCircle
	KindTriangle
	KindSquare
)

// KindCount is the number of shape kinds.
const KindCount = 4

var kindNames = [KindCount]string{"rectangle", "circle", "triangle", "square"}

// String returns the lowercase kind name.
func (k Kind) String() string {
	if !k.Valid() {
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Valid reports whether k is one of the four kinds.
func (k Kind) Valid() bool {
	return k >= 0 && k < KindCount
}

// Next returns the kind following k in the cycle rectangle, circle, triangle, square.
func (k Kind) Next() Kind {
	return (k + 1) % KindCount
}

// KindFromIndex converts a setup index to a Kind. Indices outside 0..3
// default to KindRectangle.
func KindFromIndex(i int) Kind {
	k := Kind(i)
	if !k.Valid() {
		return KindRectangle
	}
	return k
}

// ParseKind accepts a kind name ("circle", "tri"...) or a numeric index.
// Numeric indices outside the valid range default to KindRectangle; unknown
// names are an error.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if i, err := strconv.Atoi(s); err == nil {
		return KindFromIndex(i), nil
	}
	for i, name := range kindNames {
		if s == name || (len(s) >= 3 && strings.HasPrefix(name, s)) {
			return Kind(i), nil
		}
	}
	return KindRectangle, fmt.Errorf("dodger: unknown shape %q", s)
}

// RGB is a color with channels in [0, 1].
type RGB struct {
	R, G, B float64
}

// Matches reports whether every channel differs from o by less than tol.
func (c RGB) Matches(o RGB, tol float64) bool {
	return math.Abs(c.R-o.R) < tol &&
		math.Abs(c.G-o.G) < tol &&
		math.Abs(c.B-o.B) < tol
}

// ColorID indexes the fixed six-color palette.
type ColorID int

const (
	Red ColorID = iota
	Green
	Blue
	Yellow
	Magenta
	Cyan
)

// ColorCount is the number of palette entries.
const ColorCount = 6

var palette = [ColorCount]RGB{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
	{1, 1, 0},
	{1, 0, 1},
	{0, 1, 1},
}

var colorNames = [ColorCount]string{"red", "green", "blue", "yellow", "magenta", "cyan"}

// Valid reports whether c indexes the palette.
func (c ColorID) Valid() bool {
	return c >= 0 && c < ColorCount
}

// RGB returns the palette entry for c. Invalid ids return red.
func (c ColorID) RGB() RGB {
	if !c.Valid() {
		return palette[Red]
	}
	return palette[c]
}

// String returns the lowercase color name.
func (c ColorID) String() string {
	if !c.Valid() {
		return "color(" + strconv.Itoa(int(c)) + ")"
	}
	return colorNames[c]
}

// ColorFromIndex converts a setup index to a ColorID. Indices outside 0..5
// default to Red.
func ColorFromIndex(i int) ColorID {
	c := ColorID(i)
	if !c.Valid() {
		return Red
	}
	return c
}

// ParseColor accepts a color name ("yellow", "mag"...) or a numeric index,
// with the same defaulting rules as ParseKind.
func ParseColor(s string) (ColorID, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if i, err := strconv.Atoi(s); err == nil {
		return ColorFromIndex(i), nil
	}
	for i, name := range colorNames {
		if s == name || (len(s) >= 3 && strings.HasPrefix(name, s)) {
			return ColorID(i), nil
		}
	}
	return Red, fmt.Errorf("dodger: unknown color %q", s)
}

// Lookup finds the palette entry equal to rgb.
func Lookup(rgb RGB) (ColorID, bool) {
	for i, p := range palette {
		if p == rgb {
			return ColorID(i), true
		}
	}
	return Red, false
}

// Shape is the player or a falling obstacle. Positions and sizes are in
// normalized device coordinates.
type Shape struct {
	Kind      Kind
	X, Y      float64
	Size      float64
	Color     RGB
	FallSpeed float64 // Obstacles only
}

// Box returns the collision box. Every kind collides as a size×size square
// regardless of how it is drawn.
func (s Shape) Box() core.Box {
	return core.SquareBox(s.X, s.Y, s.Size)
}
