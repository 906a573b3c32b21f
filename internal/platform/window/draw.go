package window

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/shape-dodger/internal/dodger"
)

// Background is the clear color, a dark gray.
var Background = color.RGBA{R: 38, G: 38, B: 38, A: 0xff}

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// drawItems replays a display list onto dst, mapping NDC to its bounds.
func drawItems(dst *ebiten.Image, items []Item) {
	b := dst.Bounds()
	vp := dodger.Viewport{W: float64(b.Dx()), H: float64(b.Dy())}

	for _, it := range items {
		clr := RGBA(it.Color)
		switch it.Kind {
		case dodger.KindRectangle, dodger.KindSquare:
			w, h := dodger.Extent(it.Kind, it.Size)
			x, y := vp.ToScreen(it.X-w/2, it.Y+h/2)
			sw, sh := vp.Scale(w, h)
			vector.DrawFilledRect(dst, float32(x), float32(y), float32(sw), float32(sh), clr, true)
		default:
			fillPolygon(dst, vp, dodger.Outline(it.Kind, it.X, it.Y, it.Size), clr)
		}
	}
}

// fillPolygon fills a convex outline given in NDC.
func fillPolygon(dst *ebiten.Image, vp dodger.Viewport, pts []dodger.Point, clr color.RGBA) {
	if len(pts) < 3 {
		return
	}

	var path vector.Path
	for i, p := range pts {
		x, y := vp.ToScreen(p.X, p.Y)
		if i == 0 {
			path.MoveTo(float32(x), float32(y))
			continue
		}
		path.LineTo(float32(x), float32(y))
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b := float32(clr.R)/0xff, float32(clr.G)/0xff, float32(clr.B)/0xff
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = r
		vs[i].ColorG = g
		vs[i].ColorB = b
		vs[i].ColorA = 1
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(vs, is, whiteSubImage, op)
}
