package snapshot

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/shape-dodger/internal/dodger"
)

func rgbaAt(t *testing.T, c *Canvas, x, y int) color.RGBA {
	t.Helper()
	return color.RGBAModel.Convert(c.Context().Image().At(x, y)).(color.RGBA)
}

func TestNewDefaultsSize(t *testing.T) {
	c := New(0, -1)
	defer c.Close()

	assert.Equal(t, DefaultWidth, c.Width())
	assert.Equal(t, DefaultHeight, c.Height())
}

func TestClearUsesBackground(t *testing.T) {
	c := New(40, 30)
	defer c.Close()

	px := rgbaAt(t, c, 5, 5)
	assert.InDelta(t, 38, int(px.R), 2)
	assert.Equal(t, px.R, px.G)
	assert.Equal(t, px.G, px.B)
}

func TestDrawFillsShapeCenter(t *testing.T) {
	tests := []struct {
		kind  dodger.Kind
		color dodger.ColorID
	}{
		{dodger.KindRectangle, dodger.Red},
		{dodger.KindCircle, dodger.Green},
		{dodger.KindTriangle, dodger.Blue},
		{dodger.KindSquare, dodger.Yellow},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			c := New(200, 200)
			defer c.Close()

			c.Draw(tt.kind, 0, 0, 0.5, tt.color.RGB())

			want := tt.color.RGB()
			px := rgbaAt(t, c, 100, 100)
			assert.InDelta(t, want.R*255, float64(px.R), 2)
			assert.InDelta(t, want.G*255, float64(px.G), 2)
			assert.InDelta(t, want.B*255, float64(px.B), 2)

			corner := rgbaAt(t, c, 2, 2)
			assert.InDelta(t, 38, int(corner.R), 2, "corner should stay background")
		})
	}
}

func TestCaptureDrawsState(t *testing.T) {
	s := dodger.State{
		Started: true,
		Player:  dodger.Shape{Kind: dodger.KindSquare, X: 0, Y: -0.8, Size: 0.2, Color: dodger.Cyan.RGB()},
		Obstacles: []dodger.Shape{
			{Kind: dodger.KindSquare, X: 0.5, Y: 0.5, Size: 0.15, Color: dodger.Magenta.RGB()},
		},
	}

	c := Capture(s, 100, 100)
	defer c.Close()

	player := rgbaAt(t, c, 50, 90)
	assert.Greater(t, int(player.G), 200)
	assert.Greater(t, int(player.B), 200)

	obstacle := rgbaAt(t, c, 75, 25)
	assert.Greater(t, int(obstacle.R), 200)
	assert.Less(t, int(obstacle.G), 40)
}

func TestCaptureNotStartedIsBlank(t *testing.T) {
	c := Capture(dodger.State{Player: dodger.Shape{Size: 1, Color: dodger.Red.RGB()}}, 20, 20)
	defer c.Close()

	px := rgbaAt(t, c, 10, 10)
	assert.InDelta(t, 38, int(px.R), 2)
}

func TestSavePNG(t *testing.T) {
	c := New(64, 48)
	defer c.Close()
	c.Draw(dodger.KindCircle, 0, 0, 1, dodger.Red.RGB())

	path := filepath.Join(t.TempDir(), "shots", "frame.png")
	require.NoError(t, c.SavePNG(path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 48, img.Bounds().Dy())
}

func TestEncodePNG(t *testing.T) {
	c := New(16, 16)
	defer c.Close()

	var buf bytes.Buffer
	require.NoError(t, c.EncodePNG(&buf))

	cfg, err := png.DecodeConfig(&buf)
	require.NoError(t, err)
	assert.Equal(t, 16, cfg.Width)
	assert.Equal(t, 16, cfg.Height)
}
