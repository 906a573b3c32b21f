package window

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/shape-dodger/internal/config"
	"github.com/vovakirdan/shape-dodger/internal/core"
	"github.com/vovakirdan/shape-dodger/internal/dodger"
	"github.com/vovakirdan/shape-dodger/internal/logging"
	"github.com/vovakirdan/shape-dodger/internal/storage"
)

// Logical window size in pixels.
const (
	Width  = 800
	Height = 600
)

// Options configures a window game.
type Options struct {
	Config  config.DodgerConfig
	Runtime core.RuntimeConfig
	Kind    dodger.Kind
	Color   dodger.ColorID
	Player  string

	Store  *storage.Store // Optional
	Logger *log.Logger    // Optional
}

// Host adapts a dodger.Game to ebiten.Game.
type Host struct {
	game   *dodger.Game
	list   *DisplayList
	keys   *Keys
	opts   Options
	logger *log.Logger

	state      core.GameState
	scoreSaved bool
}

// NewHost creates a started game drawing into a display list.
func NewHost(opts Options) *Host {
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	list := &DisplayList{}
	g := dodger.New(opts.Config, dodger.NewRand(opts.Runtime.Seed), list)
	g.Reset(opts.Kind, opts.Color)
	g.Render()

	return &Host{
		game:   g,
		list:   list,
		keys:   NewKeys(),
		opts:   opts,
		logger: logger,
		state:  g.State(),
	}
}

// Update implements ebiten.Game.
func (h *Host) Update() error {
	return h.step(ebiten.IsKeyPressed, inpututil.IsKeyJustPressed)
}

// step runs one frame against the given keyboard view.
func (h *Host) step(pressed, justPressed KeyFunc) error {
	h.keys.Poll(pressed, justPressed)
	if h.keys.Quit() {
		return ebiten.Termination
	}

	h.list.Reset()
	res := h.game.Tick(h.keys)
	h.state = res.State
	logging.Events(h.logger, res)

	if res.Has(core.EventRestarted) {
		h.scoreSaved = false
	}
	if h.state.GameOver && !h.scoreSaved {
		h.saveScore()
		h.scoreSaved = true
	}
	return nil
}

func (h *Host) saveScore() {
	if h.opts.Store == nil || h.state.Score <= 0 {
		return
	}
	kind, color := h.game.Setup()
	_, err := h.opts.Store.SaveScore(storage.Run{
		Player: h.opts.Player,
		Score:  h.state.Score,
		Shape:  kind.String(),
		Color:  color.String(),
		Ticks:  h.state.Ticks,
	})
	if err != nil {
		h.logger.Warn("could not save score", "error", err)
	}
}

// Draw implements ebiten.Game.
func (h *Host) Draw(screen *ebiten.Image) {
	screen.Fill(Background)
	drawItems(screen, h.list.Items())

	player := h.game.Player()
	color, _ := dodger.Lookup(player.Color)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d  Shape: %s  Color: %s", h.state.Score, player.Kind, color), 10, 10)

	if h.state.GameOver {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Game Over! Score: %d", h.state.Score), Width/2-70, Height/2-20)
		ebitenutil.DebugPrintAt(screen, "R restart   Esc quit", Width/2-70, Height/2)
	} else if h.state.Ticks < 3*h.tickRate() {
		ebitenutil.DebugPrintAt(screen, "Left/Right or A/D move. Catch your color, dodge the rest.", 10, 30)
	}
}

// Layout implements ebiten.Game. The logical screen is fixed; NDC positions
// scale to the window.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	return Width, Height
}

// State returns the game summary as of the last frame.
func (h *Host) State() core.GameState {
	return h.state
}

func (h *Host) tickRate() int {
	if h.opts.Runtime.TickRate <= 0 {
		return 60
	}
	return h.opts.Runtime.TickRate
}

// Run opens the window and blocks until it closes.
func Run(opts Options) error {
	h := NewHost(opts)

	ebiten.SetWindowSize(Width, Height)
	ebiten.SetWindowTitle("Shape Dodger")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(h.tickRate())

	h.logger.Info("window opened", "shape", opts.Kind, "color", opts.Color, "tps", h.tickRate())
	if err := ebiten.RunGame(h); err != nil {
		return err
	}
	return nil
}
