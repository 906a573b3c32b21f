package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/shape-dodger/internal/config"
	"github.com/vovakirdan/shape-dodger/internal/core"
	"github.com/vovakirdan/shape-dodger/internal/dodger"
	"github.com/vovakirdan/shape-dodger/internal/logging"
	"github.com/vovakirdan/shape-dodger/internal/snapshot"
	"github.com/vovakirdan/shape-dodger/internal/storage"
)

// instructionSeconds is how long the controls banner stays up after a start.
const instructionSeconds = 3

// GameOptions configures one terminal game.
type GameOptions struct {
	Config  config.DodgerConfig
	Runtime core.RuntimeConfig
	Kind    dodger.Kind
	Color   dodger.ColorID
	Player  string // Name recorded with scores

	Store         *storage.Store // Optional
	Logger        *log.Logger    // Optional
	ScreenshotDir string         // Defaults to ~/.dodger/screenshots
	HoldWindow    time.Duration  // Defaults to DefaultHoldWindow
}

// screenshotMsg reports the outcome of a ctrl+s capture.
type screenshotMsg struct {
	path string
	err  error
}

// GameModel is the Bubble Tea model for one Shape Dodger game.
type GameModel struct {
	game      *dodger.Game
	screen    *core.Screen
	cells     *CellRenderer
	input     *HoldInput
	keyMapper *KeyMapper
	opts      GameOptions
	clock     func() time.Time

	state      core.GameState
	paused     bool
	pumping    bool // a TickMsg is in flight
	quitting   bool
	backToMenu bool
	scoreSaved bool
	status     string
}

// NewGameModel creates a started game with the chosen setup.
func NewGameModel(opts GameOptions) GameModel {
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = 60
	}

	screen := core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH)
	cells := NewCellRenderer(screen, playArea(screen.Width(), screen.Height()))

	g := dodger.New(opts.Config, dodger.NewRand(opts.Runtime.Seed), cells)
	g.Reset(opts.Kind, opts.Color)

	m := GameModel{
		game:      g,
		screen:    screen,
		cells:     cells,
		input:     NewHoldInput(opts.HoldWindow),
		keyMapper: NewKeyMapper(),
		opts:      opts,
		clock:     time.Now,
		state:     g.State(),
		pumping:   true,
	}
	m.redraw()
	return m
}

// playArea is the region inside the border, above the status line.
func playArea(w, h int) core.Rect {
	return core.NewRect(1, 1, core.Max(w-2, 0), core.Max(h-3, 0))
}

// Init starts the frame pump.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.opts.Runtime.TickRate)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case screenshotMsg:
		if msg.err != nil {
			m.status = "screenshot failed"
			m.logger().Warn("screenshot failed", "error", msg.err)
		} else {
			m.status = "saved " + filepath.Base(msg.path)
			m.logger().Info("screenshot saved", "path", msg.path)
		}
		m.redraw()
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		return m, m.screenshotCmd()
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionLeft, core.ActionRight:
		if !m.paused {
			m.input.Press(action, m.clock())
		}

	case core.ActionRestart:
		// Only meaningful once the game is over
		if m.state.GameOver {
			m.input.Press(action, m.clock())
		}

	case core.ActionPause:
		if !m.state.GameOver {
			m.paused = !m.paused
			m.input.Release()
			m.redraw()
			if !m.paused && !m.pumping {
				m.pumping = true
				return m, tickCmd(m.opts.Runtime.TickRate)
			}
		}

	case core.ActionBack:
		if m.state.GameOver || m.paused {
			m.backToMenu = true
		}
	}

	return m, nil
}

// handleResize keeps the game running; positions are resolution independent.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.opts.Runtime.ScreenW = msg.Width
	m.opts.Runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.cells.SetArea(playArea(msg.Width, msg.Height))
	m.redraw()
	return m, nil
}

// handleTick advances the game by one frame.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	// The pump stops while paused and restarts on unpause
	if m.paused || m.backToMenu {
		m.pumping = false
		return m, nil
	}

	m.input.Advance(now)

	m.screen.Clear()
	m.drawFrame()
	result := m.game.Tick(m.input)
	m.state = result.State
	logging.Events(m.opts.Logger, result)

	if result.Has(core.EventRestarted) {
		m.scoreSaved = false
		m.status = ""
	}

	if m.state.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	m.drawHUD()
	return m, tickCmd(m.opts.Runtime.TickRate)
}

// saveScore records the finished run. Zero scores are not kept.
func (m *GameModel) saveScore() {
	if m.opts.Store == nil || m.state.Score <= 0 {
		return
	}
	kind, color := m.game.Setup()
	_, err := m.opts.Store.SaveScore(storage.Run{
		Player: m.opts.Player,
		Score:  m.state.Score,
		Shape:  kind.String(),
		Color:  color.String(),
		Ticks:  m.state.Ticks,
	})
	if err != nil {
		m.logger().Warn("could not save score", "error", err)
	}
}

// screenshotCmd renders the current state to a PNG off the update loop.
func (m GameModel) screenshotCmd() tea.Cmd {
	state := m.game.Snapshot()
	dir := m.opts.ScreenshotDir
	id := m.game.ID()
	return func() tea.Msg {
		if dir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return screenshotMsg{err: err}
			}
			dir = filepath.Join(home, ".dodger", "screenshots")
		}
		path := filepath.Join(dir, fmt.Sprintf("%s_%s.png", id, time.Now().Format("20060102_150405")))

		canvas := snapshot.Capture(state, snapshot.DefaultWidth, snapshot.DefaultHeight)
		defer canvas.Close()
		return screenshotMsg{path: path, err: canvas.SavePNG(path)}
	}
}

// redraw rebuilds the frame without advancing the game.
func (m *GameModel) redraw() {
	m.screen.Clear()
	m.drawFrame()
	m.game.Render()
	m.drawHUD()
}

func (m *GameModel) drawFrame() {
	w, h := m.screen.Width(), m.screen.Height()
	if w < 2 || h < 3 {
		return
	}
	m.screen.DrawBox(core.NewRect(0, 0, w, h-1))
	m.screen.DrawTextCentered(0, " "+m.game.Title()+" ")
}

// drawHUD draws the status line and any overlay on top of the play area.
func (m *GameModel) drawHUD() {
	h := m.screen.Height()
	if h < 3 {
		return
	}
	area := m.cells.Area()
	player := m.game.Player()
	color, _ := dodger.Lookup(player.Color)

	status := fmt.Sprintf(" Score: %d  Shape: %s  Color: ", m.state.Score, player.Kind)
	m.screen.DrawText(0, h-1, status)
	m.screen.DrawTextColored(len(status), h-1, color.String(), CellColor(player.Color))
	if m.status != "" {
		m.screen.DrawTextColored(len(status)+len(color.String())+2, h-1, m.status, core.ColorGray)
	}

	mid := area.Y + area.H/2
	switch {
	case m.state.GameOver:
		m.screen.DrawTextCentered(mid-1, fmt.Sprintf(" Game Over! Score: %d ", m.state.Score))
		m.screen.DrawTextCentered(mid+1, " r restart   b setup   q quit ")
	case m.paused:
		m.screen.DrawTextCentered(mid, " PAUSED ")
		m.screen.DrawTextCentered(mid+2, " p resume   b setup   q quit ")
	case m.state.Ticks < instructionSeconds*m.opts.Runtime.TickRate:
		m.screen.DrawTextCentered(area.Y+1, "←/→ or A/D move   catch your color, dodge the rest")
		m.screen.DrawTextCentered(area.Y+2, "p pause   ctrl+s screenshot   q quit")
	}
}

func (m GameModel) logger() *log.Logger {
	if m.opts.Logger == nil {
		return log.New(io.Discard)
	}
	return m.opts.Logger
}

// View renders the game.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.screen)
}

// State returns the game summary as of the last tick.
func (m GameModel) State() core.GameState {
	return m.state
}

// Paused reports whether the frame pump is suspended.
func (m GameModel) Paused() bool {
	return m.paused
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to setup.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}
