package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/shape-dodger/internal/config"
	"github.com/vovakirdan/shape-dodger/internal/core"
	"github.com/vovakirdan/shape-dodger/internal/storage"
)

type stage int

const (
	stageSetup stage = iota
	stagePlay
	stageScores
)

// SessionOptions configures a session.
type SessionOptions struct {
	Config  config.DodgerConfig
	Runtime core.RuntimeConfig
	Player  string
	Store   *storage.Store // Optional
	Logger  *log.Logger    // Optional

	// Initial is preselected in the picker, or used directly with SkipSetup.
	Initial   Setup
	SkipSetup bool
}

// SessionModel manages the full flow: setup -> game -> setup, with the
// scoreboard reachable from setup. It is the top-level model both for local
// play and for SSH sessions.
type SessionModel struct {
	opts     SessionOptions
	stage    stage
	setup    SetupModel
	game     *GameModel
	scores   ScoreboardModel
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(opts SessionOptions) SessionModel {
	m := SessionModel{
		opts:  opts,
		setup: NewSetupModel(opts.Initial, opts.Runtime.ScreenW, opts.Runtime.ScreenH),
	}
	if opts.SkipSetup {
		m.startGame(opts.Initial)
	}
	return m
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	if m.stage == stagePlay {
		return m.game.Init()
	}
	return m.setup.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Runtime.ScreenW = wsm.Width
		m.opts.Runtime.ScreenH = wsm.Height
	}

	switch m.stage {
	case stagePlay:
		return m.updateGame(msg)
	case stageScores:
		return m.updateScores(msg)
	}
	return m.updateSetup(msg)
}

// updateSetup handles updates in the picker.
func (m SessionModel) updateSetup(msg tea.Msg) (tea.Model, tea.Cmd) {
	newSetup, cmd := m.setup.Update(msg)
	if s, ok := newSetup.(SetupModel); ok {
		m.setup = s
	}

	if m.setup.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.setup.WantsScoreboard() {
		m.stage = stageScores
		m.scores = NewScoreboardModel(m.opts.Store, m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH)
		return m, m.scores.Init()
	}

	if setup, ok := m.setup.Selected(); ok {
		m.startGame(setup)
		return m, m.game.Init()
	}

	return m, cmd
}

func (m *SessionModel) startGame(setup Setup) {
	rt := m.opts.Runtime
	rt.Seed = time.Now().UnixNano()
	if m.opts.Runtime.Seed != 0 {
		rt.Seed = m.opts.Runtime.Seed
	}

	g := NewGameModel(GameOptions{
		Config:  m.opts.Config,
		Runtime: rt,
		Kind:    setup.Kind,
		Color:   setup.Color,
		Player:  m.opts.Player,
		Store:   m.opts.Store,
		Logger:  m.opts.Logger,
	})
	m.game = &g
	m.stage = stagePlay
	m.opts.Initial = setup
}

// updateGame handles updates while playing.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if g, ok := newModel.(GameModel); ok {
		m.game = &g
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		m.stage = stageSetup
		m.game = nil
		m.setup = NewSetupModel(m.opts.Initial, m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH)
		return m, m.setup.Init()
	}

	return m, cmd
}

// updateScores handles updates in the scoreboard.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scores.Update(msg)
	if s, ok := newModel.(ScoreboardModel); ok {
		m.scores = s
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.scores.IsGoingBack() {
		m.stage = stageSetup
		m.setup = NewSetupModel(m.opts.Initial, m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH)
		return m, m.setup.Init()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.stage {
	case stagePlay:
		return m.game.View()
	case stageScores:
		return m.scores.View()
	}
	return m.setup.View()
}

// RunSession runs a local session in the alternate screen.
func RunSession(opts SessionOptions) error {
	p := tea.NewProgram(
		NewSessionModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
