package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/shape-dodger/internal/config"
	"github.com/vovakirdan/shape-dodger/internal/core"
	"github.com/vovakirdan/shape-dodger/internal/dodger"
)

func newTestSession(skip bool) SessionModel {
	return NewSessionModel(SessionOptions{
		Config:    config.DefaultDodgerConfig(),
		Runtime:   core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 3},
		Player:    "tester",
		Initial:   Setup{Kind: dodger.KindTriangle, Color: dodger.Magenta},
		SkipSetup: skip,
	})
}

func updateSession(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	s, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return s, cmd
}

func TestSessionStartsInSetup(t *testing.T) {
	m := newTestSession(false)
	if m.stage != stageSetup {
		t.Errorf("stage = %v, expected setup", m.stage)
	}
	if m.game != nil {
		t.Error("no game before setup is confirmed")
	}
}

func TestSessionSkipSetup(t *testing.T) {
	m := newTestSession(true)
	if m.stage != stagePlay || m.game == nil {
		t.Fatal("SkipSetup should start playing immediately")
	}
	kind, color := m.game.game.Setup()
	if kind != dodger.KindTriangle || color != dodger.Magenta {
		t.Errorf("setup = %v/%v, expected triangle/magenta", kind, color)
	}
}

func TestSessionFlow(t *testing.T) {
	m := newTestSession(false)

	m, cmd := updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.stage != stagePlay {
		t.Fatalf("enter should start the game, stage = %v", m.stage)
	}
	if cmd == nil {
		t.Error("starting a game should start the frame pump")
	}
	if m.quitting {
		t.Error("starting a game must not quit the session")
	}

	// Pause, then back to setup
	m, _ = updateSession(t, m, runeKey('p'))
	m, _ = updateSession(t, m, runeKey('b'))
	if m.stage != stageSetup {
		t.Fatalf("back should return to setup, stage = %v", m.stage)
	}
	if got, _ := m.setup.Selected(); got.Kind != dodger.KindTriangle || got.Color != dodger.Magenta {
		t.Errorf("setup should remember the last choice, got %+v", got)
	}

	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.stage != stageScores {
		t.Fatalf("tab should open scores, stage = %v", m.stage)
	}

	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.stage != stageSetup {
		t.Fatalf("esc should leave scores, stage = %v", m.stage)
	}

	m, cmd = updateSession(t, m, runeKey('q'))
	if !m.quitting || cmd == nil {
		t.Error("q in setup should quit the session")
	}
	if m.View() != "" {
		t.Error("quitting view should be empty")
	}
}

func TestSessionResizeTracked(t *testing.T) {
	m := newTestSession(false)
	m, _ = updateSession(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	if m.opts.Runtime.ScreenW != 100 || m.opts.Runtime.ScreenH != 40 {
		t.Errorf("runtime size = %dx%d", m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH)
	}

	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if w := m.game.screen.Width(); w != 100 {
		t.Errorf("game screen width = %d, expected 100", w)
	}
}
