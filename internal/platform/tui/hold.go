package tui

import (
	"time"

	"github.com/vovakirdan/shape-dodger/internal/core"
)

// DefaultHoldWindow is how long a movement key counts as held after its last
// press or auto-repeat event.
const DefaultHoldWindow = 150 * time.Millisecond

// HoldInput turns discrete terminal key events into level-triggered movement.
// Terminals report presses and auto-repeats but never releases, so a key is
// held while its last event is younger than the window. Pressing the opposite
// direction releases the other one immediately.
type HoldInput struct {
	window  time.Duration
	now     time.Time
	pressed map[core.Action]time.Time
	restart bool
}

// NewHoldInput creates an input source with the given hold window.
func NewHoldInput(window time.Duration) *HoldInput {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HoldInput{
		window:  window,
		pressed: make(map[core.Action]time.Time),
	}
}

// Advance moves the clock used by Held forward. Called once per frame.
func (h *HoldInput) Advance(now time.Time) {
	if now.After(h.now) {
		h.now = now
	}
}

// Press records a key event that arrived at time at.
func (h *HoldInput) Press(a core.Action, at time.Time) {
	switch a {
	case core.ActionLeft:
		delete(h.pressed, core.ActionRight)
	case core.ActionRight:
		delete(h.pressed, core.ActionLeft)
	case core.ActionRestart:
		h.restart = true
		return
	}
	h.pressed[a] = at
	if at.After(h.now) {
		h.now = at
	}
}

// Held reports whether a was pressed within the hold window.
func (h *HoldInput) Held(a core.Action) bool {
	t, ok := h.pressed[a]
	if !ok {
		return false
	}
	return h.now.Sub(t) <= h.window
}

// RestartRequested reports and consumes a pending restart.
func (h *HoldInput) RestartRequested() bool {
	r := h.restart
	h.restart = false
	return r
}

// Release forgets every held key and any pending restart.
func (h *HoldInput) Release() {
	clear(h.pressed)
	h.restart = false
}

// Frame returns the currently held actions as an InputFrame.
func (h *HoldInput) Frame() core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range []core.Action{core.ActionLeft, core.ActionRight} {
		if h.Held(a) {
			f.Set(a)
		}
	}
	if h.restart {
		f.Set(core.ActionRestart)
	}
	return f
}
