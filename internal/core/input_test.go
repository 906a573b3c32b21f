package core

import "testing"

func TestInputFrameHeld(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)

	if !f.Held(ActionLeft) {
		t.Error("Left should be held")
	}
	if f.Held(ActionRight) {
		t.Error("Right should not be held")
	}

	// Held is level-triggered: reading it does not consume
	if !f.Held(ActionLeft) {
		t.Error("Left should still be held after a read")
	}
}

func TestInputFrameRestartConsumedOnce(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRestart)

	if !f.RestartRequested() {
		t.Fatal("first read should report the restart")
	}
	if f.RestartRequested() {
		t.Error("second read should not report the restart again")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Held(ActionLeft) || f.RestartRequested() {
		t.Error("zero-value frame should report nothing")
	}
	f.Set(ActionRight)
	if !f.Held(ActionRight) {
		t.Error("Set on zero-value frame should allocate")
	}
}

func TestInputFrameCloneIsIndependent(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)

	c := f.Clone()
	f.Clear()

	if !c.Has(ActionLeft) {
		t.Error("clone should keep actions after the source is cleared")
	}
	if f.Has(ActionLeft) {
		t.Error("Clear should drop all actions")
	}
}

func TestActionString(t *testing.T) {
	if ActionRestart.String() != "Restart" {
		t.Errorf("ActionRestart.String() = %q", ActionRestart.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}
