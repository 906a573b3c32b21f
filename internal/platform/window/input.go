package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/shape-dodger/internal/core"
)

// KeyFunc reports the state of a key. ebiten.IsKeyPressed and
// inpututil.IsKeyJustPressed both fit.
type KeyFunc func(ebiten.Key) bool

var bindings = map[core.Action][]ebiten.Key{
	core.ActionLeft:    {ebiten.KeyArrowLeft, ebiten.KeyA},
	core.ActionRight:   {ebiten.KeyArrowRight, ebiten.KeyD},
	core.ActionRestart: {ebiten.KeyR},
	core.ActionQuit:    {ebiten.KeyEscape, ebiten.KeyQ},
}

// Keys is a level-triggered InputSource fed from the window's keyboard once
// per frame. Movement follows the held state; restart and quit fire on the
// frame the key goes down.
type Keys struct {
	held    map[core.Action]bool
	restart bool
	quit    bool
}

// NewKeys creates an empty keyboard state.
func NewKeys() *Keys {
	return &Keys{held: make(map[core.Action]bool)}
}

// Poll samples the keyboard. pressed reports held keys, justPressed keys that
// went down this frame.
func (k *Keys) Poll(pressed, justPressed KeyFunc) {
	for _, a := range []core.Action{core.ActionLeft, core.ActionRight} {
		k.held[a] = anyKey(pressed, bindings[a])
	}
	k.restart = anyKey(justPressed, bindings[core.ActionRestart])
	k.quit = anyKey(justPressed, bindings[core.ActionQuit])
}

func anyKey(f KeyFunc, keys []ebiten.Key) bool {
	for _, key := range keys {
		if f(key) {
			return true
		}
	}
	return false
}

// Held implements dodger.InputSource.
func (k *Keys) Held(a core.Action) bool {
	return k.held[a]
}

// RestartRequested implements dodger.InputSource. The request is consumed.
func (k *Keys) RestartRequested() bool {
	r := k.restart
	k.restart = false
	return r
}

// Quit reports whether a quit key went down this frame.
func (k *Keys) Quit() bool {
	return k.quit
}
