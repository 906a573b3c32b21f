package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/shape-dodger/internal/config"
	"github.com/vovakirdan/shape-dodger/internal/core"
	"github.com/vovakirdan/shape-dodger/internal/dodger"
)

type leftPilot struct{}

func (leftPilot) Name() string { return "always-left" }
func (leftPilot) Decide(_ dodger.State, frame *core.InputFrame) {
	frame.Set(core.ActionLeft)
}

func TestPilotsBuiltins(t *testing.T) {
	var names []string
	for _, p := range Pilots() {
		names = append(names, p.Name)
		assert.NotEmpty(t, p.Description, p.Name)
	}

	assert.Subset(t, names, []string{"chase", "idle", "random"})
	assert.IsNonDecreasing(t, names)
}

func TestRegisterCustomPilot(t *testing.T) {
	t.Cleanup(func() {
		mu.Lock()
		delete(pilots, "always-left")
		mu.Unlock()
	})

	Register("Always-Left", "Hold left forever", func(config.DodgerConfig, dodger.Rand) Pilot {
		return leftPilot{}
	})

	p, err := ParsePilot("always-left", config.DefaultDodgerConfig(), dodger.NewRand(1))
	require.NoError(t, err)
	assert.Equal(t, "always-left", p.Name())

	assert.Panics(t, func() {
		Register("always-left", "", func(config.DodgerConfig, dodger.Rand) Pilot { return Idle{} })
	})
}

func TestParsePilotUnknownListsNames(t *testing.T) {
	_, err := ParsePilot("genius", config.DefaultDodgerConfig(), dodger.NewRand(1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chase")
	assert.Contains(t, err.Error(), "idle")
}
