package sim

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/shape-dodger/internal/config"
	"github.com/vovakirdan/shape-dodger/internal/core"
	"github.com/vovakirdan/shape-dodger/internal/dodger"
	"github.com/vovakirdan/shape-dodger/internal/trace"
)

func TestRunStopsAtTickBudget(t *testing.T) {
	rec := trace.NewRecorder("budget", 1)
	sum, err := Run(context.Background(), Options{
		Config:   config.DefaultDodgerConfig(),
		Seed:     1,
		MaxTicks: 50,
		Pilot:    Idle{},
		Recorder: rec,
	})
	require.NoError(t, err)

	assert.Equal(t, 50, sum.Ticks)
	assert.Equal(t, 50, rec.Len())
	assert.Zero(t, sum.Games)
	assert.Zero(t, sum.Spawned, "nothing spawns in the first 100 ticks")
}

// watchPilot moves right and remembers every state it was shown.
type watchPilot struct {
	seen []dodger.State
}

func (*watchPilot) Name() string { return "watch" }
func (p *watchPilot) Decide(s dodger.State, frame *core.InputFrame) {
	p.seen = append(p.seen, s)
	frame.Set(core.ActionRight)
}

func TestRunPilotSeesRecordedState(t *testing.T) {
	rec := trace.NewRecorder("watch", 3)
	pilot := &watchPilot{}
	_, err := Run(context.Background(), Options{
		Config:   config.DefaultDodgerConfig(),
		Seed:     3,
		MaxTicks: 20,
		Pilot:    pilot,
		Recorder: rec,
	})
	require.NoError(t, err)

	rows := rec.Rows()
	require.Len(t, pilot.seen, 20)
	require.Len(t, rows, 20)

	assert.Zero(t, pilot.seen[0].Player.X, "first decision sees the reset state")
	for i := 1; i < len(rows); i++ {
		assert.Equal(t, rows[i-1].PlayerX, float32(pilot.seen[i].Player.X), "tick %d", i)
	}
	assert.Greater(t, rows[len(rows)-1].PlayerX, float32(0))
}

func TestRunIsDeterministic(t *testing.T) {
	opts := Options{
		Config:   config.DefaultDodgerConfig(),
		Seed:     99,
		Kind:     dodger.KindSquare,
		Color:    dodger.Green,
		MaxTicks: 3000,
		Games:    2,
	}

	a, err := Run(context.Background(), opts)
	require.NoError(t, err)
	b, err := Run(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestRunRestartsAfterGameOver(t *testing.T) {
	sum, err := Run(context.Background(), Options{
		Config:   config.DefaultDodgerConfig(),
		Seed:     5,
		MaxTicks: 200_000,
		Pilot:    Idle{},
		Games:    3,
	})
	require.NoError(t, err)

	require.Equal(t, 3, sum.Games)
	assert.Len(t, sum.Scores, 3)
	for _, s := range sum.Scores {
		assert.LessOrEqual(t, s, sum.BestScore)
	}
	assert.True(t, sum.Final.Over)
}

func TestRunHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sum, err := Run(ctx, Options{Config: config.DefaultDodgerConfig(), MaxTicks: 100})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, sum.Ticks)
}

func TestChaseMovesTowardMatch(t *testing.T) {
	cfg := config.DefaultDodgerConfig()
	p := NewChase(cfg)

	s := dodger.State{
		Started: true,
		Player:  dodger.Shape{X: 0, Y: -0.8, Size: 0.2, Color: dodger.Red.RGB()},
		Obstacles: []dodger.Shape{
			{X: 0.6, Y: 0.2, Size: 0.15, Color: dodger.Red.RGB()},
		},
	}

	frame := core.NewInputFrame()
	p.Decide(s, &frame)
	assert.True(t, frame.Has(core.ActionRight))
	assert.False(t, frame.Has(core.ActionLeft))
}

func TestChaseDodgesMismatch(t *testing.T) {
	cfg := config.DefaultDodgerConfig()
	p := NewChase(cfg)

	s := dodger.State{
		Started: true,
		Player:  dodger.Shape{X: 0, Y: -0.8, Size: 0.2, Color: dodger.Red.RGB()},
		Obstacles: []dodger.Shape{
			{X: 0.05, Y: -0.5, Size: 0.15, Color: dodger.Blue.RGB()},
		},
	}

	frame := core.NewInputFrame()
	p.Decide(s, &frame)
	assert.True(t, frame.Has(core.ActionLeft))
}

func TestParsePilot(t *testing.T) {
	cfg := config.DefaultDodgerConfig()
	rng := dodger.NewRand(1)

	for name, want := range map[string]string{"": "chase", "Random": "random", "idle": "idle"} {
		p, err := ParsePilot(name, cfg, rng)
		require.NoError(t, err)
		assert.Equal(t, want, p.Name())
	}

	_, err := ParsePilot("genius", cfg, rng)
	assert.Error(t, err)
}

func TestRandomPilotHoldsDirection(t *testing.T) {
	p := NewRandom(dodger.NewRand(3))

	var last core.InputFrame
	changes := 0
	for i := 0; i < 500; i++ {
		frame := core.NewInputFrame()
		p.Decide(dodger.State{}, &frame)
		if i > 0 && frame.Has(core.ActionLeft) != last.Has(core.ActionLeft) {
			changes++
		}
		last = frame
	}

	assert.Less(t, changes, 50, "direction should persist across ticks")
}
