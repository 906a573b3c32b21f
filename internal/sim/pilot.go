package sim

import (
	"math"

	"github.com/vovakirdan/shape-dodger/internal/config"
	"github.com/vovakirdan/shape-dodger/internal/core"
	"github.com/vovakirdan/shape-dodger/internal/dodger"
)

// Pilot chooses the held keys for the next tick from the current state.
type Pilot interface {
	Name() string
	Decide(s dodger.State, frame *core.InputFrame)
}

// Idle never presses anything.
type Idle struct{}

func (Idle) Name() string                          { return "idle" }
func (Idle) Decide(dodger.State, *core.InputFrame) {}

// Random holds a random direction for a random number of ticks.
type Random struct {
	rng   dodger.Rand
	dir   core.Action
	ticks int
}

// NewRandom creates a random pilot drawing from rng.
func NewRandom(rng dodger.Rand) *Random {
	return &Random{rng: rng}
}

func (p *Random) Name() string { return "random" }

func (p *Random) Decide(_ dodger.State, frame *core.InputFrame) {
	if p.ticks <= 0 {
		switch p.rng.Intn(3) {
		case 0:
			p.dir = core.ActionLeft
		case 1:
			p.dir = core.ActionRight
		default:
			p.dir = core.ActionNone
		}
		p.ticks = 10 + p.rng.Intn(50)
	}
	p.ticks--
	if p.dir != core.ActionNone {
		frame.Set(p.dir)
	}
}

// Chase steers toward the lowest obstacle of the player's color and away
// from any other obstacle about to land.
type Chase struct {
	cfg config.DodgerConfig
}

// NewChase creates a chasing pilot for the given game config.
func NewChase(cfg config.DodgerConfig) *Chase {
	return &Chase{cfg: cfg}
}

func (p *Chase) Name() string { return "chase" }

func (p *Chase) Decide(s dodger.State, frame *core.InputFrame) {
	player := s.Player
	tol := p.cfg.Scoring.ColorTolerance
	reach := player.Size + p.cfg.Obstacles.Size

	target := player.X
	bestY := math.Inf(1)
	for _, o := range s.Obstacles {
		if o.Y < player.Y-reach {
			continue
		}
		if player.Color.Matches(o.Color, tol) && o.Y < bestY {
			bestY = o.Y
			target = o.X
		}
	}

	// Danger overrides the target when a mismatched obstacle is close above
	for _, o := range s.Obstacles {
		if player.Color.Matches(o.Color, tol) {
			continue
		}
		if o.Y-player.Y > 3*reach || o.Y < player.Y-reach {
			continue
		}
		if math.Abs(o.X-player.X) < reach {
			if o.X >= player.X {
				target = o.X - 2*reach
			} else {
				target = o.X + 2*reach
			}
			break
		}
	}

	switch dx := target - player.X; {
	case dx < -p.cfg.Player.Speed/2:
		frame.Set(core.ActionLeft)
	case dx > p.cfg.Player.Speed/2:
		frame.Set(core.ActionRight)
	}
}
