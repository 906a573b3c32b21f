package dodger

import (
	"math/rand"

	"github.com/vovakirdan/shape-dodger/internal/config"
)

// Rand is the random source used for spawning. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// NewRand returns a deterministic random source for the given seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Spawner creates obstacles from the configured policy.
type Spawner struct {
	rng Rand
	cfg config.ObstacleConfig
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng Rand, cfg config.ObstacleConfig) *Spawner {
	return &Spawner{rng: rng, cfg: cfg}
}

// Spawn returns a new obstacle just above the visible area.
// Draw order: x, fall speed index, kind index, color index.
func (s *Spawner) Spawn() Shape {
	x := -1 + 2*s.rng.Float64()
	speed := s.cfg.FallSpeeds[s.rng.Intn(len(s.cfg.FallSpeeds))]
	kind := Kind(s.rng.Intn(KindCount))
	color := ColorID(s.rng.Intn(ColorCount))

	return Shape{
		Kind:      kind,
		X:         x,
		Y:         s.cfg.SpawnY,
		Size:      s.cfg.Size,
		Color:     color.RGB(),
		FallSpeed: speed,
	}
}
