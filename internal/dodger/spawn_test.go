package dodger

import (
	"testing"

	"github.com/vovakirdan/shape-dodger/internal/config"
)

func TestSpawnScripted(t *testing.T) {
	tests := []struct {
		name      string
		u         float64
		ints      []int
		wantX     float64
		wantSpeed float64
		wantKind  Kind
		wantColor ColorID
	}{
		{"left edge", 0, []int{0, 0, 0}, -1, 0.008, KindRectangle, Red},
		{"center", 0.5, []int{4, 3, 5}, 0, 0.016, KindSquare, Cyan},
		{"right of center", 0.75, []int{2, 1, 3}, 0.5, 0.012, KindCircle, Yellow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := &scriptedRand{floats: []float64{tt.u}, ints: tt.ints}
			s := NewSpawner(rng, config.DefaultDodgerConfig().Obstacles)

			o := s.Spawn()

			if o.X != tt.wantX {
				t.Errorf("X = %g, expected %g", o.X, tt.wantX)
			}
			if o.Y != 1.2 {
				t.Errorf("Y = %g, expected 1.2", o.Y)
			}
			if o.Size != 0.15 {
				t.Errorf("Size = %g, expected 0.15", o.Size)
			}
			if o.FallSpeed != tt.wantSpeed {
				t.Errorf("FallSpeed = %g, expected %g", o.FallSpeed, tt.wantSpeed)
			}
			if o.Kind != tt.wantKind {
				t.Errorf("Kind = %v, expected %v", o.Kind, tt.wantKind)
			}
			if o.Color != tt.wantColor.RGB() {
				t.Errorf("Color = %+v, expected %v", o.Color, tt.wantColor)
			}
		})
	}
}

func TestSpawnRanges(t *testing.T) {
	cfg := config.DefaultDodgerConfig().Obstacles
	s := NewSpawner(NewRand(3), cfg)

	speeds := map[float64]bool{}
	for _, v := range cfg.FallSpeeds {
		speeds[v] = true
	}

	seenKinds := map[Kind]bool{}
	for i := 0; i < 2000; i++ {
		o := s.Spawn()
		if o.X < -1 || o.X >= 1 {
			t.Fatalf("spawn %d: x = %g outside [-1, 1)", i, o.X)
		}
		if !speeds[o.FallSpeed] {
			t.Fatalf("spawn %d: fall speed %g not in configured set", i, o.FallSpeed)
		}
		if _, ok := Lookup(o.Color); !ok {
			t.Fatalf("spawn %d: color %+v not in palette", i, o.Color)
		}
		seenKinds[o.Kind] = true
	}

	if len(seenKinds) != KindCount {
		t.Errorf("saw %d kinds in 2000 spawns, expected all %d", len(seenKinds), KindCount)
	}
}

func TestSpawnDeterminism(t *testing.T) {
	cfg := config.DefaultDodgerConfig().Obstacles
	a := NewSpawner(NewRand(77), cfg)
	b := NewSpawner(NewRand(77), cfg)

	for i := 0; i < 100; i++ {
		if sa, sb := a.Spawn(), b.Spawn(); sa != sb {
			t.Fatalf("spawn %d differs: %+v vs %+v", i, sa, sb)
		}
	}
}
