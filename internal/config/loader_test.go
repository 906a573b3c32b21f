package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}

	want := DefaultDodgerConfig()
	if cfg.Player != want.Player {
		t.Errorf("player = %+v, expected %+v", cfg.Player, want.Player)
	}
	if cfg.Scoring != want.Scoring {
		t.Errorf("scoring = %+v, expected %+v", cfg.Scoring, want.Scoring)
	}
	if cfg.Obstacles.SpawnInterval != want.Obstacles.SpawnInterval ||
		cfg.Obstacles.SpawnY != want.Obstacles.SpawnY ||
		cfg.Obstacles.DespawnY != want.Obstacles.DespawnY ||
		cfg.Obstacles.Size != want.Obstacles.Size {
		t.Errorf("obstacles = %+v, expected %+v", cfg.Obstacles, want.Obstacles)
	}
	if len(cfg.Obstacles.FallSpeeds) != len(want.Obstacles.FallSpeeds) {
		t.Fatalf("fall_speeds has %d entries, expected %d", len(cfg.Obstacles.FallSpeeds), len(want.Obstacles.FallSpeeds))
	}
	for i := range want.Obstacles.FallSpeeds {
		if cfg.Obstacles.FallSpeeds[i] != want.Obstacles.FallSpeeds[i] {
			t.Errorf("fall_speeds[%d] = %g, expected %g", i, cfg.Obstacles.FallSpeeds[i], want.Obstacles.FallSpeeds[i])
		}
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("obstacles:\n  spawn_interval: 30\n  fall_speeds: [0.02]\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if cfg.Obstacles.SpawnInterval != 30 {
		t.Errorf("spawn_interval = %d, expected 30", cfg.Obstacles.SpawnInterval)
	}
	if len(cfg.Obstacles.FallSpeeds) != 1 || cfg.Obstacles.FallSpeeds[0] != 0.02 {
		t.Errorf("fall_speeds = %v, expected [0.02]", cfg.Obstacles.FallSpeeds)
	}
	// Untouched keys keep their defaults
	if cfg.Player.Size != 0.2 {
		t.Errorf("player.size = %g, expected default 0.2", cfg.Player.Size)
	}
	if cfg.Scoring.MatchPoints != 10 {
		t.Errorf("scoring.match_points = %d, expected default 10", cfg.Scoring.MatchPoints)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"empty fall speeds", "obstacles:\n  fall_speeds: []\n"},
		{"zero spawn interval", "obstacles:\n  spawn_interval: 0\n"},
		{"negative fall speed", "obstacles:\n  fall_speeds: [0.01, -0.01]\n"},
		{"despawn above spawn", "obstacles:\n  despawn_y: 2.0\n"},
		{"zero player size", "player:\n  size: 0\n"},
		{"zero tolerance", "scoring:\n  color_tolerance: 0\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Parse() error = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestParseMalformedYAML(t *testing.T) {
	if _, err := Parse([]byte("player: [unclosed")); err == nil {
		t.Error("Parse() should fail on malformed YAML")
	}
}

func TestLoadDodgerCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("scoring:\n  match_points: 25\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadDodger(path)
	if err != nil {
		t.Fatalf("LoadDodger() failed: %v", err)
	}
	if cfg.Scoring.MatchPoints != 25 {
		t.Errorf("match_points = %d, expected 25", cfg.Scoring.MatchPoints)
	}
}

func TestLoadDodgerMissingCustomPath(t *testing.T) {
	_, err := LoadDodger(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("LoadDodger() should fail for a missing custom path")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error should wrap os.ErrNotExist, got %v", err)
	}
}

func TestLoadDodgerSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	// Nothing on disk: embedded default
	cfg, err := LoadDodger("")
	if err != nil {
		t.Fatalf("LoadDodger() failed: %v", err)
	}
	if cfg.Obstacles.SpawnInterval != 100 {
		t.Errorf("expected embedded default, got spawn_interval %d", cfg.Obstacles.SpawnInterval)
	}

	// Local ./configs beats the embedded default
	writeFile(t, filepath.Join(work, "configs", FileName), "obstacles:\n  spawn_interval: 50\n")
	cfg, _ = LoadDodger("")
	if cfg.Obstacles.SpawnInterval != 50 {
		t.Errorf("expected local config, got spawn_interval %d", cfg.Obstacles.SpawnInterval)
	}

	// User config beats the local one
	writeFile(t, filepath.Join(home, ".dodger", "configs", FileName), "obstacles:\n  spawn_interval: 20\n")
	cfg, _ = LoadDodger("")
	if cfg.Obstacles.SpawnInterval != 20 {
		t.Errorf("expected user config, got spawn_interval %d", cfg.Obstacles.SpawnInterval)
	}

	// An invalid user config is skipped
	writeFile(t, filepath.Join(home, ".dodger", "configs", FileName), "obstacles:\n  spawn_interval: -1\n")
	cfg, _ = LoadDodger("")
	if cfg.Obstacles.SpawnInterval != 50 {
		t.Errorf("invalid user config should fall through to local, got %d", cfg.Obstacles.SpawnInterval)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}
