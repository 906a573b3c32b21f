package sim

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/vovakirdan/shape-dodger/internal/config"
	"github.com/vovakirdan/shape-dodger/internal/dodger"
)

// PilotInfo contains metadata about a registered pilot.
type PilotInfo struct {
	Name        string
	Description string
}

// Factory creates a pilot for a game config. rng is the pilot's own random
// source, separate from the game's spawner.
type Factory func(cfg config.DodgerConfig, rng dodger.Rand) Pilot

type registration struct {
	factory     Factory
	description string
}

var (
	pilots = make(map[string]registration)
	mu     sync.RWMutex
)

func init() {
	Register("chase", "Steer under the lowest matching shape, sidestep mismatches",
		func(cfg config.DodgerConfig, _ dodger.Rand) Pilot { return NewChase(cfg) })
	Register("random", "Hold random directions for random spans",
		func(_ config.DodgerConfig, rng dodger.Rand) Pilot { return NewRandom(rng) })
	Register("idle", "Never move",
		func(config.DodgerConfig, dodger.Rand) Pilot { return Idle{} })
}

// Register adds a pilot factory under name.
// Panics if a pilot with the same name is already registered.
func Register(name, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	name = strings.ToLower(name)
	if _, exists := pilots[name]; exists {
		panic(fmt.Sprintf("sim: pilot %q already registered", name))
	}
	pilots[name] = registration{factory: f, description: description}
}

// Pilots returns every registered pilot, sorted by name.
func Pilots() []PilotInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PilotInfo, 0, len(pilots))
	for name, r := range pilots {
		result = append(result, PilotInfo{Name: name, Description: r.description})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// ParsePilot creates a registered pilot by name. An empty name selects chase.
func ParsePilot(name string, cfg config.DodgerConfig, rng dodger.Rand) (Pilot, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = "chase"
	}

	mu.RLock()
	r, ok := pilots[name]
	mu.RUnlock()
	if !ok {
		names := make([]string, 0, len(pilots))
		for _, p := range Pilots() {
			names = append(names, p.Name)
		}
		return nil, fmt.Errorf("sim: unknown pilot %q (want %s)", name, strings.Join(names, ", "))
	}

	return r.factory(cfg, rng), nil
}
