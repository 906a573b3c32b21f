package core

// RuntimeConfig contains configuration passed to hosts at initialization.
// Hosts use this to size the frame buffer and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters (or pixels for the window host)
	ScreenH  int   // Screen height in characters (or pixels for the window host)
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// GameState is the externally visible summary of a running game.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Started  bool // Whether Reset has been called at least once
	Ticks    int  // Simulated ticks since the last reset
}

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventSpawned EventKind = iota
	EventScored
	EventGameOver
	EventRestarted
)

// String returns a lowercase name suitable for log keys.
func (k EventKind) String() string {
	switch k {
	case EventSpawned:
		return "spawned"
	case EventScored:
		return "scored"
	case EventGameOver:
		return "game_over"
	case EventRestarted:
		return "restarted"
	default:
		return "unknown"
	}
}

// Event is emitted by the simulation so hosts can log or persist outcomes
// without the simulation depending on them.
type Event struct {
	Kind  EventKind
	Score int // Score after the event
}

// StepResult is returned by a simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether an event of the given kind occurred this tick.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
