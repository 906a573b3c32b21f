// Package dodger implements the Shape Dodger simulation: the player slides
// along the bottom of the view while colored shapes fall from the top.
// Touching a shape of the player's color scores and morphs the player;
// touching any other color ends the game.
//
// The package is pure. Drawing and input are injected through the Renderer
// and InputSource interfaces, and one Game must only be driven from one
// goroutine.
package dodger

import (
	"math"

	"github.com/vovakirdan/shape-dodger/internal/config"
	"github.com/vovakirdan/shape-dodger/internal/core"
)

// Renderer draws one filled shape. Rendering failures are the renderer's own
// concern and are never reported back to the simulation.
type Renderer interface {
	Draw(kind Kind, x, y, size float64, color RGB)
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(kind Kind, x, y, size float64, color RGB)

// Draw calls f.
func (f RendererFunc) Draw(kind Kind, x, y, size float64, color RGB) {
	f(kind, x, y, size, color)
}

// InputSource is polled once per tick.
type InputSource interface {
	// Held reports whether a movement action is currently held.
	Held(a core.Action) bool
	// RestartRequested reports and consumes a pending restart signal.
	RestartRequested() bool
}

// State is the complete simulation state.
type State struct {
	Player       Shape
	Obstacles    []Shape
	Score        int
	Over         bool
	Started      bool
	SpawnCounter int
	Ticks        int
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	c := s
	c.Obstacles = append([]Shape(nil), s.Obstacles...)
	return c
}

// Draw sends the player and then every obstacle, in stored order, to r.
// Nothing is drawn before the first Reset.
func (s State) Draw(r Renderer) {
	if !s.Started {
		return
	}
	r.Draw(s.Player.Kind, s.Player.X, s.Player.Y, s.Player.Size, s.Player.Color)
	for _, o := range s.Obstacles {
		r.Draw(o.Kind, o.X, o.Y, o.Size, o.Color)
	}
}

// Game owns one State and advances it once per Tick.
type Game struct {
	cfg      config.DodgerConfig
	spawner  *Spawner
	renderer Renderer
	state    State

	// Setup chosen at the last Reset, reused on restart.
	setupKind  Kind
	setupColor ColorID

	events []core.Event
}

// New creates a game that has not started yet. rng feeds the obstacle spawner
// and r receives draw calls; a nil r discards them.
func New(cfg config.DodgerConfig, rng Rand, r Renderer) *Game {
	if rng == nil {
		rng = NewRand(0)
	}
	return &Game{
		cfg:      cfg,
		spawner:  NewSpawner(rng, cfg.Obstacles),
		renderer: r,
	}
}

// ID returns the identifier used for score storage.
func (g *Game) ID() string {
	return "dodger"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Shape Dodger"
}

// SetRenderer replaces the renderer used by Tick and Render.
func (g *Game) SetRenderer(r Renderer) {
	g.renderer = r
}

// Config returns the configuration the game was created with.
func (g *Game) Config() config.DodgerConfig {
	return g.cfg
}

// Reset starts a fresh game with the given player kind and palette color.
// Out-of-range values default to KindRectangle and Red.
func (g *Game) Reset(kind Kind, color ColorID) {
	if !kind.Valid() {
		kind = KindRectangle
	}
	if !color.Valid() {
		color = Red
	}
	g.setupKind = kind
	g.setupColor = color

	p := g.cfg.Player
	g.state = State{
		Player: Shape{
			Kind:  kind,
			X:     p.StartX,
			Y:     p.StartY,
			Size:  p.Size,
			Color: color.RGB(),
		},
		Obstacles: g.state.Obstacles[:0],
		Started:   true,
	}
}

// Setup returns the kind and color chosen at the last Reset.
func (g *Game) Setup() (Kind, ColorID) {
	return g.setupKind, g.setupColor
}

// Tick advances the simulation by one frame and renders it.
// in may be nil, meaning no keys are held.
func (g *Game) Tick(in InputSource) core.StepResult {
	g.events = nil

	if in != nil && in.RestartRequested() && g.state.Over {
		g.Reset(g.setupKind, g.setupColor)
		g.emit(core.EventRestarted)
	}

	if !g.state.Started || g.state.Over {
		g.Render()
		return g.result()
	}

	g.state.Ticks++
	g.move(in)
	g.spawn()
	g.fall()
	g.collide()
	g.Render()

	return g.result()
}

// move applies left then right, each clamped independently, so right wins
// when both are held against the left wall.
func (g *Game) move(in InputSource) {
	if in == nil {
		return
	}
	p := &g.state.Player
	half := p.Size / 2
	if in.Held(core.ActionLeft) {
		p.X = math.Max(p.X-g.cfg.Player.Speed, -1+half)
	}
	if in.Held(core.ActionRight) {
		p.X = math.Min(p.X+g.cfg.Player.Speed, 1-half)
	}
}

func (g *Game) spawn() {
	g.state.SpawnCounter++
	if g.state.SpawnCounter > g.cfg.Obstacles.SpawnInterval {
		g.state.Obstacles = append(g.state.Obstacles, g.spawner.Spawn())
		g.state.SpawnCounter = 0
		g.emit(core.EventSpawned)
	}
}

// fall moves every obstacle down and drops the ones below the view.
func (g *Game) fall() {
	for i := range g.state.Obstacles {
		g.state.Obstacles[i].Y -= g.state.Obstacles[i].FallSpeed
	}

	kept := g.state.Obstacles[:0]
	for _, o := range g.state.Obstacles {
		if o.Y >= g.cfg.Obstacles.DespawnY {
			kept = append(kept, o)
		}
	}
	g.state.Obstacles = kept
}

// collide scans obstacles in order, writing survivors back in place.
// The first mismatched hit ends the game and stops the scan; hits scored
// earlier in the same tick still count.
func (g *Game) collide() {
	player := g.state.Player.Box()
	tol := g.cfg.Scoring.ColorTolerance

	obstacles := g.state.Obstacles
	kept := obstacles[:0]
	for i, o := range obstacles {
		if !player.Overlaps(o.Box()) {
			kept = append(kept, o)
			continue
		}

		if g.state.Player.Color.Matches(o.Color, tol) {
			g.state.Score += g.cfg.Scoring.MatchPoints
			g.state.Player.Kind = g.state.Player.Kind.Next()
			g.emit(core.EventScored)
			continue
		}

		g.state.Over = true
		g.emit(core.EventGameOver)
		kept = append(kept, obstacles[i:]...)
		break
	}
	g.state.Obstacles = kept
}

// Render draws the current state to the game's renderer.
func (g *Game) Render() {
	if g.renderer == nil {
		return
	}
	g.state.Draw(g.renderer)
}

func (g *Game) emit(kind core.EventKind) {
	g.events = append(g.events, core.Event{Kind: kind, Score: g.state.Score})
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events}
}

// State returns the externally visible summary.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score,
		GameOver: g.state.Over,
		Started:  g.state.Started,
		Ticks:    g.state.Ticks,
	}
}

// Player returns the current player shape.
func (g *Game) Player() Shape {
	return g.state.Player
}

// Snapshot returns a deep copy of the full simulation state.
func (g *Game) Snapshot() State {
	return g.state.Clone()
}
