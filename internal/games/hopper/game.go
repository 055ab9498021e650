// Package hopper implements Cubic Hopper, a side-scrolling platformer where
// a cube runs at constant speed, jumps over spikes and is bent by portals.
// The simulation is pure: the host feeds input frames and consumes the
// step results and the rendered screen.
package hopper

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/cubic-hopper/internal/config"
	"github.com/vovakirdan/cubic-hopper/internal/core"
)

// Game adapts a Session to the host loop: Reset, Step, Render, State.
type Game struct {
	cfg       config.HopperConfig
	runtime   core.RuntimeConfig
	spawner   Spawner
	session   *Session
	particles *ParticleField
}

// New creates a game using the given configuration.
func New(cfg config.HopperConfig) *Game {
	return &Game{cfg: cfg}
}

// WithSpawner replaces the level generator, e.g. with a fixed layout.
func (g *Game) WithSpawner(s Spawner) *Game {
	g.spawner = s
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "hopper"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Cubic Hopper"
}

// Reset builds a fresh session. A zero seed seeds from the clock.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	g.session = NewSession(g.cfg, rng, g.spawner)
	// Cosmetic randomness is kept apart so it cannot shift the level layout.
	g.particles = NewParticleField(rand.New(rand.NewSource(seed ^ 0x5eed)))
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) StepResult {
	res := g.session.Step(in)

	for _, b := range res.Events.Bursts {
		g.particles.Emit(b)
	}
	g.particles.Update()
	if res.ModeChanged() && res.Mode == ModeRespawning {
		g.particles.Clear()
	}
	return res
}

// Session exposes the underlying simulation.
func (g *Game) Session() *Session {
	return g.session
}

// Snapshot returns the current read-only frame state.
func (g *Game) Snapshot() Snapshot {
	return g.session.Snapshot()
}

// State returns the coarse state the host polls.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.session.Score(),
		HighScore: g.session.HighScore(),
		GameOver:  g.session.Mode() == ModeGameOver,
		Quit:      g.session.Quit(),
	}
}

// Render draws the current frame.
func (g *Game) Render(dst *core.Screen) {
	renderSnapshot(dst, g.session.Snapshot(), g.particles.Particles())
}
