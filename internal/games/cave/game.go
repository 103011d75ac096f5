package cave

import (
	"github.com/vovakirdan/grapplecore/internal/config"
	"github.com/vovakirdan/grapplecore/internal/core"
)

// Game adapts the cave lifecycle to the platform's fixed-tick game loop.
type Game struct {
	cfg  config.CaveConfig
	life *Lifecycle

	screenW int
	screenH int
	paused  bool
}

// New creates a cave game from a loaded configuration.
// Call Reset before the first Step.
func New(cfg config.CaveConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "grapplecore"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Grapplecore"
}

// Reset throws away the whole run and starts the first life.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.paused = false
	g.life = NewLifecycle(g.cfg)
}

// Resize records new terminal dimensions without touching the simulation.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if g.life == nil {
		g.Reset(core.DefaultConfig())
	}

	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused && !input.Has(core.ActionQuit) {
		return core.StepResult{State: g.State()}
	}

	events := g.life.Step(intentFor(input))
	return core.StepResult{State: g.State(), Events: events}
}

// intentFor picks the single intent a frame carries. Quit wins, then
// grapples, then steps, then the jump.
func intentFor(input core.InputFrame) Intent {
	switch {
	case input.Has(core.ActionQuit):
		return IntentQuit
	case input.Has(core.ActionGrappleUp):
		return IntentGrappleUp
	case input.Has(core.ActionGrappleLeft):
		return IntentGrappleLeft
	case input.Has(core.ActionGrappleRight):
		return IntentGrappleRight
	case input.Has(core.ActionLeft):
		return IntentStepLeft
	case input.Has(core.ActionRight):
		return IntentStepRight
	case input.Has(core.ActionJump):
		return IntentJump
	default:
		return IntentNone
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.life == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.life.Tally().Escapes,
		GameOver: g.life.Session().GameOver,
		Paused:   g.paused,
		Quit:     g.life.Quit(),
	}
}

// Lifecycle exposes the underlying simulation for tests and tools.
func (g *Game) Lifecycle() *Lifecycle {
	return g.life
}
