package tui

import "github.com/vovakirdan/grapplecore/internal/core"

// Game is what the platform drives. Games contain pure logic with no
// Bubble Tea dependency; the platform handles input mapping, timing and
// rendering.
type Game interface {
	// ID returns a stable identifier, used in logs and screenshot names.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset throws away all state and starts over.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// resizer is implemented by games that track the terminal size without
// needing a Reset.
type resizer interface {
	Resize(w, h int)
}
