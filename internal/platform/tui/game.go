package tui

import "github.com/vovakirdan/tui-tetris/internal/core"

// Game is what the terminal loop drives. Games hold pure logic and never
// import Bubble Tea; the platform owns input mapping, timing and output.
type Game interface {
	// ID returns a short identifier, used for screenshot file names.
	ID() string

	// Title returns a human-readable name.
	Title() string

	// Reset starts a new game with the given screen size and seed.
	Reset(cfg core.RuntimeConfig)

	// Resize tells the game about a new screen size without restarting it.
	Resize(w, h int)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}
