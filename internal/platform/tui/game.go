package tui

import (
	"github.com/vovakirdan/nugget-hunt/internal/config"
	"github.com/vovakirdan/nugget-hunt/internal/core"
)

// Game is what the terminal loop drives. Games hold pure logic; the
// platform handles input mapping, timing and rendering.
type Game interface {
	// ID returns a stable identifier used in logs and screenshot names.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a fresh session. The RuntimeConfig provides the
	// screen size and the RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Resize tells the game the terminal changed size. The map survives.
	Resize(width, height int)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState

	// RunResult summarises the current map for the run history.
	RunResult() core.RunResult
}

// GameFactory creates a game for a difficulty preset.
type GameFactory func(preset config.DifficultyPreset) (Game, error)
