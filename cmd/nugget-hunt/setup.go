package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/nugget-hunt/internal/config"
	"github.com/vovakirdan/nugget-hunt/internal/core"
	"github.com/vovakirdan/nugget-hunt/internal/games/nuggets"
	"github.com/vovakirdan/nugget-hunt/internal/platform/tui"
	"github.com/vovakirdan/nugget-hunt/internal/storage"
)

// exitf prints an error and exits with status 1.
func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// loadConfig loads and validates the game configuration. Invalid
// configuration is fatal before any UI starts.
func loadConfig() config.NuggetsConfig {
	cfg, err := config.LoadNuggets(flagConfig)
	if err != nil {
		exitf("%v", err)
	}
	return cfg
}

// runtimeConfig sizes the simulation to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the run history. The game still works without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run history", "path", flagDBPath, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open run history: %v\n", err)
		return nil
	}
	return store
}

// gameFactory builds games that share one configuration and logger.
func gameFactory(cfg config.NuggetsConfig, logger *log.Logger) tui.GameFactory {
	return func(preset config.DifficultyPreset) (tui.Game, error) {
		g, err := nuggets.New(cfg, preset, nuggets.WithLogger(logger))
		if err != nil {
			return nil, err
		}
		return g, nil
	}
}
