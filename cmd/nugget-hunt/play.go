package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/nugget-hunt/internal/platform/tui"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game",
	Long: `Start Nugget Hunt directly at the given difficulty.

Controls:
  Arrows/WASD/HJKL  - Move
  Enter/Space       - New map after a win
  Esc/B             - Back to the menu
  Q/Ctrl+C          - Quit
  Ctrl+S            - Save a screenshot

Examples:
  nugget-hunt play
  nugget-hunt play --difficulty hard
  nugget-hunt play --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVarP(&flagDifficulty, "difficulty", "d", "", "Difficulty preset (default from config)")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	preset, err := cfg.ParseDifficulty(flagDifficulty)
	if err != nil {
		exitf("%v", err)
	}

	logger, closeLog, err := newLogger(io.Discard, "nugget-hunt")
	if err != nil {
		exitf("%v", err)
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	factory := gameFactory(cfg, logger)
	game, err := factory(preset)
	if err != nil {
		exitf("%v", err)
	}

	rc := runtimeConfig()
	backToMenu, err := tui.Run(game, store, logger, rc)
	if err != nil {
		exitf("running game: %v", err)
	}

	if backToMenu {
		if err := tui.RunSession(factory, cfg, store, logger, rc); err != nil {
			exitf("running menu: %v", err)
		}
	}
}
