package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/nugget-hunt/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Open the difficulty menu",
	Long: `Open an interactive menu to pick a difficulty or browse the best runs.

Controls:
  Up/Down or W/S  - Navigate
  Enter/Space     - Select
  Tab             - Best runs
  Q/Esc           - Quit`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	logger, closeLog, err := newLogger(io.Discard, "nugget-hunt")
	if err != nil {
		exitf("%v", err)
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	if err := tui.RunSession(gameFactory(cfg, logger), cfg, store, logger, runtimeConfig()); err != nil {
		exitf("running menu: %v", err)
	}
}
