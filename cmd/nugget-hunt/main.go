// nugget-hunt is a terminal treasure hunt: walk a hidden grid, find the
// five nugget pieces and stay out of the pits.
//
// Usage:
//
//	nugget-hunt play               - Play at the default difficulty
//	nugget-hunt menu               - Pick a difficulty interactively
//	nugget-hunt serve              - Start SSH server for remote play
//	nugget-hunt scores [level]     - Show the best runs
//	nugget-hunt list               - List difficulty presets
//	nugget-hunt config             - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible maps
//	--db <path>         - Set database path (default: ~/.nugget-hunt/runs.db)
//	--config <path>     - Load a custom nuggets.yaml
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Append logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "nugget-hunt",
	Short: "Nugget Hunt - find the golden nugget without falling into a pit",
	Long: `Nugget Hunt is a terminal exploration game. The map is hidden under
rock; every step uncovers a tile. Five nugget pieces are buried somewhere,
and so are the pits. Fall in and you climb back out at the start.

Available commands:
  play     - Start a game directly
  menu     - Interactive difficulty menu with run history
  serve    - Start SSH server for remote play
  scores   - Print the best runs
  list     - Show the difficulty presets
  config   - Print the effective configuration

Examples:
  nugget-hunt play --difficulty hard
  nugget-hunt menu
  nugget-hunt serve --ssh :2222
  nugget-hunt scores medium`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.nugget-hunt/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom nuggets.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}
