package main

import (
	"os"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, after merging the
built-in defaults with ~/.nugget-hunt/configs/nuggets.yaml or --config.

Redirect the output to start a custom config:
  nugget-hunt config > ~/.nugget-hunt/configs/nuggets.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	data, err := cfg.Marshal()
	if err != nil {
		exitf("encoding config: %v", err)
	}
	os.Stdout.Write(data)
}
