package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List difficulty presets",
	Long:  `Shows the configured difficulty presets and how many pits each one digs.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	fmt.Printf("Board: %dx%d, %d pieces\n", cfg.Grid.Cols, cfg.Grid.Rows, cfg.Items.Count)
	fmt.Println()

	maxNameLen := len("Difficulty")
	for _, p := range cfg.Difficulty.Presets {
		if len(p.Name) > maxNameLen {
			maxNameLen = len(p.Name)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxNameLen, "Difficulty", "Pits")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----------", "----")

	for _, p := range cfg.Difficulty.Presets {
		marker := ""
		if p.Name == cfg.Difficulty.Default {
			marker = "  (default)"
		}
		fmt.Printf("  %-*s  %4d%s\n", maxNameLen, p.Name, p.Hazards, marker)
	}

	fmt.Println()
	fmt.Println("Run 'nugget-hunt play --difficulty <name>' to play.")
}
