package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/nugget-hunt/internal/config"
	"github.com/vovakirdan/nugget-hunt/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores [difficulty]",
	Short: "Show the best runs",
	Long: `Display the best runs per difficulty. Runs are ranked by pits fallen
into, then by moves, then by time.

Examples:
  nugget-hunt scores
  nugget-hunt scores hard`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of runs to show per difficulty")
}

var (
	scoresTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	scoresHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Padding(0, 1)
	scoresCellStyle   = lipgloss.NewStyle().Padding(0, 1)
	scoresBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	scoresDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

func runScores(_ *cobra.Command, args []string) {
	cfg := loadConfig()

	presets := make([]config.DifficultyPreset, 0, len(cfg.Difficulty.Presets))
	if len(args) == 1 {
		preset, err := cfg.ParseDifficulty(args[0])
		if err != nil {
			exitf("%v", err)
		}
		presets = append(presets, preset)
	} else {
		for _, p := range cfg.Difficulty.Presets {
			presets = append(presets, p.Name)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		exitf("opening run history: %v", err)
	}
	defer store.Close()

	for i, preset := range presets {
		if i > 0 {
			fmt.Println()
		}
		if err := printScores(store, preset); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			store.Close()
			os.Exit(1)
		}
	}
}

func printScores(store *storage.Store, preset config.DifficultyPreset) error {
	runs, err := store.BestRuns(string(preset), flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	fmt.Println(scoresTitleStyle.Render("Best Runs - " + preset.Title()))

	if len(runs) == 0 {
		fmt.Println(scoresDimStyle.Render("No runs recorded yet."))
		fmt.Println(scoresDimStyle.Render(fmt.Sprintf("Play 'nugget-hunt play --difficulty %s' to set the first one!", preset)))
		return nil
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(scoresBorderStyle).
		Headers("Rank", "Pits", "Moves", "Time", "Date").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return scoresHeaderStyle
			}
			return scoresCellStyle
		})

	for i, r := range runs {
		t.Row(
			strconv.Itoa(i+1),
			strconv.Itoa(r.Pitfalls),
			strconv.Itoa(r.Moves),
			formatDuration(r.Duration),
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	fmt.Println(t.Render())

	stats, err := store.Stats(string(preset))
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	fmt.Println(scoresDimStyle.Render(fmt.Sprintf(
		"Runs: %d   Flawless: %d   Fewest moves: %d   Last played: %s",
		stats.Runs, stats.Flawless, stats.FewestMoves, stats.LastPlayed.Format("2006-01-02 15:04"),
	)))
	return nil
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
