package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pipeslide/internal/registry"
	"github.com/vovakirdan/pipeslide/internal/storage"
)

var flagRuns int

var scoresCmd = &cobra.Command{
	Use:   "scores <variant>",
	Short: "Show high scores and recent runs",
	Long: `Display the top 10 scores for a variant, followed by its most
recent runs.

Examples:
  pipeslide scores pipeslide
  pipeslide scores pipeslide_mini --runs 20`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagRuns, "runs", 5, "Number of recent runs to show (0 = none)")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := args[0]

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w (run 'pipeslide list' to see variants)", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n\n", game.Title())

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'pipeslide play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(gameID); err == nil && stats.RunsCount > 0 {
		fmt.Println()
		fmt.Printf("Runs: %d  Best: %d  Average: %.0f  Longest flow: %d pipes\n",
			stats.RunsCount, stats.HighScore, stats.AvgScore, stats.BestFilled)
	}

	if flagRuns <= 0 {
		return nil
	}
	runs, err := store.RecentRuns(gameID, flagRuns)
	if err != nil {
		return err
	}
	if len(runs) > 0 {
		fmt.Println()
		fmt.Println("Recent runs:")
		fmt.Printf("  %-6s  %-5s  %-8s  %-20s  %s\n", "Score", "Pipes", "End", "Seed", "Date")
		for _, r := range runs {
			fmt.Printf("  %-6d  %-5d  %-8s  %-20d  %s\n",
				r.Score, r.TilesFilled, r.EndReason, r.Seed, r.CreatedAt.Format("2006-01-02 15:04"))
		}
	}
	return nil
}
