package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-dodge/internal/storage"
)

var (
	flagRecent bool
	flagLimit  int
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the run history",
	Long: `Display the best runs, or the latest ones with --recent.

Examples:
  neondodge scores
  neondodge scores --recent --limit 5
  neondodge scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "List the latest runs instead of the best")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to list")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the run history")
}

func runScores(_ *cobra.Command, _ []string) {
	logger := newLogger(os.Stderr)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatal("opening run history: %v", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(gameID); err != nil {
			store.Close()
			fatal("%v", err)
		}
		logger.Info("run history cleared", "db", flagDBPath)
		return
	}

	var runs []storage.RunRecord
	title := "High Scores"
	if flagRecent {
		title = "Recent Runs"
		runs, err = store.RecentRuns(gameID, flagLimit)
	} else {
		runs, err = store.TopRuns(gameID, flagLimit)
	}
	if err != nil {
		store.Close()
		fatal("retrieving runs: %v", err)
	}

	fmt.Printf("%s - Neon Dodge\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'neondodge play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-12s  %-6s  %-4s  %-6s  %s\n", "Rank", "Score", "Player", "Time", "Orbs", "Peak", "Date")
	fmt.Printf("  %-4s  %-8s  %-12s  %-6s  %-4s  %-6s  %s\n", "----", "-----", "------", "----", "----", "----", "----")
	for i, r := range runs {
		player := r.Player
		if player == "" {
			player = "-"
		}
		secs := int(r.Duration().Seconds())
		fmt.Printf("  %-4d  %-8d  %-12s  %-6s  %-4d  x%-5.2f  %s\n",
			i+1, r.Score, player,
			fmt.Sprintf("%d:%02d", secs/60, secs%60),
			r.OrbsCollected, r.PeakMultiplier,
			r.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(gameID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Runs: %d  Average: %.0f\n", stats.HighScore, stats.RunsCount, stats.AvgScore)
	}
}
