package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/snackfall/snackfall/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the top 10 scores.

Examples:
  snackfall scores
  snackfall scores --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	scores, err := store.TopScores(storage.LeaderboardSize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Snackfall - High Scores")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snackfall play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-18s  %-10s  %-6s  %s\n", "Rank", "Name", "Score", "Level", "Date")
	fmt.Printf("  %-4s  %-18s  %-10s  %-6s  %s\n", "----", "----", "-----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-18s  %-10d  %-6d  %s\n", i+1, entry.Name, entry.Score, entry.Level, dateStr)
	}

	fmt.Println()
	if highScore, err := store.HighScore(); err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}
