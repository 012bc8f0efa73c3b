package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bandit/internal/games/bandit"
	"github.com/vovakirdan/tui-bandit/internal/registry"
	"github.com/vovakirdan/tui-bandit/internal/storage"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show the high-score table",
	Long: `Display the high-score table for a game mode (default: bandit).

Examples:
  bandit scores
  bandit scores bandit_2p
  bandit scores --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete every score recorded for the mode")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := bandit.IDSinglePlayer
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'bandit list' to see available modes.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClearScores {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			return
		}
		logger.Info("scores cleared", "game", gameID)
		fmt.Printf("Cleared scores for %s.\n", title)
		return
	}

	lb := storage.NewLeaderboard(store, gameID, storage.DefaultTableSize)
	entries, err := lb.Entries()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'bandit play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-4s  %-10s  %s\n", "Rank", "Name", "Score", "Date")
	fmt.Printf("  %-4s  %-4s  %-10s  %s\n", "----", "----", "-----", "----")

	for i, e := range entries {
		fmt.Printf("  %-4d  %-4s  %-10d  %s\n", i+1, e.Initials, e.Score, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(gameID); err == nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Runs recorded: %d  Average: %.0f\n", stats.GamesCount, stats.AvgScore)
	}
}
