package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bandit/internal/registry"
	"github.com/vovakirdan/tui-bandit/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the game modes",
	Long:  `Shows every registered game mode with its number of players.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Game modes:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	stats := playedStats()

	fmt.Printf("  %-*s  %-7s  %-5s  %-6s  %s\n", maxIDLen, "ID", "Players", "Runs", "Best", "Title")
	fmt.Printf("  %-*s  %-7s  %-5s  %-6s  %s\n", maxIDLen, "--", "-------", "----", "----", "-----")

	for _, g := range games {
		runs, best := 0, 0
		if st, ok := stats[g.ID]; ok {
			runs, best = st.GamesCount, st.HighScore
		}
		fmt.Printf("  %-*s  %-7d  %-5d  %-6d  %s\n", maxIDLen, g.ID, g.Seats, runs, best, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'bandit play <id>' to play a mode.")
}

// playedStats returns the recorded runs per mode. A missing or unreadable
// database lists every mode as unplayed.
func playedStats() map[string]*storage.GameStats {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Debug("no scores database", "error", err)
		return nil
	}
	defer store.Close()

	stats, err := store.GetAllGamesStats()
	if err != nil {
		logger.Warn("cannot read game stats", "error", err)
		return nil
	}
	return stats
}
