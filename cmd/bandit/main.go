// bandit is a terminal rendition of an arcade car-chase game for one or two
// alternating players.
//
// Usage:
//
//	bandit list              - List available game modes
//	bandit play [mode]       - Play a mode (default: bandit)
//	bandit menu              - Pick players and difficulty interactively
//	bandit serve             - Start SSH server for remote play
//	bandit scores [mode]     - Show the high-score table
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.bandit/scores.db)
//	--config <path>       - Use a custom game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log <path>          - Write debug logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bandit/internal/config"
	"github.com/vovakirdan/tui-bandit/internal/games/bandit"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogPath    string
	flagLogLevel   string
)

// logger is set up by the root command before any subcommand runs.
var logger = log.New(io.Discard)

// logFile is the open --log target, closed when the command returns.
var logFile *os.File

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bandit",
	Short: "Bandit Run - outrun the law in your terminal",
	Long: `Bandit Run is a terminal car-chase game. Steer across the lanes,
jump the rivers and dodge the patrol cars for as long as your lives last.

Available commands:
  list     - Show the game modes
  play     - Play a mode directly
  menu     - Interactive players and difficulty menu
  serve    - Start SSH server for remote play
  scores   - View the high-score table

Examples:
  bandit play
  bandit play bandit_2p --difficulty easy
  bandit menu
  bandit serve --ssh :2222
  bandit scores`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.bandit/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file (the terminal belongs to the game)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// setup opens the log file and checks the game configuration so a bad
// --config or --difficulty fails before the screen is taken over.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		logger = log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Prefix:          "bandit",
			Level:           level,
		})
	}

	if _, err := config.LoadBandit(flagConfig); err != nil {
		return err
	}
	bandit.SetConfigPath(flagConfig)
	if err := bandit.SetDifficultyPreset(flagDifficulty); err != nil {
		return err
	}

	logger.Debug("configured", "config", flagConfig, "difficulty", flagDifficulty, "fps", flagFPS, "seed", flagSeed)
	return nil
}
