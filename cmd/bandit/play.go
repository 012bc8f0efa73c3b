package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-bandit/internal/core"
	"github.com/vovakirdan/tui-bandit/internal/games/bandit"
	"github.com/vovakirdan/tui-bandit/internal/platform/tui"
	"github.com/vovakirdan/tui-bandit/internal/registry"
	"github.com/vovakirdan/tui-bandit/internal/storage"
)

var (
	flagStage      int
	flagPickStages bool
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a game mode",
	Long: `Start playing the given mode, "bandit" for one player or
"bandit_2p" for two players taking turns at the keyboard.

Controls:
  Up/W, Down/S     - Change lane
  Left/A           - Speed up
  Right/D          - Slow down
  Space            - Jump
  P                - Pause
  R                - Restart (after game over)
  Esc/B            - Leave (when paused or after game over)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Five lives, stage 1
  normal - Three lives, stage 1
  hard   - Two lives, stage 5
  fixed  - Stage never advances

Examples:
  bandit play
  bandit play bandit_2p
  bandit play --difficulty hard
  bandit play --stage 8
  bandit play --pick
  bandit play --config ./my-bandit.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagStage, "stage", 0, "Start on this stage (0 = configured start)")
	playCmd.Flags().BoolVar(&flagPickStages, "pick", false, "Choose difficulty and stage from a menu first")
}

// terminalConfig builds the runtime config from the terminal size and flags.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the scores database. Games still run without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := bandit.IDSinglePlayer
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'bandit list' to see available modes.")
		os.Exit(1)
	}

	cfg := terminalConfig()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	if flagPickStages {
		selection, selErr := tui.RunBanditModeSelector(cfg)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}
		// User pressed back or quit
		if selection == nil {
			return
		}
		if err := selection.Apply(game); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	} else if flagStage > 0 {
		if err := (tui.BanditSelection{Stage: flagStage}).Apply(game); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	store := openStore()

	runErr := tui.Run(game, store, cfg, tui.GameOptions{Logger: logger})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
