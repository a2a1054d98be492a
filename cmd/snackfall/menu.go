package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/snackfall/snackfall/internal/core"
	"github.com/snackfall/snackfall/internal/game"
	"github.com/snackfall/snackfall/internal/platform/tui"
	"github.com/snackfall/snackfall/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the title menu",
	Long: `Start Snackfall in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
After a round ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q            - Quit

Examples:
  snackfall menu
  snackfall menu --fps 30
  snackfall menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	width, height := terminalSize()
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game.SetConfigPath(flagConfig)
	game.SetDifficultyPreset(flagDifficulty)

	// Menu loop
	for running := true; running; {
		choice, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		switch choice {
		case tui.MenuChoicePlay:
			// Fresh seed for each round
			cfg.Seed = flagSeed
			if cfg.Seed == 0 {
				cfg.Seed = time.Now().UnixNano()
			}
			again, runErr := tui.Run(game.New(), store, cfg)
			if runErr != nil {
				fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
			}
			running = again

		case tui.MenuChoiceScores:
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			running = goBack

		default:
			running = false
		}
	}

	if store != nil {
		store.Close()
	}
}
