package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/snackfall/snackfall/internal/core"
	"github.com/snackfall/snackfall/internal/game"
	"github.com/snackfall/snackfall/internal/platform/tui"
	"github.com/snackfall/snackfall/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round",
	Long: `Start a round directly, skipping the title menu.

Controls:
  A/D or Left/Right - Move
  P                 - Pause
  R                 - Restart (after game over)
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - 5 lives, gentler spawns
  normal - Standard rules
  hard   - 2 lives, more bad food
  fixed  - No level progression

Examples:
  snackfall play
  snackfall play --difficulty easy
  snackfall play --config ./my-snackfall.yaml
  snackfall play --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// terminalSize returns the current terminal dimensions, with fallbacks.
func terminalSize() (width, height int) {
	width, height = 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

func runPlay(_ *cobra.Command, _ []string) {
	width, height := terminalSize()

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game.SetConfigPath(flagConfig)
	game.SetDifficultyPreset(flagDifficulty)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	_, runErr := tui.Run(game.New(), store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
