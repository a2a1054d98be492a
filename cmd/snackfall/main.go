// snackfall is a terminal arcade game: catch the falling food, dodge the
// bad pieces, climb the leaderboard.
//
// Usage:
//
//	snackfall            - Start with the title menu
//	snackfall play       - Jump straight into a round
//	snackfall serve      - Start SSH server for remote play
//	snackfall scores     - Show the leaderboard
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.snackfall/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snackfall",
	Short: "Snackfall - catch falling food in your terminal",
	Long: `Snackfall is a terminal arcade game. Move left and right to catch
the good food for points and dodge the bad pieces that cost lives.

Available commands:
  play     - Jump straight into a round
  menu     - Title screen with menu (default)
  serve    - Start SSH server for remote play
  scores   - View the leaderboard

Examples:
  snackfall
  snackfall play --difficulty hard
  snackfall serve --ssh :2222
  snackfall scores`,
	Run: runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snackfall/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
