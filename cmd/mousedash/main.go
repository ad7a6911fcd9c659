// mousedash is Mouse Dash!, a terminal arcade game: steer the mouse to
// collect cheese, dodge the bouncing cats, beat the clock.
//
// Usage:
//
//	mousedash play           - Play the game
//	mousedash scores         - Show high scores
//	mousedash serve          - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.mousedash/scores.db)
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
	Use:   "mousedash",
	Short: "Mouse Dash! - collect cheese, dodge cats, beat the clock",
	Long: `Mouse Dash! is a fast terminal arcade game. Steer the mouse with
arrows or WASD, grab cheese for combo points, and stay away from the
bouncing cats until the timer runs out.

Available commands:
  play     - Play the game
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  mousedash play
  mousedash play --seed 42
  mousedash scores
  mousedash serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.mousedash/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
