// pacman is a terminal Pac-Man game playable locally or over SSH.
//
// Usage:
//
//	pacman play              - Play in the current terminal
//	pacman serve             - Start SSH server for remote play
//	pacman scores            - Show high scores
//	pacman maze <file>       - Validate and preview a maze file
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.pacman/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/vovakirdan/tui-pacman/internal/games/pacman"
)

const gameID = "pacman"

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
	Use:   "pacman",
	Short: "Pac-Man in your terminal",
	Long: `A terminal Pac-Man: eat every dot, dodge four ghosts, grab power
pellets to turn the tables.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  scores   - View high scores
  maze     - Validate and preview a maze file

Examples:
  pacman play
  pacman play --difficulty hard
  pacman play --maze ./mymaze.yaml
  pacman serve --ssh :2222
  pacman scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pacman/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(mazeCmd)
}
