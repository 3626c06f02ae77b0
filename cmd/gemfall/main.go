// gemfall is a terminal match-3 puzzle game with five modes.
//
// Usage:
//
//	gemfall list              - List available modes
//	gemfall play <mode>       - Play a mode directly
//	gemfall menu              - Start menu to pick modes interactively
//	gemfall serve             - Start SSH server for remote play
//	gemfall scores <mode>     - Show high scores for a mode
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible boards
//	--db <path>     - Set database path (default: ~/.gemfall/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import game modes to register them
	_ "github.com/vovakirdan/gemfall/internal/games/match3"
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
	Use:   "gemfall",
	Short: "Gemfall - Match-3 puzzles in your terminal",
	Long: `Gemfall is a terminal match-3 game. Swap adjacent gems (or rotate
blocks in Twist) to line up three or more of a color, chain cascades,
and forge special gems from longer runs.

Available commands:
  list     - Show all available modes
  play     - Play a specific mode directly
  menu     - Interactive mode picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  gemfall list
  gemfall play gems
  gemfall menu
  gemfall serve --ssh :2222
  gemfall scores gems_blitz`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.gemfall/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
