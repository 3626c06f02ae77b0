package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gemfall/internal/config"
	"github.com/vovakirdan/gemfall/internal/core"
	"github.com/vovakirdan/gemfall/internal/games/match3"
	"github.com/vovakirdan/gemfall/internal/platform/tui"
	"github.com/vovakirdan/gemfall/internal/registry"
	"github.com/vovakirdan/gemfall/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMoves      int
	flagTime       float64
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a mode",
	Long: `Start playing the specified mode.

Controls:
  Arrows/WASD - Move cursor
  Space       - Select/Swap (Rotate in Twist)
  H           - Show a hint
  X           - Shuffle the board
  P           - Pause
  R           - Restart (after game over)
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Timed modes get 50% more time
  normal - Default budgets
  hard   - Timed modes get 25% less time

Examples:
  gemfall play gems
  gemfall play gems_blitz --difficulty easy
  gemfall play gems_surge --time 90
  gemfall play gems --moves 30
  gemfall play gems --config ./my-gems.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().IntVar(&flagMoves, "moves", 0, "Move limit override (0 = use config)")
	playCmd.Flags().Float64Var(&flagTime, "time", 0, "Time limit override in seconds (0 = use config)")
}

// applyModeSettings loads the config, applies the difficulty preset and any
// flag overrides, and arms the mode budgets for the next game.
func applyModeSettings(gameID string) error {
	cfg, err := config.LoadGems(flagConfig)
	if err != nil {
		return err
	}
	if flagDifficulty != "" {
		applyDifficultyFlag(&cfg, flagDifficulty)
	}

	budget := cfg.BudgetFor(gameID)
	if flagMoves > 0 {
		budget.MoveLimit = flagMoves
	}
	if flagTime > 0 {
		budget.TimeLimit = flagTime
	}

	match3.SetMoveLimit(budget.MoveLimit)
	match3.SetTimeLimit(budget.TimeLimit)
	match3.SetUITuning(cfg.UI.HintSeconds, cfg.UI.CascadeBeatMs, cfg.UI.ShowChainDepth)
	return nil
}

// applyDifficultyFlag maps the flag string to a preset and applies it.
func applyDifficultyFlag(cfg *config.GemsConfig, difficulty string) {
	switch difficulty {
	case "easy":
		config.ApplyPreset(cfg, config.DifficultyEasy)
	case "hard":
		config.ApplyPreset(cfg, config.DifficultyHard)
	default:
		config.ApplyPreset(cfg, config.DifficultyNormal)
	}
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if mode exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'gemfall list' to see available modes.")
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Arm budgets before the game is created
	if err := applyModeSettings(gameID); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
