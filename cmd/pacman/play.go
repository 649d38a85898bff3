package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/levels"
	"github.com/vovakirdan/tui-pacman/internal/platform/tui"
	"github.com/vovakirdan/tui-pacman/internal/registry"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMaze       string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start the game in the current terminal.

Controls:
  Arrows/WASD - Move
  P           - Pause
  R           - Restart (after game over)
  Q/Ctrl+C    - Quit

Difficulty presets:
  easy   - 5 lives, slow ghosts, long power pellets
  normal - The classic rules
  hard   - 2 lives, fast ghosts, short power pellets

Examples:
  pacman play
  pacman play --difficulty hard
  pacman play --maze ./mymaze.yaml
  pacman play --config ./my-rules.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom rules config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagMaze, "maze", "", "Path to custom maze YAML (default: built-in classic)")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Validate a custom maze up front so a bad file fails with a clear
	// message instead of an in-game error screen.
	mazeID := "classic"
	if flagMaze != "" {
		level, err := loadMazeFile(flagMaze)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		mazeID = level.ID
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}

	// Configure the game before creation
	pacman.SetConfigPath(flagConfig)
	pacman.SetMazePath(flagMaze)
	pacman.SetDifficultyPreset(flagDifficulty)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	difficulty := flagDifficulty
	if difficulty == "" {
		difficulty = "normal"
	}
	runErr := tui.Run(game, store, cfg, tui.RunInfo{
		Difficulty: difficulty,
		MazeID:     mazeID,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// loadMazeFile loads a maze YAML and checks it is playable.
func loadMazeFile(path string) (levels.Level, error) {
	loader := levels.NewLoader(filepath.Dir(path))
	level, err := loader.LoadFile(path)
	if err != nil {
		return levels.Level{}, err
	}
	if _, err := pacman.NewMaze(level); err != nil {
		return levels.Level{}, err
	}
	if level.ID == "" {
		level.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return level, nil
}
