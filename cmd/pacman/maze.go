package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/levels"
)

var mazeCmd = &cobra.Command{
	Use:   "maze <file|dir>",
	Short: "Validate and preview maze files",
	Long: `Check that a maze YAML file is playable and print its layout.
Given a directory, validate every maze file found under it.

A playable maze has exactly one player spawn, at least one reachable
ghost spawn, and every dot and power pellet reachable from the player.

Examples:
  pacman maze ./mymaze.yaml
  pacman maze ./mazes/`,
	Args: cobra.ExactArgs(1),
	Run:  runMaze,
}

func runMaze(cmd *cobra.Command, args []string) {
	path := args[0]

	if info, err := os.Stat(path); err == nil && info.IsDir() {
		runMazeDir(path)
		return
	}

	level, err := loadMazeFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid maze: %v\n", err)
		os.Exit(1)
	}

	m, err := pacman.NewMaze(level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid maze: %v\n", err)
		os.Exit(1)
	}

	dots, pellets := 0, 0
	for _, row := range level.Rows {
		for _, cell := range row {
			switch cell {
			case levels.CellDot:
				dots++
			case levels.CellPellet:
				pellets++
			}
		}
	}

	fmt.Printf("Maze %q (%s): OK\n", level.ID, level.Name)
	fmt.Printf("  Size:          %dx%d\n", m.Width(), m.Height())
	fmt.Printf("  Dots:          %d\n", dots)
	fmt.Printf("  Power pellets: %d\n", pellets)
	fmt.Printf("  Ghost spawns:  %d\n", len(m.GhostSpawns()))
	fmt.Println()

	for _, row := range level.Rows {
		for _, cell := range row {
			fmt.Print(string(runeForCell(cell)))
		}
		fmt.Println()
	}
}

// runMazeDir validates every maze file under a directory and prints a
// one-line verdict per maze.
func runMazeDir(dir string) {
	all, err := levels.NewLoader(dir).LoadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error scanning %s: %v\n", dir, err)
		os.Exit(1)
	}
	if len(all) == 0 {
		fmt.Printf("No maze files found under %s\n", dir)
		return
	}

	failed := 0
	for _, level := range all {
		m, err := pacman.NewMaze(level)
		if err != nil {
			fmt.Printf("  %-16s INVALID: %v\n", level.ID, err)
			failed++
			continue
		}
		fmt.Printf("  %-16s OK (%dx%d, %d ghost spawns)\n",
			level.ID, m.Width(), m.Height(), len(m.GhostSpawns()))
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func runeForCell(c levels.Cell) rune {
	switch c {
	case levels.CellWall:
		return '#'
	case levels.CellDot:
		return '.'
	case levels.CellPellet:
		return 'o'
	case levels.CellGhostSpawn:
		return 'G'
	case levels.CellPlayerSpawn:
		return 'P'
	default:
		return ' '
	}
}
