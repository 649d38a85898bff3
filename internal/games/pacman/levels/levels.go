// Package levels provides maze layout loading for Pacman.
// This package depends on nothing from the game core; the game constructs
// its maze model from a parsed Level.
package levels

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Cell is a single tile classification in a maze layout.
type Cell int8

const (
	CellEmpty Cell = iota
	CellWall
	CellDot
	CellPellet
	CellGhostSpawn
	CellPlayerSpawn
)

// Level represents a complete maze layout definition.
type Level struct {
	ID       string
	Name     string
	Rows     [][]Cell
	FilePath string
}

// Width returns the number of columns in the layout.
func (l *Level) Width() int {
	if len(l.Rows) == 0 {
		return 0
	}
	return len(l.Rows[0])
}

// Height returns the number of rows in the layout.
func (l *Level) Height() int {
	return len(l.Rows)
}

//go:embed mazes/classic.yaml
var classicYAML []byte

// Default returns the embedded classic maze layout.
// The embedded layout ships with the binary and is validated by tests,
// so a parse failure here is a build defect.
func Default() Level {
	level, err := ParseYAML(classicYAML)
	if err != nil {
		panic(fmt.Sprintf("levels: embedded classic maze invalid: %v", err))
	}
	return level
}

// ParseRows converts layout strings into cells using the maze legend:
// '#' wall, '.' dot, 'o' power pellet, 'G' ghost spawn, 'P' player spawn,
// ' ' empty passage. Rows must be non-empty and equal length.
func ParseRows(rows []string) ([][]Cell, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("levels: layout has no rows")
	}

	width := len([]rune(rows[0]))
	if width == 0 {
		return nil, fmt.Errorf("levels: layout rows are empty")
	}

	cells := make([][]Cell, len(rows))
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != width {
			return nil, fmt.Errorf("levels: row %d has %d cells, want %d", y, len(runes), width)
		}

		cells[y] = make([]Cell, width)
		for x, r := range runes {
			cell, err := cellForRune(r)
			if err != nil {
				return nil, fmt.Errorf("levels: row %d col %d: %w", y, x, err)
			}
			cells[y][x] = cell
		}
	}
	return cells, nil
}

func cellForRune(r rune) (Cell, error) {
	switch r {
	case '#':
		return CellWall, nil
	case '.':
		return CellDot, nil
	case 'o':
		return CellPellet, nil
	case 'G':
		return CellGhostSpawn, nil
	case 'P':
		return CellPlayerSpawn, nil
	case ' ':
		return CellEmpty, nil
	default:
		return CellEmpty, fmt.Errorf("unknown maze rune %q", r)
	}
}

// Loader handles loading maze files from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new maze loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all maze files under Root.
// Invalid files are skipped. Returns levels sorted by ID for
// deterministic ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		level, err := l.LoadFile(path)
		if err != nil {
			return nil
		}

		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("levels: walking directory %s: %w", l.Root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})

	return levels, nil
}

// LoadFile loads a single maze file.
func (l *Loader) LoadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("levels: reading %s: %w", path, err)
	}

	level, err := ParseYAML(data)
	if err != nil {
		return Level{}, fmt.Errorf("levels: parsing %s: %w", path, err)
	}

	level.FilePath = path
	return level, nil
}
