// Package pacman implements a maze-chase arcade game: collect every dot
// while four ghosts alternate between scattering to their corners and
// hunting the player. Power pellets briefly turn the tables.
//
// The package is pure simulation: fixed-tick, deterministic, no I/O.
// Rendering and input mapping live in the platform layer.
package pacman

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman/levels"
)

// Tile is an integer maze grid coordinate.
type Tile struct {
	Col, Row int
}

// Position is a continuous location in tile units. The center of tile
// (c, r) is exactly (float64(c), float64(r)).
type Position struct {
	X, Y float64
}

// Direction is a discrete movement direction.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirLeft
	DirDown
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirNone:
		return "none"
	default:
		return "unknown"
	}
}

// Delta returns the unit tile offset for the direction.
func (d Direction) Delta() (dc, dr int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}

// Opposite returns the reverse of the direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	}
	return DirNone
}

// directionOrder is the fixed evaluation order for neighbor candidates.
// It doubles as the tie-break priority: the first direction with the best
// distance wins.
var directionOrder = [4]Direction{DirUp, DirLeft, DirDown, DirRight}

// Neighbor pairs a walkable adjacent tile with the direction leading to it.
type Neighbor struct {
	Dir  Direction
	Tile Tile
}

// Maze is the static tile grid. It owns the only authoritative walkability
// data and is immutable after construction; all queries are side-effect free.
type Maze struct {
	width, height int
	walls         [][]bool
	cells         [][]levels.Cell

	playerSpawn Tile
	ghostSpawns []Tile
}

// NewMaze builds a maze model from a parsed layout and validates it:
// a player spawn must exist, at least one collectible must be present,
// and every collectible plus at least one ghost spawn must be reachable
// from the player spawn. Violations fail level-load before play starts.
func NewMaze(level levels.Level) (*Maze, error) {
	h := level.Height()
	w := level.Width()
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("pacman: maze %q is empty", level.ID)
	}

	m := &Maze{
		width:       w,
		height:      h,
		walls:       make([][]bool, h),
		cells:       make([][]levels.Cell, h),
		playerSpawn: Tile{Col: -1, Row: -1},
	}

	collectibles := 0
	var ghostSpawns []Tile
	for r := 0; r < h; r++ {
		m.walls[r] = make([]bool, w)
		m.cells[r] = make([]levels.Cell, w)
		copy(m.cells[r], level.Rows[r])
		for c := 0; c < w; c++ {
			switch level.Rows[r][c] {
			case levels.CellWall:
				m.walls[r][c] = true
			case levels.CellDot, levels.CellPellet:
				collectibles++
			case levels.CellPlayerSpawn:
				if m.playerSpawn.Col >= 0 {
					return nil, fmt.Errorf("pacman: maze %q has multiple player spawns", level.ID)
				}
				m.playerSpawn = Tile{Col: c, Row: r}
			case levels.CellGhostSpawn:
				ghostSpawns = append(ghostSpawns, Tile{Col: c, Row: r})
			}
		}
	}

	if m.playerSpawn.Col < 0 {
		return nil, fmt.Errorf("pacman: maze %q has no player spawn", level.ID)
	}
	if collectibles == 0 {
		return nil, fmt.Errorf("pacman: maze %q has no collectibles", level.ID)
	}

	reachable := m.reachableFrom(m.playerSpawn)
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			cell := m.cells[r][c]
			if (cell == levels.CellDot || cell == levels.CellPellet) && !reachable[Tile{Col: c, Row: r}] {
				return nil, fmt.Errorf("pacman: maze %q: collectible at (%d,%d) unreachable from player spawn", level.ID, c, r)
			}
		}
	}

	// The classic layout includes decorative ghost-house pockets that are
	// sealed off; only spawns the player can actually meet are usable.
	for _, t := range ghostSpawns {
		if reachable[t] {
			m.ghostSpawns = append(m.ghostSpawns, t)
		}
	}
	if len(m.ghostSpawns) == 0 {
		return nil, fmt.Errorf("pacman: maze %q has no reachable ghost spawns", level.ID)
	}

	return m, nil
}

// reachableFrom flood-fills walkable tiles starting at t, following the
// same adjacency (including tunnel wrap) actors use.
func (m *Maze) reachableFrom(t Tile) map[Tile]bool {
	seen := map[Tile]bool{t: true}
	queue := []Tile{t}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range m.Neighbors(cur) {
			if !seen[n.Tile] {
				seen[n.Tile] = true
				queue = append(queue, n.Tile)
			}
		}
	}
	return seen
}

// Width returns the number of columns.
func (m *Maze) Width() int { return m.width }

// Height returns the number of rows.
func (m *Maze) Height() int { return m.height }

// PlayerSpawn returns the player's spawn tile.
func (m *Maze) PlayerSpawn() Tile { return m.playerSpawn }

// GhostSpawns returns the reachable ghost spawn tiles in row-major order.
func (m *Maze) GhostSpawns() []Tile { return m.ghostSpawns }

// CellAt returns the layout classification of a tile.
// Out-of-bounds tiles report as walls.
func (m *Maze) CellAt(t Tile) levels.Cell {
	if !m.inBounds(t) {
		return levels.CellWall
	}
	return m.cells[t.Row][t.Col]
}

// Walkable reports whether an actor may occupy the tile.
// Tiles outside the grid are always non-walkable, so boundary checks
// never index out of range.
func (m *Maze) Walkable(t Tile) bool {
	if !m.inBounds(t) {
		return false
	}
	return !m.walls[t.Row][t.Col]
}

func (m *Maze) inBounds(t Tile) bool {
	return t.Col >= 0 && t.Col < m.width && t.Row >= 0 && t.Row < m.height
}

// TileCenter returns the continuous position of the tile's center.
func (m *Maze) TileCenter(t Tile) Position {
	return Position{X: float64(t.Col), Y: float64(t.Row)}
}

// TileAt returns the nearest tile to a continuous position.
func (m *Maze) TileAt(p Position) Tile {
	return Tile{
		Col: int(math.Round(p.X)),
		Row: int(math.Round(p.Y)),
	}
}

// Wrap maps a tile that left the grid horizontally onto the opposite
// edge. The second return is false for tiles outside the grid
// vertically; vertical edges are solid.
func (m *Maze) Wrap(t Tile) (Tile, bool) {
	if t.Row < 0 || t.Row >= m.height {
		return Tile{}, false
	}
	if t.Col < 0 {
		t.Col = m.width - 1
	} else if t.Col >= m.width {
		t.Col = 0
	}
	return t, true
}

// Step returns the walkable tile one step from t in direction d,
// applying horizontal tunnel wrap. The second return is false when the
// move is blocked by a wall or leaves the grid vertically.
func (m *Maze) Step(t Tile, d Direction) (Tile, bool) {
	dc, dr := d.Delta()
	next, ok := m.Wrap(Tile{Col: t.Col + dc, Row: t.Row + dr})
	if !ok || !m.Walkable(next) {
		return Tile{}, false
	}
	return next, true
}

// Neighbors returns the walkable adjacent tiles of t with the direction
// leading to each, in the fixed evaluation order.
func (m *Maze) Neighbors(t Tile) []Neighbor {
	var result []Neighbor
	for _, d := range directionOrder {
		if next, ok := m.Step(t, d); ok {
			result = append(result, Neighbor{Dir: d, Tile: next})
		}
	}
	return result
}

// distanceSq returns the squared Euclidean distance between tile centers.
func distanceSq(a, b Tile) float64 {
	dx := float64(a.Col - b.Col)
	dy := float64(a.Row - b.Row)
	return dx*dx + dy*dy
}
