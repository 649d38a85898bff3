package pacman

// Role identifies one of the four fixed ghost personalities. The role
// never changes; it selects the chase-mode targeting strategy.
type Role int

const (
	// RoleAggressive targets the player's current tile.
	RoleAggressive Role = iota
	// RoleAmbush targets a few tiles ahead of the player.
	RoleAmbush
	// RolePatrol hunts the player when far away, otherwise circles its corner.
	RolePatrol
	// RoleMixed toggles between hunting and its corner on its own timer.
	RoleMixed
)

// String returns a human-readable name for the role.
func (r Role) String() string {
	switch r {
	case RoleAggressive:
		return "aggressive"
	case RoleAmbush:
		return "ambush"
	case RolePatrol:
		return "patrol"
	case RoleMixed:
		return "mixed"
	default:
		return "unknown"
	}
}

// Mode is a ghost's mutually exclusive behavior state.
type Mode int

const (
	ModeScatter Mode = iota
	ModeChase
	ModeVulnerable
	ModeEaten
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeScatter:
		return "scatter"
	case ModeChase:
		return "chase"
	case ModeVulnerable:
		return "vulnerable"
	case ModeEaten:
		return "eaten"
	default:
		return "unknown"
	}
}

// Ghost is one adversary: an actor plus its behavior state machine.
type Ghost struct {
	Actor
	Role   Role
	Mode   Mode
	Spawn  Tile
	Corner Tile // fixed scatter corner

	// FrightTimer counts down the Vulnerable mode in seconds.
	FrightTimer float64

	// mixTimer drives the RoleMixed hunt/corner toggle, independent of
	// the global scatter/chase schedule.
	mixTimer   float64
	mixHunting bool
}

// setVulnerable puts the ghost into Vulnerable mode for the given
// duration. Entering (or refreshing) reverses the ghost's direction;
// Eaten ghosts are unaffected.
func (g *Ghost) setVulnerable(duration float64) {
	if g.Mode == ModeEaten {
		return
	}
	g.Mode = ModeVulnerable
	g.FrightTimer = duration
	if g.Dir != DirNone {
		g.Dir = g.Dir.Opposite()
	}
}

// resetToSpawn places the ghost back at its spawn tile in Scatter mode.
func (g *Ghost) resetToSpawn(m *Maze) {
	g.PlaceAt(m, g.Spawn)
	g.Mode = ModeScatter
	g.FrightTimer = 0
	g.mixTimer = 0
	g.mixHunting = true
}

// NextDirection picks the direction a ghost should take from tile at:
// among walkable neighbor directions excluding the reverse of cur, the
// one whose tile is closest to target by straight-line distance (or
// farthest when fleeing). Ties break in the fixed order up, left, down,
// right. At a dead end the reverse is the only option and is returned;
// the result is DirNone only if the tile has no walkable neighbor at all.
//
// This is a local greedy heuristic, not a shortest path: it can take the
// long way around a loop, which is the intended adversary behavior.
func NextDirection(m *Maze, at Tile, cur Direction, target Tile, flee bool) Direction {
	reverse := cur.Opposite()

	best := DirNone
	var bestDist float64
	for _, n := range m.Neighbors(at) {
		if cur != DirNone && n.Dir == reverse {
			continue
		}
		d := distanceSq(n.Tile, target)
		if best == DirNone || (flee && d > bestDist) || (!flee && d < bestDist) {
			best = n.Dir
			bestDist = d
		}
	}
	if best != DirNone {
		return best
	}

	// Dead end: the reverse direction is the forced backtrack.
	if cur != DirNone {
		if _, ok := m.Step(at, reverse); ok {
			return reverse
		}
	}
	return DirNone
}
