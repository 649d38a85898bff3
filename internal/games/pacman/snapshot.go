package pacman

// GhostSnapshot captures one ghost's state for determinism testing.
type GhostSnapshot struct {
	Role        Role
	Mode        Mode
	X           float64
	Y           float64
	Dir         Direction
	FrightTimer float64
}

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick       uint64
	State      SessionState
	Score      int
	Lives      int
	Remaining  int
	Phase      Mode
	PhaseTimer float64
	PlayerX    float64
	PlayerY    float64
	PlayerDir  Direction
	Invincible float64
	Ghosts     [4]GhostSnapshot
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:       g.tick,
		State:      g.state,
		Score:      g.score,
		Lives:      g.lives,
		Phase:      g.phase,
		PhaseTimer: g.phaseTimer,
	}
	if g.loadErr != nil {
		return s
	}

	s.Remaining = g.col.Remaining()
	s.PlayerX = g.player.Pos.X
	s.PlayerY = g.player.Pos.Y
	s.PlayerDir = g.player.Dir
	s.Invincible = g.player.Invincible

	for i, gh := range g.ghosts {
		if i >= len(s.Ghosts) {
			break
		}
		s.Ghosts[i] = GhostSnapshot{
			Role:        gh.Role,
			Mode:        gh.Mode,
			X:           gh.Pos.X,
			Y:           gh.Pos.Y,
			Dir:         gh.Dir,
			FrightTimer: gh.FrightTimer,
		}
	}
	return s
}
