package pacman

// Player is the player-controlled actor. Lives and score are owned by
// the game session, not the player; the player only carries motion state
// and its respawn-protection timer.
type Player struct {
	Actor
	Facing Direction // last travelled direction, for targeting and rendering
	Spawn  Tile

	// Invincible is the remaining respawn-protection window in seconds.
	// While positive, ghosts cannot catch the player.
	Invincible float64
}

// newPlayer creates a player at the maze's spawn tile.
func newPlayer(m *Maze, speed float64) *Player {
	p := &Player{Spawn: m.PlayerSpawn()}
	p.Speed = speed
	p.PlaceAt(m, p.Spawn)
	p.Facing = DirRight
	return p
}

// respawn resets the player to its spawn tile and starts the
// invincibility window.
func (p *Player) respawn(m *Maze, invincibility float64) {
	p.PlaceAt(m, p.Spawn)
	p.Facing = DirRight
	p.Invincible = invincibility
}
