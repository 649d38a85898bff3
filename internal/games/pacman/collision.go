package pacman

import "math"

// resolveTick checks player-vs-collectible and player-vs-ghost overlaps
// for one frame, after all motion has been applied. It consumes the
// collectible under the player (the registry is the only writer of its
// own flags) and reports everything else as ordered outcomes for the
// session to apply.
//
// Ghost contact uses straight-line distance in tile units against
// contactRange. Vulnerable ghosts are caught even while the player is
// invincible; hunting ghosts only catch a non-invincible player; Eaten
// ghosts pass through. At most one OutcomePlayerCaught is emitted per
// tick since a single life is lost regardless of how many ghosts arrive.
func resolveTick(col *Collectibles, player *Player, ghosts []*Ghost, dotPoints, pelletPoints, ghostPoints int, contactRange float64) []Outcome {
	var outcomes []Outcome

	switch col.Consume(player.Tile()) {
	case PickupDot:
		outcomes = append(outcomes, Outcome{Kind: OutcomeDot, Points: dotPoints, Ghost: -1})
	case PickupPellet:
		outcomes = append(outcomes, Outcome{Kind: OutcomePellet, Points: pelletPoints, Ghost: -1})
	}

	caught := false
	for i, gh := range ghosts {
		if !contact(player.Pos, gh.Pos, contactRange) {
			continue
		}
		switch gh.Mode {
		case ModeVulnerable:
			outcomes = append(outcomes, Outcome{Kind: OutcomeGhostEaten, Points: ghostPoints, Ghost: i})
		case ModeScatter, ModeChase:
			if player.Invincible <= 0 && !caught {
				caught = true
				outcomes = append(outcomes, Outcome{Kind: OutcomePlayerCaught, Ghost: i})
			}
		case ModeEaten:
			// No interaction while returning to spawn.
		}
	}

	return outcomes
}

// contact reports whether two positions are within range tiles of each other.
func contact(a, b Position, rng float64) bool {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx+dy*dy) < rng
}
