package pacman

// OutcomeKind classifies a collision resolver result.
type OutcomeKind int

const (
	// OutcomeDot: the player consumed a dot.
	OutcomeDot OutcomeKind = iota
	// OutcomePellet: the player consumed a power pellet; the session
	// reacts by making every ghost vulnerable.
	OutcomePellet
	// OutcomeGhostEaten: the player caught a vulnerable ghost.
	OutcomeGhostEaten
	// OutcomePlayerCaught: a hunting ghost caught the player.
	OutcomePlayerCaught
)

// Outcome is a single event produced by the collision resolver.
// Outcomes are returned as an ordered list and consumed synchronously by
// the game session in the same tick; the resolver itself never mutates
// score, lives, or session state.
type Outcome struct {
	Kind   OutcomeKind
	Points int // score delta, zero for OutcomePlayerCaught
	Ghost  int // index of the ghost involved, -1 when not ghost-related
}
