package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Lives    int  // Remaining lives (0 for games without lives)
	GameOver bool // Whether the game has ended (defeat or victory)
	Paused   bool // Whether the game is paused
}

// Event is a discrete notification emitted by a game during a tick.
// Consumers like sound backends react to these fire-and-forget; the
// platform itself ignores them.
type Event int

const (
	EventDotEaten Event = iota
	EventPelletEaten
	EventGhostEaten
	EventPlayerCaught
	EventVictory
	EventGameOver
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventDotEaten:
		return "dot_eaten"
	case EventPelletEaten:
		return "pellet_eaten"
	case EventGhostEaten:
		return "ghost_eaten"
	case EventPlayerCaught:
		return "player_caught"
	case EventVictory:
		return "victory"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
