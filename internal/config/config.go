// Package config provides YAML-based rule configuration and difficulty
// presets for the pacman game.
package config

// PacmanConfig contains every tunable rule of the simulation.
// All durations are simulation seconds, all speeds tiles per second.
type PacmanConfig struct {
	Gameplay GameplayConfig `yaml:"gameplay"`
	Speeds   SpeedConfig    `yaml:"speeds"`
	Timers   TimerConfig    `yaml:"timers"`
	AI       AIConfig       `yaml:"ai"`
}

// GameplayConfig defines lives and scoring.
type GameplayConfig struct {
	Lives        int `yaml:"lives"`
	DotPoints    int `yaml:"dot_points"`
	PelletPoints int `yaml:"pellet_points"`
	GhostPoints  int `yaml:"ghost_points"`
}

// SpeedConfig defines actor movement speeds.
type SpeedConfig struct {
	Player           float64 `yaml:"player"`
	Ghost            float64 `yaml:"ghost"`
	VulnerableFactor float64 `yaml:"vulnerable_factor"` // applied while a ghost is vulnerable
	EatenFactor      float64 `yaml:"eaten_factor"`      // applied while a ghost returns to spawn
}

// TimerConfig defines the fixed game-design durations.
type TimerConfig struct {
	Scatter       float64 `yaml:"scatter"`       // scatter phase length
	Chase         float64 `yaml:"chase"`         // chase phase length
	Vulnerable    float64 `yaml:"vulnerable"`    // power pellet effect duration
	Respawn       float64 `yaml:"respawn"`       // delay before respawn after death
	Invincibility float64 `yaml:"invincibility"` // protection window after respawn
	Ready         float64 `yaml:"ready"`         // "ready" delay before play starts
}

// AIConfig defines ghost targeting tuning constants.
type AIConfig struct {
	AmbushOffset   int     `yaml:"ambush_offset"`   // tiles ahead of the player for the ambush role
	PatrolDistance float64 `yaml:"patrol_distance"` // hunt/retreat distance threshold for the patrol role
	MixedToggle    float64 `yaml:"mixed_toggle"`    // seconds between the mixed role's target flips
	ContactRange   float64 `yaml:"contact_range"`   // player/ghost collision distance in tiles
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ApplyPacmanPreset modifies the config based on a difficulty preset.
// Unknown or empty presets leave the config untouched.
func ApplyPacmanPreset(cfg *PacmanConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Speeds.Ghost = 3.8
		cfg.Timers.Vulnerable = 14
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Speeds.Ghost = 5.2
		cfg.Timers.Vulnerable = 6
		cfg.Timers.Invincibility = 2
	}
}
