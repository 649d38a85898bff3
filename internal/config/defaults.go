package config

import (
	_ "embed"
)

//go:embed defaults/pacman.yaml
var defaultPacmanYAML []byte

// DefaultPacmanConfig returns the default rule set.
// Kept in sync with defaults/pacman.yaml; used as the last-resort
// fallback if the embedded YAML cannot be parsed.
func DefaultPacmanConfig() PacmanConfig {
	return PacmanConfig{
		Gameplay: GameplayConfig{
			Lives:        3,
			DotPoints:    10,
			PelletPoints: 50,
			GhostPoints:  200,
		},
		Speeds: SpeedConfig{
			Player:           6.0,
			Ghost:            4.5,
			VulnerableFactor: 0.5,
			EatenFactor:      2.0,
		},
		Timers: TimerConfig{
			Scatter:       7,
			Chase:         20,
			Vulnerable:    10,
			Respawn:       2,
			Invincibility: 3,
			Ready:         2,
		},
		AI: AIConfig{
			AmbushOffset:   4,
			PatrolDistance: 8,
			MixedToggle:    5,
			ContactRange:   0.8,
		},
	}
}
