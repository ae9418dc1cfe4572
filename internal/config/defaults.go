package config

import (
	_ "embed"
)

//go:embed defaults/dodge.yaml
var defaultDodgeYAML []byte

// DefaultDodgeConfig returns the hardcoded default configuration.
// It mirrors defaults/dodge.yaml and is used when the embedded file cannot be parsed.
func DefaultDodgeConfig() DodgeConfig {
	return DodgeConfig{
		Arena: ArenaConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			Width:        50,
			Height:       50,
			BottomMargin: 20,
		},
		Obstacles: ObstacleConfig{
			MinSize:   30,
			MaxSize:   70,
			BatchMax:  4,
			BatchStep: 200,
		},
		Difficulty: DifficultyConfig{
			Enabled:            true,
			SpawnInterval:      1000,
			SpawnIntervalFloor: 300,
			SpawnIntervalStep:  15,
			BlockSpeed:         4,
			BlockSpeedCeiling:  15,
			BlockSpeedStep:     0.2,
			PlayerSpeed:        7,
			PlayerSpeedFloor:   3,
			PlayerSpeedStep:    0.03,
		},
		PowerUp: PowerUpConfig{
			Enabled:         true,
			Size:            30,
			MinDelay:        5000,
			MaxDelay:        15000,
			Lifetime:        5000,
			BoostMultiplier: 1.5,
			BoostDuration:   5000,
		},
		Audio: AudioConfig{
			Enabled: true,
			Music:   true,
			Volume:  0.25,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultDodgeYAML
}
