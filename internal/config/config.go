// Package config provides YAML-based game configuration loading and
// difficulty management for the dodge platform.
package config

// DodgeConfig contains all configuration for the block dodging game.
type DodgeConfig struct {
	Arena      ArenaConfig      `yaml:"arena"`
	Player     PlayerConfig     `yaml:"player"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	PowerUp    PowerUpConfig    `yaml:"powerup"`
	Audio      AudioConfig      `yaml:"audio"`
}

// ArenaConfig defines the virtual canvas the simulation runs in.
// The renderer scales it to whatever terminal size is available.
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player block.
type PlayerConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	BottomMargin float64 `yaml:"bottom_margin"` // Gap between player and arena bottom
}

// ObstacleConfig defines falling block parameters.
type ObstacleConfig struct {
	MinSize   float64 `yaml:"min_size"`
	MaxSize   float64 `yaml:"max_size"`
	BatchMax  int     `yaml:"batch_max"`  // Upper bound of blocks spawned per batch
	BatchStep float64 `yaml:"batch_step"` // Interval reduction (ms) that adds one block per batch
}

// DifficultyConfig defines the difficulty ramp.
// Every spawn batch moves each value one step toward its bound.
type DifficultyConfig struct {
	Enabled bool `yaml:"enabled"`

	SpawnInterval      float64 `yaml:"spawn_interval"`       // Initial ms between batches
	SpawnIntervalFloor float64 `yaml:"spawn_interval_floor"` // Minimum ms between batches
	SpawnIntervalStep  float64 `yaml:"spawn_interval_step"`  // Decrease per batch

	BlockSpeed        float64 `yaml:"block_speed"`         // Initial fall speed (units per tick)
	BlockSpeedCeiling float64 `yaml:"block_speed_ceiling"` // Maximum fall speed
	BlockSpeedStep    float64 `yaml:"block_speed_step"`    // Increase per batch

	PlayerSpeed      float64 `yaml:"player_speed"`       // Initial player speed (units per tick)
	PlayerSpeedFloor float64 `yaml:"player_speed_floor"` // Minimum player speed
	PlayerSpeedStep  float64 `yaml:"player_speed_step"`  // Decrease per batch
}

// PowerUpConfig defines the speed boost pickup.
type PowerUpConfig struct {
	Enabled         bool    `yaml:"enabled"`
	Size            float64 `yaml:"size"`
	MinDelay        float64 `yaml:"min_delay"`        // Minimum ms before a pickup spawns
	MaxDelay        float64 `yaml:"max_delay"`        // Maximum ms before a pickup spawns
	Lifetime        float64 `yaml:"lifetime"`         // Ms an uncollected pickup stays on screen
	BoostMultiplier float64 `yaml:"boost_multiplier"` // Player speed multiplier while boosted
	BoostDuration   float64 `yaml:"boost_duration"`   // Ms the boost lasts
}

// AudioConfig defines the optional sound collaborator.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Music   bool    `yaml:"music"`  // Start with background music on
	Volume  float64 `yaml:"volume"` // Master volume, 0.0 to 1.0
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset.
// Unknown strings map to the empty preset, meaning "use the config as is".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
