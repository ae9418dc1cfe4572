package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the file looked up in the user and local config directories.
const ConfigFileName = "dodge.yaml"

// LoadDodge loads the game configuration.
// Search order: customPath -> ~/.dodge/configs/dodge.yaml -> ./configs/dodge.yaml -> embedded default
func LoadDodge(customPath string) (DodgeConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DodgeConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return DodgeConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", ConfigFileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultDodgeYAML)
	if err != nil {
		return DefaultDodgeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the hardcoded defaults and validates the result.
// Keys missing from data keep their default values.
func Parse(data []byte) (DodgeConfig, error) {
	cfg := DefaultDodgeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DodgeConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return DodgeConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes a configuration as YAML.
func Marshal(cfg DodgeConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// Validate reports configuration values the simulation cannot run with.
func (c DodgeConfig) Validate() error {
	var errs []error

	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		errs = append(errs, fmt.Errorf("arena must have positive size, got %gx%g", c.Arena.Width, c.Arena.Height))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, fmt.Errorf("player must have positive size, got %gx%g", c.Player.Width, c.Player.Height))
	}
	if c.Player.Width > c.Arena.Width {
		errs = append(errs, fmt.Errorf("player width %g exceeds arena width %g", c.Player.Width, c.Arena.Width))
	}
	if c.Obstacles.MinSize <= 0 || c.Obstacles.MinSize > c.Obstacles.MaxSize {
		errs = append(errs, fmt.Errorf("obstacle sizes must satisfy 0 < min_size <= max_size, got %g..%g",
			c.Obstacles.MinSize, c.Obstacles.MaxSize))
	}
	if c.Obstacles.MaxSize > c.Arena.Width {
		errs = append(errs, fmt.Errorf("obstacle max_size %g exceeds arena width %g", c.Obstacles.MaxSize, c.Arena.Width))
	}
	if c.Obstacles.BatchMax < 1 {
		errs = append(errs, fmt.Errorf("obstacles.batch_max must be at least 1, got %d", c.Obstacles.BatchMax))
	}

	d := c.Difficulty
	if d.SpawnInterval <= 0 || d.SpawnIntervalFloor <= 0 || d.SpawnIntervalFloor > d.SpawnInterval {
		errs = append(errs, fmt.Errorf("spawn interval must satisfy 0 < floor <= initial, got floor %g initial %g",
			d.SpawnIntervalFloor, d.SpawnInterval))
	}
	if d.BlockSpeed <= 0 || d.BlockSpeedCeiling < d.BlockSpeed {
		errs = append(errs, fmt.Errorf("block speed must satisfy 0 < initial <= ceiling, got initial %g ceiling %g",
			d.BlockSpeed, d.BlockSpeedCeiling))
	}
	if d.PlayerSpeedFloor <= 0 || d.PlayerSpeedFloor > d.PlayerSpeed {
		errs = append(errs, fmt.Errorf("player speed must satisfy 0 < floor <= initial, got floor %g initial %g",
			d.PlayerSpeedFloor, d.PlayerSpeed))
	}
	if d.SpawnIntervalStep < 0 || d.BlockSpeedStep < 0 || d.PlayerSpeedStep < 0 {
		errs = append(errs, errors.New("difficulty steps must not be negative"))
	}

	p := c.PowerUp
	if p.Enabled {
		if p.Size <= 0 || p.Size > c.Arena.Width {
			errs = append(errs, fmt.Errorf("powerup size must be within the arena, got %g", p.Size))
		}
		if p.MinDelay < 0 || p.MinDelay > p.MaxDelay {
			errs = append(errs, fmt.Errorf("powerup delays must satisfy 0 <= min <= max, got %g..%g", p.MinDelay, p.MaxDelay))
		}
		if p.Lifetime <= 0 || p.BoostDuration <= 0 {
			errs = append(errs, errors.New("powerup lifetime and boost_duration must be positive"))
		}
		if p.BoostMultiplier < 1 {
			errs = append(errs, fmt.Errorf("powerup boost_multiplier must be at least 1, got %g", p.BoostMultiplier))
		}
	}

	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio volume must be within [0, 1], got %g", c.Audio.Volume))
	}

	return errors.Join(errs...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dodge", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
// Presets only move the starting point of the ramp; the per-batch steps stay fixed.
func ApplyPreset(cfg *DodgeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	case DifficultyEasy:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.SpawnInterval = 1200
		cfg.Difficulty.BlockSpeed = 3
	case DifficultyNormal:
		cfg.Difficulty.Enabled = true
	case DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.SpawnInterval = 700
		cfg.Difficulty.BlockSpeed = 7
		cfg.Difficulty.PlayerSpeed = 6
	}

	// Keep the bounds consistent with the new starting point
	if cfg.Difficulty.SpawnIntervalFloor > cfg.Difficulty.SpawnInterval {
		cfg.Difficulty.SpawnIntervalFloor = cfg.Difficulty.SpawnInterval
	}
	if cfg.Difficulty.BlockSpeedCeiling < cfg.Difficulty.BlockSpeed {
		cfg.Difficulty.BlockSpeedCeiling = cfg.Difficulty.BlockSpeed
	}
	if cfg.Difficulty.PlayerSpeedFloor > cfg.Difficulty.PlayerSpeed {
		cfg.Difficulty.PlayerSpeedFloor = cfg.Difficulty.PlayerSpeed
	}
}
