package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultDodgeConfig()) {
		t.Errorf("embedded YAML and DefaultDodgeConfig differ:\n%+v\n%+v", cfg, DefaultDodgeConfig())
	}
}

func TestLoadDodgeCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("difficulty:\n  block_speed: 6\npowerup:\n  enabled: false\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadDodge(path)
	if err != nil {
		t.Fatalf("LoadDodge() failed: %v", err)
	}
	if cfg.Difficulty.BlockSpeed != 6 {
		t.Errorf("BlockSpeed = %g, expected 6", cfg.Difficulty.BlockSpeed)
	}
	if cfg.PowerUp.Enabled {
		t.Error("powerup should be disabled by custom config")
	}
	// Keys absent from the file keep their defaults
	if cfg.Arena.Width != 800 || cfg.Difficulty.SpawnInterval != 1000 {
		t.Errorf("missing keys should keep defaults, got arena %g interval %g",
			cfg.Arena.Width, cfg.Difficulty.SpawnInterval)
	}
}

func TestLoadDodgeCustomPathErrors(t *testing.T) {
	if _, err := LoadDodge(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("arena: [not a map"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadDodge(path)
	if err == nil || !strings.Contains(err.Error(), "failed to parse config") {
		t.Errorf("expected parse error, got %v", err)
	}
}

func TestLoadDodgeUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".dodge", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("player:\n  width: 40\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadDodge("")
	if err != nil {
		t.Fatalf("LoadDodge() failed: %v", err)
	}
	if cfg.Player.Width != 40 {
		t.Errorf("user config not applied, player width = %g", cfg.Player.Width)
	}
}

func TestLoadDodgeFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadDodge("")
	if err != nil {
		t.Fatalf("LoadDodge() failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultDodgeConfig()) {
		t.Error("expected embedded defaults when no config files exist")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*DodgeConfig)
		wantErr string
	}{
		{"defaults are valid", func(*DodgeConfig) {}, ""},
		{"zero arena", func(c *DodgeConfig) { c.Arena.Width = 0 }, "arena"},
		{"player wider than arena", func(c *DodgeConfig) { c.Player.Width = 900 }, "player width"},
		{"inverted obstacle sizes", func(c *DodgeConfig) { c.Obstacles.MinSize = 80 }, "obstacle sizes"},
		{"no batch", func(c *DodgeConfig) { c.Obstacles.BatchMax = 0 }, "batch_max"},
		{"floor above interval", func(c *DodgeConfig) { c.Difficulty.SpawnIntervalFloor = 2000 }, "spawn interval"},
		{"ceiling below speed", func(c *DodgeConfig) { c.Difficulty.BlockSpeedCeiling = 1 }, "block speed"},
		{"negative step", func(c *DodgeConfig) { c.Difficulty.BlockSpeedStep = -1 }, "steps"},
		{"inverted delays", func(c *DodgeConfig) { c.PowerUp.MinDelay = 20000 }, "delays"},
		{"weak boost", func(c *DodgeConfig) { c.PowerUp.BoostMultiplier = 0.5 }, "boost_multiplier"},
		{"disabled powerup skips checks", func(c *DodgeConfig) {
			c.PowerUp.Enabled = false
			c.PowerUp.BoostMultiplier = 0
		}, ""},
		{"loud audio", func(c *DodgeConfig) { c.Audio.Volume = 2 }, "volume"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultDodgeConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()

			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() = %v, expected error containing %q", err, tc.wantErr)
			}
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultDodgeConfig()
	cfg.Difficulty.BlockSpeed = 5.5
	cfg.PowerUp.Enabled = false

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	back, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, back) {
		t.Errorf("round trip mismatch:\n%+v\n%+v", cfg, back)
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultDodgeConfig()
	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	cfg = DefaultDodgeConfig()
	ApplyPreset(&cfg, DifficultyHard)
	if cfg.Difficulty.SpawnInterval >= DefaultDodgeConfig().Difficulty.SpawnInterval {
		t.Error("hard preset should start with a shorter spawn interval")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("hard preset produced invalid config: %v", err)
	}

	cfg = DefaultDodgeConfig()
	ApplyPreset(&cfg, DifficultyEasy)
	if cfg.Difficulty.BlockSpeed >= DefaultDodgeConfig().Difficulty.BlockSpeed {
		t.Error("easy preset should start with slower blocks")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("easy preset produced invalid config: %v", err)
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(hard) should return DifficultyHard")
	}
	if ParsePreset("nightmare") != "" {
		t.Error("unknown presets should map to empty")
	}
	if ParsePreset("fixed") != DifficultyFixed {
		t.Error("ParsePreset(fixed) should return DifficultyFixed")
	}
}
