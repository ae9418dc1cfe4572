package config

import "math"

// Difficulty tracks the three values that ramp during a run.
// Each Advance moves every value one fixed step toward its bound, so the
// spawn interval never increases, block speed never decreases, and player
// base speed never increases until Reset.
type Difficulty struct {
	cfg DifficultyConfig

	SpawnInterval float64 // Current ms between spawn batches
	BlockSpeed    float64 // Fall speed given to newly spawned blocks
	PlayerSpeed   float64 // Player base speed
}

// NewDifficulty creates a difficulty tracker at its initial values.
func NewDifficulty(cfg DifficultyConfig) *Difficulty {
	d := &Difficulty{cfg: cfg}
	d.Reset()
	return d
}

// Reset restores the initial values.
func (d *Difficulty) Reset() {
	d.SpawnInterval = d.cfg.SpawnInterval
	d.BlockSpeed = d.cfg.BlockSpeed
	d.PlayerSpeed = d.cfg.PlayerSpeed
}

// IsEnabled returns whether difficulty progression is active.
func (d *Difficulty) IsEnabled() bool {
	return d.cfg.Enabled
}

// Advance applies one ramp step. It is a no-op when progression is disabled.
func (d *Difficulty) Advance() {
	if !d.cfg.Enabled {
		return
	}
	if d.SpawnInterval > d.cfg.SpawnIntervalFloor {
		d.SpawnInterval = math.Max(d.cfg.SpawnIntervalFloor, d.SpawnInterval-d.cfg.SpawnIntervalStep)
	}
	if d.BlockSpeed < d.cfg.BlockSpeedCeiling {
		d.BlockSpeed = math.Min(d.cfg.BlockSpeedCeiling, d.BlockSpeed+d.cfg.BlockSpeedStep)
	}
	if d.PlayerSpeed > d.cfg.PlayerSpeedFloor {
		d.PlayerSpeed = math.Max(d.cfg.PlayerSpeedFloor, d.PlayerSpeed-d.cfg.PlayerSpeedStep)
	}
}

// Level returns overall progress toward the hardest spawn interval, 0.0 to 1.0.
func (d *Difficulty) Level() float64 {
	span := d.cfg.SpawnInterval - d.cfg.SpawnIntervalFloor
	if span <= 0 {
		return 1
	}
	return clampF((d.cfg.SpawnInterval-d.SpawnInterval)/span, 0.0, 1.0)
}

// BatchSize returns how many blocks the next spawn batch contains.
// Starts at one and grows by one for every batchStep ms the interval has
// shrunk, capped at batchMax.
func (d *Difficulty) BatchSize(batchStep float64, batchMax int) int {
	n := 1
	if batchStep > 0 {
		n += int(math.Floor((d.cfg.SpawnInterval - d.SpawnInterval) / batchStep))
	}
	if n > batchMax {
		n = batchMax
	}
	if n < 1 {
		n = 1
	}
	return n
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
