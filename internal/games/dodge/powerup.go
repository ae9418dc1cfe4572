package dodge

import (
	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
)

// PowerUp is a collectible that grants a temporary speed boost.
type PowerUp struct {
	Box       core.Box
	SpawnedAt float64 // Simulated clock (ms) at spawn
}

// Boost is the timed speed multiplier granted by a collected power-up.
type Boost struct {
	Active bool
	EndsAt float64 // Simulated clock (ms) at which the boost wears off
}

// PowerUpResult reports what the power-up lifecycle did during one tick.
type PowerUpResult struct {
	Spawned   bool
	Expired   bool
	Collected bool
	BoostEnd  bool
}

// PowerUpManager owns the single optional power-up and the boost it grants.
type PowerUpManager struct {
	current   *PowerUp
	boost     Boost
	timer     float64 // Ms accumulated since the last spawn
	threshold float64 // Ms the timer must exceed before the next spawn
	rng       Random
	arenaW    float64
	spawnY    float64
	cfg       config.PowerUpConfig
}

// NewPowerUpManager creates a manager that spawns pickups at height spawnY.
func NewPowerUpManager(rng Random, arenaW, spawnY float64, cfg config.PowerUpConfig) *PowerUpManager {
	pm := &PowerUpManager{
		arenaW: arenaW,
		spawnY: spawnY,
		cfg:    cfg,
	}
	pm.Reset(rng)
	return pm
}

// Reset removes any pickup, cancels the boost, and draws a fresh spawn threshold.
func (pm *PowerUpManager) Reset(rng Random) {
	pm.rng = rng
	pm.current = nil
	pm.boost = Boost{}
	pm.timer = 0
	pm.threshold = pm.nextThreshold()
}

// nextThreshold draws a delay uniformly from [MinDelay, MaxDelay].
func (pm *PowerUpManager) nextThreshold() float64 {
	return pm.cfg.MinDelay + pm.rng.Float64()*(pm.cfg.MaxDelay-pm.cfg.MinDelay)
}

// Update runs one tick of the lifecycle: spawn, expire, collect, boost timeout.
// now is the simulated clock after this tick, dt the tick length.
func (pm *PowerUpManager) Update(now, dt float64, player core.Box) PowerUpResult {
	var res PowerUpResult

	pm.timer += dt
	if pm.current == nil && pm.timer > pm.threshold {
		x := pm.rng.Float64() * (pm.arenaW - pm.cfg.Size)
		pm.current = &PowerUp{
			Box:       core.NewBox(x, pm.spawnY, pm.cfg.Size, pm.cfg.Size),
			SpawnedAt: now,
		}
		pm.timer = 0
		pm.threshold = pm.nextThreshold()
		res.Spawned = true
	}

	if pm.current != nil && now-pm.current.SpawnedAt >= pm.cfg.Lifetime {
		pm.current = nil
		res.Expired = true
	}

	if pm.current != nil && pm.current.Box.Overlaps(player) {
		pm.current = nil
		pm.boost = Boost{Active: true, EndsAt: now + pm.cfg.BoostDuration}
		res.Collected = true
	}

	if pm.boost.Active && now >= pm.boost.EndsAt {
		pm.boost = Boost{}
		res.BoostEnd = true
	}

	return res
}

// Multiplier returns the factor applied to the player's base speed.
func (pm *PowerUpManager) Multiplier() float64 {
	if pm.boost.Active {
		return pm.cfg.BoostMultiplier
	}
	return 1
}

// Current returns the active pickup, or nil.
func (pm *PowerUpManager) Current() *PowerUp {
	return pm.current
}

// Boost returns the boost state.
func (pm *PowerUpManager) Boost() Boost {
	return pm.boost
}

// Threshold returns the delay the spawn timer must exceed before the next pickup.
func (pm *PowerUpManager) Threshold() float64 {
	return pm.threshold
}
