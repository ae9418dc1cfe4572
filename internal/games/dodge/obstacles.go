package dodge

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
)

// Random is the source of randomness for spawning.
// *math/rand.Rand satisfies it; tests can substitute a scripted sequence.
type Random interface {
	Float64() float64
}

// Obstacle is a falling block that ends the game on contact.
type Obstacle struct {
	Box   core.Box
	Speed float64 // Fall speed captured when the block spawned
	Color core.Color
}

// ObstacleManager handles spawning, movement, and removal of falling blocks.
type ObstacleManager struct {
	blocks []Obstacle
	rng    Random
	arenaW float64
	arenaH float64
	cfg    config.ObstacleConfig
}

// NewObstacleManager creates an obstacle manager drawing from rng.
func NewObstacleManager(rng Random, arenaW, arenaH float64, cfg config.ObstacleConfig) *ObstacleManager {
	return &ObstacleManager{
		blocks: make([]Obstacle, 0, 16),
		rng:    rng,
		arenaW: arenaW,
		arenaH: arenaH,
		cfg:    cfg,
	}
}

// Reset clears all blocks and switches to a new random source.
func (om *ObstacleManager) Reset(rng Random) {
	om.blocks = om.blocks[:0]
	om.rng = rng
}

// SpawnBatch adds n blocks just above the top edge, all falling at speed.
func (om *ObstacleManager) SpawnBatch(n int, speed float64) {
	for i := 0; i < n; i++ {
		om.spawn(speed)
	}
}

// spawn creates one block with a random size, column and hue.
func (om *ObstacleManager) spawn(speed float64) {
	size := om.cfg.MinSize
	if om.cfg.MaxSize > om.cfg.MinSize {
		size += om.rng.Float64() * (om.cfg.MaxSize - om.cfg.MinSize)
	}
	x := om.rng.Float64() * (om.arenaW - size)
	hue := om.rng.Float64() * 360

	om.blocks = append(om.blocks, Obstacle{
		Box:   core.NewBox(x, -size, size, size),
		Speed: speed,
		Color: core.Color(colorful.Hsl(hue, 0.7, 0.7).Hex()),
	})
}

// Add inserts a block directly. Used by tests and scripted scenarios.
func (om *ObstacleManager) Add(o Obstacle) {
	om.blocks = append(om.blocks, o)
}

// Update moves every block down by its own speed.
// Blocks whose top passes the bottom edge are removed and counted as cleared
// before any collision check. Returns the number cleared and whether a
// remaining block overlaps the player.
func (om *ObstacleManager) Update(player core.Box) (cleared int, hit bool) {
	valid := om.blocks[:0]
	for _, b := range om.blocks {
		b.Box.Y += b.Speed
		if b.Box.Y > om.arenaH {
			cleared++
			continue
		}
		if b.Box.Overlaps(player) {
			hit = true
		}
		valid = append(valid, b)
	}
	om.blocks = valid
	return cleared, hit
}

// Blocks returns the current list of obstacles.
func (om *ObstacleManager) Blocks() []Obstacle {
	return om.blocks
}

// Len returns the number of obstacles in play.
func (om *ObstacleManager) Len() int {
	return len(om.blocks)
}
