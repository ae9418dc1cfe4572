package dodge

import (
	"testing"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
)

// scriptedRandom replays a fixed sequence of values, cycling when exhausted.
type scriptedRandom struct {
	vals []float64
	i    int
}

func (r *scriptedRandom) Float64() float64 {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

func testObstacleConfig() config.ObstacleConfig {
	return config.ObstacleConfig{MinSize: 30, MaxSize: 70, BatchMax: 4, BatchStep: 200}
}

func TestSpawnUsesRandomSizeAndColumn(t *testing.T) {
	rng := &scriptedRandom{vals: []float64{0.5, 0.25, 0.5}}
	om := NewObstacleManager(rng, 800, 600, testObstacleConfig())

	om.SpawnBatch(1, 4)

	if om.Len() != 1 {
		t.Fatalf("Len() = %d, expected 1", om.Len())
	}
	b := om.Blocks()[0]
	if b.Box.W != 50 || b.Box.H != 50 {
		t.Errorf("size %gx%g, expected 50x50", b.Box.W, b.Box.H)
	}
	if b.Box.X != 187.5 {
		t.Errorf("x = %g, expected 187.5", b.Box.X)
	}
	if b.Box.Y != -50 {
		t.Errorf("y = %g, expected -50 (just above the top)", b.Box.Y)
	}
	if b.Speed != 4 {
		t.Errorf("speed = %g, expected 4", b.Speed)
	}
	if len(b.Color) != 7 || b.Color[0] != '#' {
		t.Errorf("color = %q, expected a hex color", b.Color)
	}
}

func TestSpawnStaysInsideArena(t *testing.T) {
	for _, v := range []float64{0, 0.5, 0.999999} {
		rng := &scriptedRandom{vals: []float64{v}}
		om := NewObstacleManager(rng, 800, 600, testObstacleConfig())
		om.SpawnBatch(4, 4)

		for _, b := range om.Blocks() {
			if b.Box.X < 0 || b.Box.Right() > 800 {
				t.Errorf("rand %g: block spans [%g,%g], outside arena", v, b.Box.X, b.Box.Right())
			}
			if b.Box.W < 30 || b.Box.W > 70 {
				t.Errorf("rand %g: size %g outside [30,70]", v, b.Box.W)
			}
		}
	}
}

func TestBlockSpeedIsSnapshotAtSpawn(t *testing.T) {
	rng := &scriptedRandom{vals: []float64{0.1}}
	om := NewObstacleManager(rng, 800, 600, testObstacleConfig())

	om.SpawnBatch(1, 4)
	om.SpawnBatch(1, 9)

	blocks := om.Blocks()
	if blocks[0].Speed != 4 || blocks[1].Speed != 9 {
		t.Errorf("speeds %g,%g, expected 4,9", blocks[0].Speed, blocks[1].Speed)
	}
}

func TestUpdateMovesAndDetectsHit(t *testing.T) {
	om := NewObstacleManager(&scriptedRandom{vals: []float64{0}}, 800, 600, testObstacleConfig())
	player := core.NewBox(375, 530, 50, 50)

	om.Add(Obstacle{Box: core.NewBox(375, 474, 50, 50), Speed: 4})
	cleared, hit := om.Update(player)
	if cleared != 0 || hit {
		t.Fatalf("y=478 should not touch the player: cleared=%d hit=%v", cleared, hit)
	}
	if got := om.Blocks()[0].Box.Y; got != 478 {
		t.Errorf("y = %g, expected 478", got)
	}

	_, hit = om.Update(player)
	if !hit {
		t.Error("y=482 overlaps the player, expected a hit")
	}
}

func TestUpdateRemovesBeforeCollision(t *testing.T) {
	om := NewObstacleManager(&scriptedRandom{vals: []float64{0}}, 800, 600, testObstacleConfig())
	// Player flush with the bottom edge
	player := core.NewBox(375, 550, 50, 50)

	om.Add(Obstacle{Box: core.NewBox(375, 597, 50, 50), Speed: 4})
	om.Add(Obstacle{Box: core.NewBox(0, 100, 40, 40), Speed: 4})

	cleared, hit := om.Update(player)
	if cleared != 1 {
		t.Errorf("cleared = %d, expected 1", cleared)
	}
	if hit {
		t.Error("a block leaving the arena must not count as a hit")
	}
	if om.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", om.Len())
	}
}

func TestResetClearsBlocks(t *testing.T) {
	om := NewObstacleManager(&scriptedRandom{vals: []float64{0.3}}, 800, 600, testObstacleConfig())
	om.SpawnBatch(3, 4)
	om.Reset(&scriptedRandom{vals: []float64{0.7}})

	if om.Len() != 0 {
		t.Errorf("Len() = %d after reset, expected 0", om.Len())
	}
}
