// Package dodge implements a falling-block dodging game.
// The player slides a block along the bottom of the arena while obstacles
// rain down ever faster; an optional pickup grants a temporary speed boost.
package dodge

import (
	"math/rand"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/registry"
)

// Game implements the dodge game logic.
type Game struct {
	id       string
	title    string
	powerUps bool // Whether this variant spawns pickups at all

	override   *config.DodgeConfig // Config injected by UseConfig, bypasses loading
	cfg        config.DodgeConfig
	runtime    core.RuntimeConfig
	rng        *rand.Rand
	difficulty *config.Difficulty

	player    Player
	keys      InputState
	obstacles *ObstacleManager
	pickups   *PowerUpManager // nil when the variant or config disables pickups

	score      int
	gameOver   bool
	paused     bool
	tick       uint64  // Running ticks since reset
	clock      float64 // Simulated ms since reset; frozen while paused
	spawnTimer float64 // Ms accumulated toward the next spawn batch
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// New creates the full game with speed-boost pickups.
func New() *Game {
	return &Game{id: "dodge", title: "Block Dodge", powerUps: true}
}

// NewClassic creates the variant without pickups.
func NewClassic() *Game {
	return &Game{id: "classic", title: "Block Dodge Classic", powerUps: false}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// UseConfig pins the configuration used by every subsequent Reset,
// bypassing file lookup and presets. Replays rely on this.
func (g *Game) UseConfig(cfg config.DodgeConfig) {
	g.override = &cfg
}

// Config returns the configuration the current run was started with.
func (g *Game) Config() config.DodgeConfig {
	return g.cfg
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = g.loadConfig()

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.difficulty = config.NewDifficulty(g.cfg.Difficulty)

	arenaW, arenaH := g.cfg.Arena.Width, g.cfg.Arena.Height
	g.player = newPlayer(arenaW, arenaH, g.cfg.Player, g.difficulty.PlayerSpeed)
	g.keys = InputState{}

	if g.obstacles == nil {
		g.obstacles = NewObstacleManager(g.rng, arenaW, arenaH, g.cfg.Obstacles)
	} else {
		g.obstacles.arenaW, g.obstacles.arenaH = arenaW, arenaH
		g.obstacles.cfg = g.cfg.Obstacles
		g.obstacles.Reset(g.rng)
	}

	g.pickups = nil
	if g.powerUps && g.cfg.PowerUp.Enabled {
		spawnY := arenaH - g.cfg.Player.BottomMargin - g.cfg.PowerUp.Size
		g.pickups = NewPowerUpManager(g.rng, arenaW, spawnY, g.cfg.PowerUp)
	}

	g.score = 0
	g.gameOver = false
	g.paused = false
	g.tick = 0
	g.clock = 0
	g.spawnTimer = 0
}

// loadConfig resolves the configuration for a new run.
func (g *Game) loadConfig() config.DodgeConfig {
	if g.override != nil {
		return *g.override
	}

	cfg, err := config.LoadDodge(configPath)
	if err != nil {
		cfg = config.DefaultDodgeConfig()
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	return cfg
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	// Restart reinitializes with the same runtime config
	if in.Has(core.ActionRestart) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	var events []core.Event

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
		if g.paused {
			events = append(events, core.Event{Type: core.EventPaused})
		} else {
			events = append(events, core.Event{Type: core.EventResumed})
		}
	}

	if g.paused {
		return core.StepResult{State: g.State(), Events: events}
	}

	dt := g.runtime.TickMillis()
	g.tick++
	g.clock += dt

	// Held keys arrive between frames and set velocity before the move
	g.keys = InputState{Left: in.Has(core.ActionLeft), Right: in.Has(core.ActionRight)}
	g.player.DX = Velocity(g.keys, g.player.Speed)
	g.player.Move(g.cfg.Arena.Width)

	// Spawn a batch and ramp difficulty
	g.spawnTimer += dt
	if g.spawnTimer > g.difficulty.SpawnInterval {
		n := g.difficulty.BatchSize(g.cfg.Obstacles.BatchStep, g.cfg.Obstacles.BatchMax)
		g.obstacles.SpawnBatch(n, g.difficulty.BlockSpeed)
		g.spawnTimer = 0
		g.difficulty.Advance()
		g.player.BaseSpeed = g.difficulty.PlayerSpeed
		events = append(events, core.Event{Type: core.EventObstacleSpawned, Count: n})
	}

	cleared, hit := g.obstacles.Update(g.player.Box)
	if cleared > 0 {
		g.score += cleared
		events = append(events, core.Event{Type: core.EventObstacleCleared, Count: cleared})
	}
	if hit {
		g.gameOver = true
		events = append(events, core.Event{Type: core.EventGameOver})
		return core.StepResult{State: g.State(), Events: events}
	}

	multiplier := 1.0
	if g.pickups != nil {
		res := g.pickups.Update(g.clock, dt, g.player.Box)
		if res.Spawned {
			events = append(events, core.Event{Type: core.EventPowerUpSpawned, Count: 1})
		}
		if res.Expired {
			events = append(events, core.Event{Type: core.EventPowerUpExpired, Count: 1})
		}
		if res.Collected {
			events = append(events, core.Event{Type: core.EventPowerUpCollected, Count: 1})
		}
		if res.BoostEnd {
			events = append(events, core.Event{Type: core.EventBoostEnded})
		}
		multiplier = g.pickups.Multiplier()
	}

	g.player.Speed = g.player.BaseSpeed * multiplier
	g.player.DX = Velocity(g.keys, g.player.Speed)

	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Register the variants with the registry
func init() {
	registry.Register("dodge", func() registry.Game {
		return New()
	})
	registry.Register("classic", func() registry.Game {
		return NewClassic()
	})
}
