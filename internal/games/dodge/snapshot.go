package dodge

// GameStateType represents the current game state.
type GameStateType string

const (
	StateRunning  GameStateType = "running"
	StatePaused   GameStateType = "paused"
	StateGameOver GameStateType = "game_over"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick          uint64
	ClockMs       float64
	Score         int
	PlayerX       float64
	PlayerSpeed   float64
	Obstacles     int
	SpawnInterval float64
	BlockSpeed    float64
	BaseSpeed     float64
	PowerUp       bool // A pickup is on the field
	Boosted       bool
	State         GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StateRunning
	switch {
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	return Snapshot{
		Tick:          g.tick,
		ClockMs:       g.clock,
		Score:         g.score,
		PlayerX:       g.player.Box.X,
		PlayerSpeed:   g.player.Speed,
		Obstacles:     g.obstacles.Len(),
		SpawnInterval: g.difficulty.SpawnInterval,
		BlockSpeed:    g.difficulty.BlockSpeed,
		BaseSpeed:     g.player.BaseSpeed,
		PowerUp:       g.pickups != nil && g.pickups.Current() != nil,
		Boosted:       g.boosted(),
		State:         state,
	}
}
