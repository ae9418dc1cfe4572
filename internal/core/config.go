package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickMillis returns the simulated duration of one tick in milliseconds.
func (c RuntimeConfig) TickMillis() float64 {
	if c.TickRate <= 0 {
		return 1000.0 / 60.0
	}
	return 1000.0 / float64(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// EventType identifies something notable that happened during a tick.
type EventType int

const (
	EventObstacleSpawned EventType = iota
	EventObstacleCleared
	EventPowerUpSpawned
	EventPowerUpExpired
	EventPowerUpCollected
	EventBoostEnded
	EventGameOver
	EventPaused
	EventResumed
)

// String returns a human-readable name for the event.
func (e EventType) String() string {
	switch e {
	case EventObstacleSpawned:
		return "obstacle_spawned"
	case EventObstacleCleared:
		return "obstacle_cleared"
	case EventPowerUpSpawned:
		return "powerup_spawned"
	case EventPowerUpExpired:
		return "powerup_expired"
	case EventPowerUpCollected:
		return "powerup_collected"
	case EventBoostEnded:
		return "boost_ended"
	case EventGameOver:
		return "game_over"
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	default:
		return "unknown"
	}
}

// Event is a single occurrence reported by Game.Step().
// Platform code maps events to side effects such as sound and logging.
type Event struct {
	Type  EventType
	Count int // Number of entities involved (e.g. obstacles in a spawn batch)
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether an event of the given type occurred this tick.
func (r StepResult) Has(t EventType) bool {
	for _, e := range r.Events {
		if e.Type == t {
			return true
		}
	}
	return false
}
