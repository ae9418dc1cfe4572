package dodge

import (
	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
)

// InputState holds which movement keys are currently held.
type InputState struct {
	Left  bool
	Right bool
}

// Velocity derives horizontal velocity from held keys.
// Left only moves left, right only moves right, both or neither stand still.
func Velocity(keys InputState, speed float64) float64 {
	switch {
	case keys.Left && !keys.Right:
		return -speed
	case keys.Right && !keys.Left:
		return speed
	default:
		return 0
	}
}

// Player is the block the user steers along the bottom of the arena.
type Player struct {
	Box       core.Box
	DX        float64 // Horizontal velocity in units per tick
	Speed     float64 // Current speed, including any boost
	BaseSpeed float64 // Speed before boost, lowered by the difficulty ramp
}

// newPlayer places the player centered horizontally above the bottom margin.
func newPlayer(arenaW, arenaH float64, pc config.PlayerConfig, speed float64) Player {
	return Player{
		Box: core.NewBox(
			(arenaW-pc.Width)/2,
			arenaH-pc.Height-pc.BottomMargin,
			pc.Width,
			pc.Height,
		),
		Speed:     speed,
		BaseSpeed: speed,
	}
}

// Move applies velocity and keeps the player inside [0, arenaW-w].
func (p *Player) Move(arenaW float64) {
	p.Box.X = core.ClampF(p.Box.X+p.DX, 0, arenaW-p.Box.W)
}
