package dodge

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

// Visual elements
const (
	PlayerChar   = '█'
	ObstacleChar = '▓'
	PowerUpChar  = '◆'
)

// hudRows is the number of screen rows reserved above the playfield.
const hudRows = 1

// Render draws the current game state to the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() <= 0 || dst.Height() <= hudRows {
		return
	}

	for _, o := range g.obstacles.Blocks() {
		dst.FillRect(g.project(dst, o.Box), ObstacleChar, o.Color)
	}

	if g.pickups != nil {
		if p := g.pickups.Current(); p != nil {
			dst.FillRect(g.project(dst, p.Box), PowerUpChar, core.ColorPowerUp)
		}
	}

	playerColor := core.ColorPlayer
	if g.boosted() {
		playerColor = core.ColorBoosted
	}
	if g.gameOver {
		playerColor = core.ColorDanger
	}
	dst.FillRect(g.project(dst, g.player.Box), PlayerChar, playerColor)

	g.drawHUD(dst)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.gameOver {
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
}

// project maps a world box onto screen cells below the HUD.
// Every box that is at least partly inside the arena covers at least one cell.
func (g *Game) project(dst *core.Screen, b core.Box) core.Rect {
	sx := float64(dst.Width()) / g.cfg.Arena.Width
	sy := float64(dst.Height()-hudRows) / g.cfg.Arena.Height

	x0 := int(math.Floor(b.X * sx))
	x1 := int(math.Ceil(b.Right() * sx))
	y0 := int(math.Floor(b.Y * sy))
	y1 := int(math.Ceil(b.Bottom() * sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	// Clip to the playfield; blocks still entering from above are partly hidden
	y0 = core.Max(y0, 0)
	y1 = core.Min(y1, dst.Height()-hudRows)
	if y1 <= y0 {
		return core.Rect{}
	}
	return core.NewRect(x0, y0+hudRows, x1-x0, y1-y0)
}

// drawHUD writes score, ramp progress, speeds and boost time on the top row.
func (g *Game) drawHUD(dst *core.Screen) {
	dst.DrawTextColored(1, 0, fmt.Sprintf(" Score: %d ", g.score), core.ColorHUD)

	level := "fixed"
	if g.difficulty.IsEnabled() {
		level = fmt.Sprintf("%.0f%%", g.difficulty.Level()*100)
	}
	info := fmt.Sprintf(" Lvl: %s  Spd: %.1f  Fall: %.1f  Every: %.0fms ",
		level, g.player.Speed, g.difficulty.BlockSpeed, g.difficulty.SpawnInterval)
	if g.boosted() {
		left := (g.pickups.Boost().EndsAt - g.clock) / 1000
		info = fmt.Sprintf(" BOOST %.1fs %s", left, info)
	}
	x := dst.Width() - len([]rune(info)) - 1
	if x < 14 {
		return
	}
	color := core.ColorHUD
	if g.boosted() {
		color = core.ColorBoosted
	}
	dst.DrawTextColored(x, 0, info, color)
}

// drawCenteredMessage draws a boxed message in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// boosted reports whether a speed boost is active.
func (g *Game) boosted() bool {
	return g.pickups != nil && g.pickups.Boost().Active
}
