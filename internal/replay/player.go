package replay

import (
	"fmt"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/games/dodge"
	"github.com/vovakirdan/tui-dodge/internal/registry"
	"github.com/vovakirdan/tui-dodge/internal/storage"
)

// Replayable is a game whose config can be pinned and whose state can be
// compared after playback.
type Replayable interface {
	registry.Game
	UseConfig(cfg config.DodgeConfig)
	Snapshot() dodge.Snapshot
}

// Player feeds a recorded run into a fresh game one frame at a time.
type Player struct {
	run  *storage.Run
	game Replayable
	pos  int
}

// NewPlayer prepares a game configured exactly like the recorded run.
// screenW and screenH only affect rendering.
func NewPlayer(run *storage.Run, screenW, screenH int) (*Player, error) {
	cfg, err := config.Parse(run.Config)
	if err != nil {
		return nil, fmt.Errorf("replay: run %s has an invalid config: %w", run.ID, err)
	}

	g, err := registry.Create(run.GameID)
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	game, ok := g.(Replayable)
	if !ok {
		return nil, fmt.Errorf("replay: game %q does not support replay", run.GameID)
	}

	game.UseConfig(cfg)
	game.Reset(core.RuntimeConfig{
		ScreenW:  screenW,
		ScreenH:  screenH,
		TickRate: run.TickRate,
		Seed:     run.Seed,
	})

	return &Player{run: run, game: game}, nil
}

// Step advances the game by the next recorded frame.
// Returns false once every frame has been played.
func (p *Player) Step() (core.StepResult, bool) {
	if p.pos >= len(p.run.Inputs) {
		return core.StepResult{State: p.game.State()}, false
	}
	res := p.game.Step(core.FrameFromMask(p.run.Inputs[p.pos]))
	p.pos++
	return res, true
}

// Done reports whether playback has consumed every frame.
func (p *Player) Done() bool {
	return p.pos >= len(p.run.Inputs)
}

// Progress returns the number of frames played and the total.
func (p *Player) Progress() (int, int) {
	return p.pos, len(p.run.Inputs)
}

// Game returns the game being driven, for rendering.
func (p *Player) Game() Replayable {
	return p.game
}

// Result summarizes a headless playback.
type Result struct {
	Snapshot dodge.Snapshot
	Expected int // Score stored with the run
}

// Matches reports whether playback reproduced the recorded score.
func (r Result) Matches() bool {
	return r.Snapshot.Score == r.Expected
}

// Verify replays a run to the end without rendering.
func Verify(run *storage.Run) (Result, error) {
	p, err := NewPlayer(run, 80, 24)
	if err != nil {
		return Result{}, err
	}
	for !p.Done() {
		p.Step()
	}
	return Result{Snapshot: p.game.Snapshot(), Expected: run.Score}, nil
}
