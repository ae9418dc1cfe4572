// Package replay records the inputs of a run and plays them back through
// a fresh game. The game is deterministic for a given seed, config and
// input sequence, so a replay reproduces the run exactly.
package replay

import (
	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/storage"
)

// Recorder collects the input frame of every Step call in a run.
type Recorder struct {
	gameID  string
	runtime core.RuntimeConfig
	config  []byte
	masks   []uint16
}

// NewRecorder starts a recording for a run that was reset with runtime and cfg.
func NewRecorder(gameID string, runtime core.RuntimeConfig, cfg config.DodgeConfig) (*Recorder, error) {
	data, err := config.Marshal(cfg)
	if err != nil {
		return nil, err
	}
	return &Recorder{
		gameID:  gameID,
		runtime: runtime,
		config:  data,
		masks:   make([]uint16, 0, 1024),
	}, nil
}

// Record appends the frame passed to Step.
func (r *Recorder) Record(in core.InputFrame) {
	r.masks = append(r.masks, in.Mask())
}

// Len returns the number of recorded frames.
func (r *Recorder) Len() int {
	return len(r.masks)
}

// Run packages the recording for the journal.
func (r *Recorder) Run(score int) storage.Run {
	return storage.Run{
		GameID:   r.gameID,
		Seed:     r.runtime.Seed,
		TickRate: r.runtime.TickRate,
		Config:   r.config,
		Inputs:   r.masks,
		Score:    score,
		Ticks:    len(r.masks),
	}
}
