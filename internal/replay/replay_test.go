package replay

import (
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/games/dodge"
	"github.com/vovakirdan/tui-dodge/internal/storage"
)

// playRecorded plays a scripted run of the given variant and returns the
// recording alongside the final snapshot.
func playRecorded(t *testing.T, game *dodge.Game, seed int64, ticks int) (storage.Run, dodge.Snapshot) {
	t.Helper()
	cfg := config.DefaultDodgeConfig()
	rt := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}

	game.UseConfig(cfg)
	game.Reset(rt)
	rec, err := NewRecorder(game.ID(), rt, cfg)
	if err != nil {
		t.Fatalf("NewRecorder() failed: %v", err)
	}

	for i := 0; i < ticks && !game.State().GameOver; i++ {
		in := core.NewInputFrame()
		switch {
		case i%150 < 60:
			in.Set(core.ActionLeft)
		case i%150 > 90:
			in.Set(core.ActionRight)
		}
		if i == 500 || i == 520 {
			in.Set(core.ActionPause)
		}
		rec.Record(in)
		game.Step(in)
	}

	if rec.Len() == 0 {
		t.Fatal("nothing recorded")
	}
	return rec.Run(game.State().Score), game.Snapshot()
}

func TestVerifyReproducesRun(t *testing.T) {
	tests := []struct {
		name string
		game *dodge.Game
		seed int64
	}{
		{"dodge", dodge.New(), 1},
		{"dodge other seed", dodge.New(), 99},
		{"classic", dodge.NewClassic(), 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			run, want := playRecorded(t, tt.game, tt.seed, 4000)

			res, err := Verify(&run)
			if err != nil {
				t.Fatalf("Verify() failed: %v", err)
			}
			if !res.Matches() {
				t.Errorf("replayed score %d, recorded %d", res.Snapshot.Score, res.Expected)
			}
			if res.Snapshot != want {
				t.Errorf("replay diverged:\n%+v\n%+v", res.Snapshot, want)
			}
		})
	}
}

func TestReplayThroughJournal(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	run, want := playRecorded(t, dodge.New(), 2024, 3000)
	id, err := store.SaveRun(run)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	loaded, err := store.RunByID(id)
	if err != nil || loaded == nil {
		t.Fatalf("RunByID() = %v, %v", loaded, err)
	}

	p, err := NewPlayer(loaded, 80, 24)
	if err != nil {
		t.Fatalf("NewPlayer() failed: %v", err)
	}
	steps := 0
	for !p.Done() {
		if _, ok := p.Step(); !ok {
			t.Fatal("Step() reported end before Done()")
		}
		steps++
	}
	if steps != run.Ticks {
		t.Errorf("played %d frames, recorded %d", steps, run.Ticks)
	}
	if done, total := p.Progress(); done != total {
		t.Errorf("Progress() = %d/%d after playback", done, total)
	}
	if got := p.Game().Snapshot(); got != want {
		t.Errorf("journal replay diverged:\n%+v\n%+v", got, want)
	}
	if _, ok := p.Step(); ok {
		t.Error("Step() after the end should report false")
	}
}

func TestNewPlayerErrors(t *testing.T) {
	good, _ := playRecorded(t, dodge.New(), 1, 10)

	badConfig := good
	badConfig.Config = []byte("arena:\n  width: -1\n")
	if _, err := NewPlayer(&badConfig, 80, 24); err == nil {
		t.Error("expected an error for an invalid config")
	}

	unknown := good
	unknown.GameID = "tetris"
	if _, err := NewPlayer(&unknown, 80, 24); err == nil {
		t.Error("expected an error for an unknown game")
	}
}
