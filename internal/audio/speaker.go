package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-dodge/internal/config"
)

const sampleRate = beep.SampleRate(44100)

// SpeakerPlayer mixes the chime and music loop onto the system speaker.
type SpeakerPlayer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	volume      float64
	initialized bool
}

// NewSpeakerPlayer builds the mixer graph without touching the device.
// The music loop is added paused unless cfg.Music is set.
func NewSpeakerPlayer(cfg config.AudioConfig) *SpeakerPlayer {
	sp := &SpeakerPlayer{
		mixer:  &beep.Mixer{},
		volume: cfg.Volume,
	}
	sp.music = &beep.Ctrl{
		Streamer: newVolume(newMelody(sampleRate), cfg.Volume),
		Paused:   !cfg.Music,
	}
	sp.mixer.Add(sp.music)
	return sp
}

// Initialize opens the speaker and starts streaming the mixer.
func (sp *SpeakerPlayer) Initialize() error {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	if sp.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sp.mixer)
	sp.initialized = true
	return nil
}

// PowerUpTone queues the chime on the mixer.
func (sp *SpeakerPlayer) PowerUpTone() {
	sp.lock()
	defer sp.unlock()
	sp.mixer.Add(chime(sampleRate, sp.volume))
}

// ToggleMusic pauses or resumes the background loop.
func (sp *SpeakerPlayer) ToggleMusic() bool {
	sp.lock()
	defer sp.unlock()
	sp.music.Paused = !sp.music.Paused
	return !sp.music.Paused
}

// MusicOn reports whether the background loop is playing.
func (sp *SpeakerPlayer) MusicOn() bool {
	sp.lock()
	defer sp.unlock()
	return !sp.music.Paused
}

// Close silences everything. The speaker itself stays open; beep offers no
// way to release it.
func (sp *SpeakerPlayer) Close() {
	sp.lock()
	defer sp.unlock()
	sp.music.Paused = true
	sp.mixer.Clear()
}

// lock takes the speaker lock while streaming, the player lock otherwise.
// The mixer is read by the speaker goroutine once initialized.
func (sp *SpeakerPlayer) lock() {
	sp.mu.Lock()
	if sp.initialized {
		speaker.Lock()
	}
}

func (sp *SpeakerPlayer) unlock() {
	if sp.initialized {
		speaker.Unlock()
	}
	sp.mu.Unlock()
}
