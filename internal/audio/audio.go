// Package audio plays the game's optional sounds: a chime when a power-up
// appears and a synthesized background loop the player can toggle.
// Every failure degrades to silence; callers never see audio errors.
package audio

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dodge/internal/config"
)

// Player is the fire-and-forget audio collaborator used by the platform.
type Player interface {
	// PowerUpTone plays a short chime.
	PowerUpTone()
	// ToggleMusic flips the background loop and returns whether it now plays.
	ToggleMusic() bool
	// MusicOn reports whether the background loop is playing.
	MusicOn() bool
	// Close stops all sound.
	Close()
}

// Silent is a Player that does nothing. Used when audio is disabled,
// unavailable, or not wanted (SSH sessions). It still tracks the music
// toggle so the status line stays consistent.
type Silent struct {
	music bool
}

// NewSilent creates a silent player whose music toggle starts at music.
func NewSilent(music bool) *Silent {
	return &Silent{music: music}
}

func (s *Silent) PowerUpTone() {}

func (s *Silent) ToggleMusic() bool {
	s.music = !s.music
	return s.music
}

func (s *Silent) MusicOn() bool { return s.music }

func (s *Silent) Close() {}

// Open returns a speaker-backed player, or a Silent one when audio is
// disabled in cfg or the output device cannot be opened.
func Open(cfg config.AudioConfig, logger *log.Logger) Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if !cfg.Enabled {
		logger.Debug("audio disabled by config")
		return NewSilent(false)
	}

	sp := NewSpeakerPlayer(cfg)
	if err := sp.Initialize(); err != nil {
		logger.Debug("audio unavailable, continuing silently", "err", err)
		return NewSilent(cfg.Music)
	}
	logger.Debug("audio initialized", "music", cfg.Music, "volume", cfg.Volume)
	return sp
}
