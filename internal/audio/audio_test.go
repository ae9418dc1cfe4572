package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-dodge/internal/config"
)

// drain streams s to exhaustion and returns every left-channel sample.
func drain(t *testing.T, s beep.Streamer, limit int) []float64 {
	t.Helper()
	var out []float64
	buf := make([][2]float64, 512)
	for len(out) < limit {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			out = append(out, buf[i][0])
		}
		if !ok {
			return out
		}
	}
	t.Fatalf("stream did not end within %d samples", limit)
	return nil
}

func TestSilentPlayer(t *testing.T) {
	tests := []struct {
		name  string
		music bool
	}{
		{"music off", false},
		{"music on", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Player = NewSilent(tt.music)

			p.PowerUpTone()
			if p.MusicOn() != tt.music {
				t.Errorf("MusicOn() = %v, expected %v", p.MusicOn(), tt.music)
			}
			if got := p.ToggleMusic(); got == tt.music || p.MusicOn() != got {
				t.Errorf("first toggle reported %v, expected %v", got, !tt.music)
			}
			if got := p.ToggleMusic(); got != tt.music {
				t.Errorf("second toggle reported %v, expected %v", got, tt.music)
			}
			p.Close()
		})
	}
}

func TestOpenDisabledIsSilent(t *testing.T) {
	p := Open(config.AudioConfig{Enabled: false, Music: true, Volume: 0.5}, nil)
	if _, ok := p.(*Silent); !ok {
		t.Errorf("Open() with audio disabled = %T, expected *Silent", p)
	}
	if p.MusicOn() {
		t.Error("disabled audio should not report music")
	}
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(8000)
	got := drain(t, newOscillator(440, 50*time.Millisecond, rate), 100000)
	if len(got) != rate.N(50*time.Millisecond) {
		t.Errorf("oscillator produced %d samples, expected %d", len(got), rate.N(50*time.Millisecond))
	}
	for i, v := range got {
		if v < -1 || v > 1 {
			t.Fatalf("sample %d = %g out of range", i, v)
		}
	}
}

func TestEnvelopeFadesInAndOut(t *testing.T) {
	rate := beep.SampleRate(8000)
	dur := 100 * time.Millisecond
	src := newOscillator(200, dur, rate)
	got := drain(t, newEnvelope(src, dur, 10*time.Millisecond, 20*time.Millisecond, rate), 100000)

	if got[0] != 0 {
		t.Errorf("first sample = %g, expected 0 at the start of the attack", got[0])
	}
	last := got[len(got)-1]
	if math.Abs(last) > 1.0/float64(rate.N(20*time.Millisecond)) {
		t.Errorf("last sample = %g, expected near silence at the end of the release", last)
	}
}

func TestChimeIsTwoNotes(t *testing.T) {
	got := drain(t, chime(sampleRate, 0.5), 1000000)
	want := 2 * sampleRate.N(chimeNote)
	if len(got) != want {
		t.Errorf("chime length = %d samples, expected %d", len(got), want)
	}
}

func TestZeroVolumeIsSilent(t *testing.T) {
	got := drain(t, chime(sampleRate, 0), 1000000)
	for i, v := range got {
		if v != 0 {
			t.Fatalf("sample %d = %g, expected silence", i, v)
		}
	}
}

func TestMelodyNeverEnds(t *testing.T) {
	m := newMelody(beep.SampleRate(8000))
	buf := make([][2]float64, 4096)
	for i := 0; i < 20; i++ {
		if n, ok := m.Stream(buf); !ok || n != len(buf) {
			t.Fatalf("melody stopped after %d buffers", i)
		}
	}
}

func TestSpeakerPlayerWithoutDevice(t *testing.T) {
	sp := NewSpeakerPlayer(config.AudioConfig{Enabled: true, Music: false, Volume: 0.25})

	if sp.MusicOn() {
		t.Error("music should start paused when disabled in config")
	}
	if !sp.ToggleMusic() || !sp.MusicOn() {
		t.Error("toggle should start the music")
	}
	if sp.ToggleMusic() {
		t.Error("second toggle should stop the music")
	}

	before := sp.mixer.Len()
	sp.PowerUpTone()
	if sp.mixer.Len() != before+1 {
		t.Errorf("mixer has %d streamers, expected %d", sp.mixer.Len(), before+1)
	}

	sp.Close()
	if sp.mixer.Len() != 0 || sp.MusicOn() {
		t.Error("Close should clear the mixer and stop the music")
	}
}

func TestSpeakerPlayerMusicStartsFromConfig(t *testing.T) {
	var p Player = NewSpeakerPlayer(config.AudioConfig{Enabled: true, Music: true, Volume: 0.25})
	if !p.MusicOn() {
		t.Fatal("music should start playing when enabled in config")
	}
	if p.ToggleMusic() || p.MusicOn() {
		t.Error("first toggle should pause the music")
	}
}
