package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// oscillator generates a sine wave for a fixed number of samples.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	rate     beep.SampleRate
}

func newOscillator(freq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		val := math.Sin(2 * math.Pi * o.phase)
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attack && e.attack > 0 {
			vol = float64(e.position) / float64(e.attack)
		}
		if releaseStart := e.total - e.release; e.position >= releaseStart && e.release > 0 {
			vol = math.Max(0, float64(e.total-e.position)/float64(e.release))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly; zero or negative volume is silent.
// math.Log2(0) is -Inf, so silence is flagged explicitly.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

const (
	chimeNote    = 90 * time.Millisecond
	chimeAttack  = 5 * time.Millisecond
	chimeRelease = 60 * time.Millisecond
)

// chime is a rising two-note arpeggio (E6, B6).
func chime(rate beep.SampleRate, vol float64) beep.Streamer {
	note := func(freq float64) beep.Streamer {
		return newEnvelope(newOscillator(freq, chimeNote, rate), chimeNote, chimeAttack, chimeRelease, rate)
	}
	return newVolume(beep.Seq(note(1318.5), note(1975.5)), vol)
}

// melody loops a slow minor arpeggio with a sub bass, forever.
type melody struct {
	rate   beep.SampleRate
	pos    int
	step   int // Samples per note
	notes  []float64
	bassHz float64
}

// A minor: A3 C4 E4 A4 E4 C4
var melodyNotes = []float64{220, 261.63, 329.63, 440, 329.63, 261.63}

func newMelody(rate beep.SampleRate) *melody {
	return &melody{
		rate:   rate,
		step:   rate.N(300 * time.Millisecond),
		notes:  melodyNotes,
		bassHz: 110,
	}
}

func (m *melody) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(m.pos) / float64(m.rate)
		inNote := m.pos % m.step
		freq := m.notes[(m.pos/m.step)%len(m.notes)]

		// Each note decays so consecutive notes are audibly separate
		decay := math.Exp(-3 * float64(inNote) / float64(m.step))
		sample := 0.25*decay*math.Sin(2*math.Pi*freq*t) + 0.1*math.Sin(2*math.Pi*m.bassHz*t)

		samples[i][0] = sample
		samples[i][1] = sample
		m.pos++
	}
	return len(samples), true
}

func (m *melody) Err() error { return nil }
