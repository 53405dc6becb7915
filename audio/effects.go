package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Cue timings
const (
	chimeNoteDuration = 90 * time.Millisecond
	chimeAttack       = 5 * time.Millisecond
	chimeRelease      = 60 * time.Millisecond

	discardDuration = 140 * time.Millisecond
	discardAttack   = 10 * time.Millisecond
	discardRelease  = 100 * time.Millisecond
)

// Cue pitches in Hz
const (
	chimeLow  = 659.25 // E5
	chimeHigh = 987.77 // B5

	discardFundamental = 196.0 // G3
	discardOvertone    = 392.0
)

// envelope shapes a finite streamer with a linear attack and release
type envelope struct {
	s        beep.Streamer
	pos      int
	total    int
	attack   int
	release  int
	finished bool
}

// NewEnvelope applies attack/release over total samples of s, then ends the stream
func NewEnvelope(s beep.Streamer, total, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		s:       beep.Take(rate.N(total), s),
		total:   rate.N(total),
		attack:  rate.N(attack),
		release: rate.N(release),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.finished {
		return 0, false
	}
	n, ok = e.s.Stream(samples)
	releaseStart := e.total - e.release
	for i := 0; i < n; i++ {
		vol := 1.0
		switch {
		case e.pos < e.attack:
			vol = float64(e.pos) / float64(e.attack)
		case e.pos >= releaseStart && e.release > 0:
			vol = float64(e.total-e.pos) / float64(e.release)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.pos++
	}
	if !ok {
		e.finished = true
	}
	return n, ok
}

func (e *envelope) Err() error {
	return e.s.Err()
}

// newVolume scales s linearly; beep volume is exponential so log2 is used
// math.Log2(0) is -Inf, so 0 volume is mapped to silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone returns a shaped sine note, or silence of the same length if the pitch is invalid
func tone(rate beep.SampleRate, freq float64, total, attack, release time.Duration) beep.Streamer {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return beep.Silence(rate.N(total))
	}
	return NewEnvelope(sine, total, attack, release, rate)
}

// CreateCommitSound generates two rising notes
func CreateCommitSound(rate beep.SampleRate, vol float64) beep.Streamer {
	seq := beep.Seq(
		tone(rate, chimeLow, chimeNoteDuration, chimeAttack, chimeRelease),
		tone(rate, chimeHigh, chimeNoteDuration, chimeAttack, chimeRelease),
	)
	return newVolume(seq, 0.4*vol)
}

// CreateDiscardSound generates a short low tone with one overtone
func CreateDiscardSound(rate beep.SampleRate, vol float64) beep.Streamer {
	mixed := beep.Mix(
		newVolume(tone(rate, discardFundamental, discardDuration, discardAttack, discardRelease), 0.7),
		newVolume(tone(rate, discardOvertone, discardDuration, discardAttack, discardRelease), 0.3),
	)
	return newVolume(mixed, 0.4*vol)
}
