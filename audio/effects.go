package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/snake/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
)

// oscillator generates a fixed-length tone
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a tone of the given frequency and length
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	releaseStart int
	total        int
}

// NewEnvelope shapes s with attack at the start and release at the end of duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	start := total - rate.N(release)
	if start < att {
		start = att
	}
	return &envelope{
		streamer:     s,
		attack:       att,
		releaseStart: start,
		total:        total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		switch {
		case e.position < e.attack:
			vol = float64(e.position) / float64(e.attack)
		case e.position >= e.releaseStart && e.total > e.releaseStart:
			vol = float64(e.total-e.position) / float64(e.total-e.releaseStart)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear volume; math.Log2(0) is -Inf so 0 means silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateEatSound generates a short rising two-note chirp for fruit consumption
func CreateEatSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// First note (E5)
	n1 := NewOscillator(659.25, constants.EatSoundNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, constants.EatSoundNote1Duration, constants.EatSoundAttack, constants.EatSoundNote1Release, rate)

	// Second note (A5)
	n2 := NewOscillator(880.0, constants.EatSoundNote2Duration, WaveSine, rate)
	n2Shaped := NewEnvelope(n2, constants.EatSoundNote2Duration, constants.EatSoundAttack, constants.EatSoundNote2Release, rate)

	return newVolume(beep.Seq(newVolume(n1Shaped, 0.4), n2Shaped), cfg.MasterVolume)
}
