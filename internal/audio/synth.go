package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a finite streamer of the given wave.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(freq) + 1)),
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
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in over attack and out over release.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s, which is expected to last duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
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
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; e.release > 0 && remaining < e.release {
			vol = math.Max(0, float64(remaining)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly; math.Log2(0) is -Inf so 0 means silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// note is one segment of a cue recipe.
type note struct {
	freq float64
	dur  time.Duration
	wave WaveType
}

func (n note) streamer(rate beep.SampleRate) beep.Streamer {
	release := n.dur / 3
	return NewEnvelope(NewOscillator(n.freq, n.dur, n.wave, rate), n.dur, 5*time.Millisecond, release, rate)
}

const ms = time.Millisecond

// recipes describes the built-in sound of every cue.
var recipes = map[Cue][]note{
	CueExplode: {{0, 300 * ms, WaveNoise}},
	CueLose:    {{330, 200 * ms, WaveSaw}, {247, 200 * ms, WaveSaw}, {165, 400 * ms, WaveSaw}},
	CueMove:    {{110, 60 * ms, WaveSquare}},
	CuePew:     {{1200, 40 * ms, WaveSquare}, {900, 60 * ms, WaveSquare}},
	CueStartup: {{440, 120 * ms, WaveSine}, {554, 120 * ms, WaveSine}, {659, 120 * ms, WaveSine}, {880, 240 * ms, WaveSine}},
	CueWin:     {{523, 150 * ms, WaveSine}, {659, 150 * ms, WaveSine}, {784, 150 * ms, WaveSine}, {1047, 400 * ms, WaveSine}},
}

// Synthesize returns the built-in sound for a cue.
func Synthesize(c Cue, rate beep.SampleRate) beep.Streamer {
	notes := recipes[c]
	parts := make([]beep.Streamer, len(notes))
	for i, n := range notes {
		parts[i] = n.streamer(rate)
	}
	return beep.Seq(parts...)
}
