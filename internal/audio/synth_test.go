package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func drain(t *testing.T, s beep.Streamer) int {
	t.Helper()
	total := 0
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for j := 0; j < n; j++ {
			if buf[j][0] < -1 || buf[j][0] > 1 || buf[j][1] < -1 || buf[j][1] > 1 {
				t.Fatalf("Sample out of range: %v", buf[j])
			}
		}
		total += n
		if !ok {
			return total
		}
	}
	t.Fatal("Stream never ended")
	return total
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := NewOscillator(440, 100*time.Millisecond, wave, rate)
		if got := drain(t, osc); got != rate.N(100*time.Millisecond) {
			t.Errorf("Wave %d streamed %d samples, expected %d", wave, got, rate.N(100*time.Millisecond))
		}
		if osc.Err() != nil {
			t.Errorf("Unexpected error: %v", osc.Err())
		}
	}
}

func TestEnvelopeFadesEdges(t *testing.T) {
	rate := beep.SampleRate(44100)
	dur := 50 * time.Millisecond
	env := NewEnvelope(NewOscillator(0, dur, WaveSquare, rate), dur, 10*time.Millisecond, 10*time.Millisecond, rate)

	samples := make([][2]float64, rate.N(dur))
	n, _ := env.Stream(samples)
	if n == 0 {
		t.Fatal("Envelope produced no samples")
	}
	if samples[0][0] != 0 {
		t.Errorf("First sample should be silent, got %f", samples[0][0])
	}
	if mid := samples[n/2][0]; mid != 1 {
		t.Errorf("Sustain should pass through, got %f", mid)
	}
}

func TestSynthesizeEveryCue(t *testing.T) {
	for _, c := range Cues {
		if _, ok := recipes[c]; !ok {
			t.Errorf("Cue %v has no recipe", c)
			continue
		}
		if n := drain(t, Synthesize(c, sampleRate)); n == 0 {
			t.Errorf("Cue %v is empty", c)
		}
	}
}

func TestCueNames(t *testing.T) {
	want := []string{"explode", "lose", "move", "pew", "startup", "win"}
	for i, c := range Cues {
		if c.String() != want[i] {
			t.Errorf("Cue %d = %q, expected %q", i, c.String(), want[i])
		}
	}
}
