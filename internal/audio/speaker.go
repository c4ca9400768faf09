package audio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

const sampleRate = beep.SampleRate(44100)

var format = beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}

// Options controls the speaker sink.
type Options struct {
	// SoundsDir may hold <cue>.wav files that replace the built-in sounds.
	SoundsDir string
	// Volume is a linear gain; 1 leaves samples unchanged.
	Volume float64
	// DrainTimeout bounds Wait.
	DrainTimeout time.Duration
}

// Speaker is a Sink backed by the system audio device.
type Speaker struct {
	logger  *log.Logger
	cues    map[Cue]*beep.Buffer
	volume  float64
	timeout time.Duration
	play    func(...beep.Streamer)
	pending sync.WaitGroup
}

// NewSpeaker loads every cue and opens the audio device.
func NewSpeaker(opts Options, logger *log.Logger) (*Speaker, error) {
	cues, err := LoadCues(opts.SoundsDir, logger)
	if err != nil {
		return nil, err
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	return newSpeaker(cues, opts, speaker.Play, logger), nil
}

func newSpeaker(cues map[Cue]*beep.Buffer, opts Options, play func(...beep.Streamer), logger *log.Logger) *Speaker {
	if opts.DrainTimeout <= 0 {
		opts.DrainTimeout = 3 * time.Second
	}
	return &Speaker{
		logger:  logger,
		cues:    cues,
		volume:  opts.Volume,
		timeout: opts.DrainTimeout,
		play:    play,
	}
}

// Play queues a cue. Unknown cues are ignored.
func (s *Speaker) Play(c Cue) {
	buf, ok := s.cues[c]
	if !ok {
		return
	}

	s.pending.Add(1)
	var once sync.Once
	s.play(beep.Seq(
		newVolume(buf.Streamer(0, buf.Len()), s.volume),
		beep.Callback(func() { once.Do(s.pending.Done) }),
	))
}

// Wait blocks until every queued cue has finished or the drain timeout passes.
func (s *Speaker) Wait() {
	done := make(chan struct{})
	go func() {
		s.pending.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(s.timeout):
		s.logger.Warn("audio drain timed out", "timeout", s.timeout)
	}
}

// Close stops playback and releases the audio device.
func (s *Speaker) Close() {
	speaker.Clear()
	speaker.Close()
}

// LoadCues buffers the sound of every cue. A <cue>.wav in dir overrides the
// built-in sound; a missing file is not an error, an unreadable one is.
func LoadCues(dir string, logger *log.Logger) (map[Cue]*beep.Buffer, error) {
	cues := make(map[Cue]*beep.Buffer, len(Cues))

	for _, c := range Cues {
		buf := beep.NewBuffer(format)

		if dir != "" {
			path := filepath.Join(dir, c.String()+".wav")
			loaded, err := appendWAV(buf, path)
			if err != nil {
				return nil, err
			}
			if loaded {
				logger.Debug("loaded cue override", "cue", c, "path", path)
				cues[c] = buf
				continue
			}
		}

		buf.Append(Synthesize(c, sampleRate))
		cues[c] = buf
	}

	return cues, nil
}

// appendWAV decodes path into buf, resampling as needed.
// Returns false if the file does not exist.
func appendWAV(buf *beep.Buffer, path string) (bool, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("audio: cannot open %s: %w", path, err)
	}
	defer f.Close()

	stream, srcFormat, err := wav.Decode(f)
	if err != nil {
		return false, fmt.Errorf("audio: cannot decode %s: %w", path, err)
	}
	defer stream.Close()

	if srcFormat.SampleRate == sampleRate {
		buf.Append(stream)
	} else {
		buf.Append(beep.Resample(4, srcFormat.SampleRate, sampleRate, stream))
	}
	if err := stream.Err(); err != nil {
		return false, fmt.Errorf("audio: cannot read %s: %w", path, err)
	}
	return true, nil
}
