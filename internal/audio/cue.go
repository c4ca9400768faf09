// Package audio plays named sound cues. Playback is fire-and-forget;
// Wait blocks until queued cues have finished so the last cue of a
// session is not cut off at exit.
package audio

// Cue names a sound effect.
type Cue int

const (
	CueExplode Cue = iota
	CueLose
	CueMove
	CuePew
	CueStartup
	CueWin
)

// Cues lists every cue.
var Cues = []Cue{CueExplode, CueLose, CueMove, CuePew, CueStartup, CueWin}

// String returns the cue name, which is also its override file stem.
func (c Cue) String() string {
	switch c {
	case CueExplode:
		return "explode"
	case CueLose:
		return "lose"
	case CueMove:
		return "move"
	case CuePew:
		return "pew"
	case CueStartup:
		return "startup"
	case CueWin:
		return "win"
	default:
		return "unknown"
	}
}

// Sink accepts cues for playback.
type Sink interface {
	// Play queues a cue and returns immediately.
	Play(c Cue)
	// Wait blocks until queued cues have finished playing.
	Wait()
}

// Silent is a Sink that plays nothing.
type Silent struct{}

func (Silent) Play(Cue) {}
func (Silent) Wait()    {}
