package invaders

import (
	"testing"
	"time"
)

func TestTimer(t *testing.T) {
	tests := []struct {
		name      string
		duration  time.Duration
		updates   []time.Duration
		ready     bool
		remaining time.Duration
	}{
		{"fresh", 100 * time.Millisecond, nil, false, 100 * time.Millisecond},
		{"partial", 100 * time.Millisecond, []time.Duration{40 * time.Millisecond}, false, 60 * time.Millisecond},
		{"exact", 100 * time.Millisecond, []time.Duration{50 * time.Millisecond, 50 * time.Millisecond}, true, 0},
		{"saturates", 100 * time.Millisecond, []time.Duration{time.Second}, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := NewTimer(tt.duration)
			for _, d := range tt.updates {
				tm.Update(d)
			}
			if tm.Ready() != tt.ready {
				t.Errorf("Ready() = %v, expected %v", tm.Ready(), tt.ready)
			}
			if tm.Remaining() != tt.remaining {
				t.Errorf("Remaining() = %v, expected %v", tm.Remaining(), tt.remaining)
			}
		})
	}
}

func TestTimerSetDurationKeepsElapsed(t *testing.T) {
	tm := NewTimer(time.Second)
	tm.Update(300 * time.Millisecond)

	tm.SetDuration(500 * time.Millisecond)
	if got := tm.Remaining(); got != 200*time.Millisecond {
		t.Errorf("Remaining() after longer-than-elapsed duration = %v, expected 200ms", got)
	}

	tm.SetDuration(100 * time.Millisecond)
	if !tm.Ready() {
		t.Error("shrinking below elapsed time should make the timer ready")
	}

	tm.Reset()
	if tm.Ready() || tm.Duration() != 100*time.Millisecond {
		t.Errorf("after Reset: ready=%v duration=%v", tm.Ready(), tm.Duration())
	}
}

func TestReadyTimer(t *testing.T) {
	tm := newReadyTimer(time.Second)
	if !tm.Ready() {
		t.Error("newReadyTimer should be ready")
	}
}
