package invaders

import "time"

// Snapshot captures entity state. The engine logs it when a session ends.
type Snapshot struct {
	PlayerX   int
	Shots     int
	Invaders  int
	Direction Direction
	Interval  time.Duration
}

// TakeSnapshot returns the current state of a player and fleet.
func TakeSnapshot(p *Player, f *Fleet) Snapshot {
	return Snapshot{
		PlayerX:   p.pos.X,
		Shots:     len(p.shots),
		Invaders:  len(f.invaders),
		Direction: f.dir,
		Interval:  f.Interval(),
	}
}
