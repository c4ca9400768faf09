package invaders

import (
	"time"

	"github.com/vovakirdan/term-invaders/internal/core"
)

// Direction is the fleet's horizontal heading.
type Direction int

const (
	MovingLeft  Direction = -1
	MovingRight Direction = 1
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	if d == MovingLeft {
		return "left"
	}
	return "right"
}

// Fleet is the grid of invaders and their shared movement state.
// Direction and timer are only mutated by Update and Kill, so every
// surviving invader always moves in the same direction on the same tick.
type Fleet struct {
	invaders []core.Point
	initial  int
	dir      Direction
	timer    Timer
}

// NewFleet creates the starting formation: every other column away from
// the side walls, every other row in the upper half of the playfield.
func NewFleet() *Fleet {
	var positions []core.Point
	for y := 1; y < core.Height/2; y++ {
		for x := 2; x < core.Width-2; x++ {
			if x%2 == 0 && y%2 == 0 {
				positions = append(positions, core.Point{X: x, Y: y})
			}
		}
	}
	return NewFleetAt(positions)
}

// NewFleetAt creates a fleet heading right with invaders at the given cells.
func NewFleetAt(positions []core.Point) *Fleet {
	f := &Fleet{
		invaders: append([]core.Point(nil), positions...),
		initial:  len(positions),
		dir:      MovingRight,
	}
	f.timer = NewTimer(f.Interval())
	return f
}

// Len returns the number of surviving invaders.
func (f *Fleet) Len() int {
	return len(f.invaders)
}

// Positions returns a copy of the surviving invaders' cells.
func (f *Fleet) Positions() []core.Point {
	return append([]core.Point(nil), f.invaders...)
}

// Direction returns the current heading.
func (f *Fleet) Direction() Direction {
	return f.dir
}

// Interval returns the time between moves for the current fleet size.
// It shrinks linearly from core.BaseMoveInterval with the full fleet to
// core.MinMoveInterval once the last invader is gone.
func (f *Fleet) Interval() time.Duration {
	if f.initial == 0 {
		return core.MinMoveInterval
	}
	span := core.BaseMoveInterval - core.MinMoveInterval
	return core.MinMoveInterval + span*time.Duration(len(f.invaders))/time.Duration(f.initial)
}

// Update advances the move timer. When it elapses the whole fleet either
// steps one column in its heading or, if any invader would leave the
// playfield, descends one row and reverses. Returns true if the fleet moved.
func (f *Fleet) Update(delta time.Duration) bool {
	f.timer.Update(delta)
	if !f.timer.Ready() {
		return false
	}
	f.timer.Reset()

	if len(f.invaders) == 0 {
		return false
	}

	dx := int(f.dir)
	if f.blocked(dx) {
		for i := range f.invaders {
			f.invaders[i] = f.invaders[i].Add(0, 1)
		}
		f.dir = -f.dir
		return true
	}

	for i := range f.invaders {
		f.invaders[i] = f.invaders[i].Add(dx, 0)
	}
	return true
}

// blocked reports whether a step of dx would take any invader off the grid.
func (f *Fleet) blocked(dx int) bool {
	for _, inv := range f.invaders {
		if x := inv.X + dx; x < 0 || x >= core.Width {
			return true
		}
	}
	return false
}

// Kill removes the first invader at p and speeds up the survivors.
// Returns false if no invader occupies p.
func (f *Fleet) Kill(p core.Point) bool {
	for i, inv := range f.invaders {
		if inv == p {
			f.invaders = append(f.invaders[:i], f.invaders[i+1:]...)
			f.timer.SetDuration(f.Interval())
			return true
		}
	}
	return false
}

// AllKilled reports whether no invaders remain.
func (f *Fleet) AllKilled() bool {
	return len(f.invaders) == 0
}

// ReachedBottom reports whether any invader reached the player's row.
func (f *Fleet) ReachedBottom() bool {
	for _, inv := range f.invaders {
		if inv.Y >= core.PlayerRow {
			return true
		}
	}
	return false
}

// Draw stamps every invader. The glyph alternates halfway through each
// move interval to animate the fleet.
func (f *Fleet) Draw(fr *core.Frame) {
	g := core.GlyphInvaderAlt
	if f.timer.Remaining()*2 > f.timer.Duration() {
		g = core.GlyphInvader
	}
	for _, inv := range f.invaders {
		fr.Set(inv.X, inv.Y, g)
	}
}
