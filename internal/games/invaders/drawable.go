// Package invaders implements the game entities: the player's ship with its
// projectiles and the invader fleet. All logic is driven by explicit time
// deltas, so entities are deterministic and testable without a clock.
package invaders

import "github.com/vovakirdan/term-invaders/internal/core"

// Drawable is implemented by the entities that can stamp themselves into a
// frame. The set is closed: only *Player and *Fleet satisfy it.
// Draw writes into the frame and never reads it back.
type Drawable interface {
	Draw(f *core.Frame)
	drawable()
}

func (*Player) drawable() {}
func (*Fleet) drawable()  {}

// DrawAll draws entities in order; later entities win on overlapping cells.
func DrawAll(f *core.Frame, entities ...Drawable) {
	for _, e := range entities {
		e.Draw(f)
	}
}
