package invaders

import (
	"time"

	"github.com/vovakirdan/term-invaders/internal/core"
)

// shot is a projectile climbing one row per core.ShotStep.
type shot struct {
	pos   core.Point
	timer Timer
}

// blast marks a cell where a shot hit an invader.
type blast struct {
	pos   core.Point
	timer Timer
}

// Player is the ship on the bottom row together with its projectiles.
type Player struct {
	pos      core.Point
	cooldown Timer
	shots    []shot
	blasts   []blast
}

// NewPlayer creates a ship centred on the bottom row, ready to fire.
func NewPlayer() *Player {
	return &Player{
		pos:      core.Point{X: core.Width / 2, Y: core.PlayerRow},
		cooldown: newReadyTimer(core.ShotCooldown),
	}
}

// Position returns the ship's cell.
func (p *Player) Position() core.Point {
	return p.pos
}

// Shots returns the positions of active projectiles, oldest first.
func (p *Player) Shots() []core.Point {
	out := make([]core.Point, len(p.shots))
	for i, s := range p.shots {
		out[i] = s.pos
	}
	return out
}

// MoveLeft shifts the ship one column left, stopping at column 0.
func (p *Player) MoveLeft() {
	p.pos.X = core.Clamp(p.pos.Add(-1, 0).X, 0, core.Width-1)
}

// MoveRight shifts the ship one column right, stopping at the last column.
func (p *Player) MoveRight() {
	p.pos.X = core.Clamp(p.pos.Add(1, 0).X, 0, core.Width-1)
}

// Shoot fires a projectile from the ship's position.
// Returns false, without side effects, while the cooldown is running.
func (p *Player) Shoot() bool {
	if !p.cooldown.Ready() {
		return false
	}
	p.shots = append(p.shots, shot{
		pos:   p.pos,
		timer: NewTimer(core.ShotStep),
	})
	p.cooldown.Reset()
	return true
}

// Update advances the cooldown, moves projectiles and expires blasts.
func (p *Player) Update(delta time.Duration) {
	p.cooldown.Update(delta)

	kept := p.shots[:0]
	for _, s := range p.shots {
		s.timer.Update(delta)
		if s.timer.Ready() {
			s.timer.Reset()
			s.pos = s.pos.Add(0, -1)
		}
		if s.pos.Y >= 0 {
			kept = append(kept, s)
		}
	}
	p.shots = kept

	live := p.blasts[:0]
	for _, b := range p.blasts {
		b.timer.Update(delta)
		if !b.timer.Ready() {
			live = append(live, b)
		}
	}
	p.blasts = live
}

// DetectHits removes every projectile that shares a cell with an invader,
// along with the first invader found there. Returns true if anything was hit.
func (p *Player) DetectHits(fleet *Fleet) bool {
	hit := false
	kept := p.shots[:0]
	for _, s := range p.shots {
		if fleet.Kill(s.pos) {
			hit = true
			p.blasts = append(p.blasts, blast{pos: s.pos, timer: NewTimer(core.BlastDuration)})
			continue
		}
		kept = append(kept, s)
	}
	p.shots = kept
	return hit
}

// Draw stamps projectiles, blasts and the ship into the frame.
func (p *Player) Draw(f *core.Frame) {
	for _, s := range p.shots {
		f.Set(s.pos.X, s.pos.Y, core.GlyphShot)
	}
	for _, b := range p.blasts {
		f.Set(b.pos.X, b.pos.Y, core.GlyphBlast)
	}
	f.Set(p.pos.X, p.pos.Y, core.GlyphShip)
}
