package invaders

import (
	"testing"

	"github.com/vovakirdan/term-invaders/internal/core"
)

func TestDrawAllFleetWinsOverlap(t *testing.T) {
	p := NewPlayer()
	f := NewFleetAt([]core.Point{p.Position()})

	fr := core.NewFrame()
	DrawAll(&fr, p, f)

	pos := p.Position()
	if fr.Get(pos.X, pos.Y) != core.GlyphInvader {
		t.Errorf("Fleet drawn last should win the cell, got %q", fr.Get(pos.X, pos.Y))
	}
}

func TestDrawAtEdges(t *testing.T) {
	p := NewPlayer()
	for i := 0; i < core.Width; i++ {
		p.MoveLeft()
	}
	p.Shoot()

	corners := []core.Point{
		{X: 0, Y: 0}, {X: core.Width - 1, Y: 0},
		{X: 0, Y: core.PlayerRow}, {X: core.Width - 1, Y: core.PlayerRow},
	}
	f := NewFleetAt(corners)

	fr := core.NewFrame()
	DrawAll(&fr, p, f)

	for _, c := range corners {
		if fr.Get(c.X, c.Y) == core.Empty {
			t.Errorf("Corner %v should be drawn", c)
		}
	}
}

func TestSnapshotDeterminism(t *testing.T) {
	run := func() Snapshot {
		p := NewPlayer()
		f := NewFleet()
		for i := 0; i < 500; i++ {
			if i%7 == 0 {
				p.Shoot()
			}
			if i%11 == 0 {
				p.MoveLeft()
			}
			p.Update(core.ShotStep)
			f.Update(core.ShotStep)
			p.DetectHits(f)
		}
		return TakeSnapshot(p, f)
	}

	a, b := run(), run()
	if a != b {
		t.Errorf("Snapshots differ: %+v vs %+v", a, b)
	}
	if a.Invaders == NewFleet().Len() {
		t.Error("Expected some invaders to be hit")
	}
}
