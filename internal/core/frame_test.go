package core

import (
	"strings"
	"testing"
)

func TestNewFrame(t *testing.T) {
	f := NewFrame()

	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if f.Get(x, y) != Empty {
				t.Errorf("New frame should be empty, got %q at (%d, %d)", f.Get(x, y), x, y)
			}
		}
	}
}

func TestFrameSetGet(t *testing.T) {
	f := NewFrame()

	f.Set(5, 5, 'X')
	if f.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", f.Get(5, 5))
	}

	// Out of bounds should be silent
	f.Set(-1, 0, 'A')
	f.Set(Width, 0, 'A')
	f.Set(0, -1, 'A')
	f.Set(0, Height, 'A')

	if f.Get(-1, 0) != Empty {
		t.Error("Out of bounds Get should return Empty")
	}
	if f.Get(Width, 0) != Empty {
		t.Error("Out of bounds Get should return Empty")
	}

	// Nothing leaked into the edges
	for _, p := range []Point{{0, 0}, {Width - 1, 0}, {0, Height - 1}} {
		if f.Get(p.X, p.Y) != Empty {
			t.Errorf("Out of bounds Set leaked into (%d, %d)", p.X, p.Y)
		}
	}
}

func TestFrameIsValue(t *testing.T) {
	a := NewFrame()
	b := a
	b.Set(1, 1, 'Z')

	if a.Get(1, 1) != Empty {
		t.Error("Copying a frame should not share cells")
	}
}

func TestFrameDiff(t *testing.T) {
	prev := NewFrame()
	curr := NewFrame()
	curr.Set(3, 4, 'A')
	curr.Set(Width-1, Height-1, 'x')

	var got []Point
	curr.Diff(&prev, func(x, y int, g Glyph) {
		got = append(got, Point{x, y})
	})

	if len(got) != 2 {
		t.Fatalf("Diff reported %d cells, expected 2", len(got))
	}
	if got[0] != (Point{3, 4}) || got[1] != (Point{Width - 1, Height - 1}) {
		t.Errorf("Diff reported %v", got)
	}

	count := 0
	curr.Diff(&curr, func(int, int, Glyph) { count++ })
	if count != 0 {
		t.Errorf("Diff of identical frames reported %d cells", count)
	}
}

func TestFrameString(t *testing.T) {
	f := NewFrame()
	f.Set(0, 0, 'A')

	rows := strings.Split(f.String(), "\n")
	if len(rows) != Height {
		t.Fatalf("String() has %d rows, expected %d", len(rows), Height)
	}
	if !strings.HasPrefix(rows[0], "A ") {
		t.Errorf("Row 0 = %q", rows[0])
	}
	if len(rows[1]) != Width {
		t.Errorf("Row length should be %d, got %d", Width, len(rows[1]))
	}
}
