package core

import "strings"

// Glyph is the content of one terminal cell.
type Glyph rune

// Empty is the glyph of a cell nothing was drawn into.
const Empty Glyph = ' '

// Frame is a 2D glyph grid representing one rendered instant.
// It is backed by a fixed-size array, so assigning or sending a Frame
// copies it; the game loop and the renderer never share cells.
type Frame struct {
	cells [Height][Width]Glyph
}

// NewFrame returns an all-empty frame.
func NewFrame() Frame {
	var f Frame
	for y := range f.cells {
		for x := range f.cells[y] {
			f.cells[y][x] = Empty
		}
	}
	return f
}

// InBounds reports whether (x, y) addresses a cell of the frame.
func InBounds(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < Height
}

// Set places a glyph at the given position.
// Out-of-bounds coordinates are silently ignored.
func (f *Frame) Set(x, y int, g Glyph) {
	if !InBounds(x, y) {
		return
	}
	f.cells[y][x] = g
}

// Get returns the glyph at the given position.
// Returns Empty for out-of-bounds coordinates.
func (f *Frame) Get(x, y int) Glyph {
	if !InBounds(x, y) {
		return Empty
	}
	return f.cells[y][x]
}

// Diff calls fn for every cell whose glyph differs between prev and f.
func (f *Frame) Diff(prev *Frame, fn func(x, y int, g Glyph)) {
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if f.cells[y][x] != prev.cells[y][x] {
				fn(x, y, f.cells[y][x])
			}
		}
	}
}

// String converts the frame to rows joined with newlines.
func (f *Frame) String() string {
	var sb strings.Builder
	sb.Grow(Width*Height + Height)

	for y := 0; y < Height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < Width; x++ {
			sb.WriteRune(rune(f.cells[y][x]))
		}
	}
	return sb.String()
}
