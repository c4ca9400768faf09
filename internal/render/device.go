// Package render turns a stream of frames into terminal output. Only cells
// that changed since the previous frame are written to the device.
package render

import "github.com/vovakirdan/term-invaders/internal/core"

// Device is a terminal-like character grid. Coordinates are playfield cells;
// the device decides where the playfield sits on the physical screen.
// The renderer is the only writer.
type Device interface {
	// Clear blanks the whole screen.
	Clear() error
	// DrawBorder outlines a playfield of w × h cells.
	DrawBorder(w, h int) error
	// SetCell writes a glyph at a playfield cell.
	SetCell(x, y int, g core.Glyph) error
	// Flush makes pending writes visible.
	Flush() error
}
