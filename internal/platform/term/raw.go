package term

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/term-invaders/internal/core"
)

var (
	// ErrTerminalTooSmall is returned when the playfield and its border do not fit.
	ErrTerminalTooSmall = errors.New("term: terminal too small")
	// ErrNotTerminal is returned when raw mode is requested on a non-terminal.
	ErrNotTerminal = errors.New("term: not a terminal")
)

// MinWidth and MinHeight are the smallest terminal that fits the bordered playfield.
const (
	MinWidth  = core.Width + 2
	MinHeight = core.Height + 2
)

// CheckSize returns ErrTerminalTooSmall if a w × h terminal cannot show the game.
func CheckSize(w, h int) error {
	if w < MinWidth || h < MinHeight {
		return fmt.Errorf("%w: need %dx%d, have %dx%d", ErrTerminalTooSmall, MinWidth, MinHeight, w, h)
	}
	return nil
}

// RawMode switches f to raw mode after checking its size.
// The returned function restores the previous state.
func RawMode(f *os.File) (restore func() error, err error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}

	w, h, err := term.GetSize(fd)
	if err != nil {
		return nil, fmt.Errorf("term: cannot get size: %w", err)
	}
	if err := CheckSize(w, h); err != nil {
		return nil, err
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("term: cannot enter raw mode: %w", err)
	}
	return func() error { return term.Restore(fd, state) }, nil
}
