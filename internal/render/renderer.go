package render

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/term-invaders/internal/core"
)

// Renderer writes frame differences to a Device.
type Renderer struct {
	dev    Device
	logger *log.Logger
	last   core.Frame
	frames int
	cells  int
}

// Stats summarises what a renderer has written.
type Stats struct {
	Frames int // frames received
	Cells  int // cells written
}

// New creates a renderer whose previous frame is empty.
func New(dev Device, logger *log.Logger) *Renderer {
	return &Renderer{
		dev:    dev,
		logger: logger,
		last:   core.NewFrame(),
	}
}

// Render writes the cells of curr that differ from prev. With force the
// device is cleared, the border redrawn and every cell written. Identical
// frames without force touch nothing, not even Flush.
func Render(dev Device, prev, curr *core.Frame, force bool) (int, error) {
	written := 0

	if force {
		if err := dev.Clear(); err != nil {
			return 0, fmt.Errorf("render: clear: %w", err)
		}
		if err := dev.DrawBorder(core.Width, core.Height); err != nil {
			return 0, fmt.Errorf("render: border: %w", err)
		}
		for y := 0; y < core.Height; y++ {
			for x := 0; x < core.Width; x++ {
				if err := dev.SetCell(x, y, curr.Get(x, y)); err != nil {
					return written, fmt.Errorf("render: cell (%d,%d): %w", x, y, err)
				}
				written++
			}
		}
	} else {
		var err error
		curr.Diff(prev, func(x, y int, g core.Glyph) {
			if err != nil {
				return
			}
			if err = dev.SetCell(x, y, g); err == nil {
				written++
			}
		})
		if err != nil {
			return written, fmt.Errorf("render: cell: %w", err)
		}
		if written == 0 {
			return 0, nil
		}
	}

	if err := dev.Flush(); err != nil {
		return written, fmt.Errorf("render: flush: %w", err)
	}
	return written, nil
}

// Run consumes frames until the channel is closed. The first frame is a
// forced full redraw. After a device error Run keeps draining without
// writing, so the sender never blocks on a dead consumer; the first error
// is returned once the channel closes and is also sent on errc if non-nil.
func (r *Renderer) Run(frames <-chan core.Frame, errc chan<- error) error {
	var failed error
	force := true

	for curr := range frames {
		r.frames++
		if failed != nil {
			continue
		}

		n, err := Render(r.dev, &r.last, &curr, force)
		r.cells += n
		if err != nil {
			failed = err
			r.logger.Error("render failed, draining", "frame", r.frames, "error", err)
			if errc != nil {
				errc <- err
			}
			continue
		}
		r.last = curr
		force = false
	}

	r.logger.Debug("renderer stopped", "frames", r.frames, "cells", r.cells)
	return failed
}

// Stats returns counters. Only safe to call after Run has returned.
func (r *Renderer) Stats() Stats {
	return Stats{Frames: r.frames, Cells: r.cells}
}

// Start runs r on its own goroutine. errc must be buffered or drained by
// the caller. The returned channel yields Run's result once frames is
// closed and fully consumed.
func (r *Renderer) Start(frames <-chan core.Frame, errc chan<- error) <-chan error {
	done := make(chan error, 1)
	go func() {
		done <- r.Run(frames, errc)
		close(done)
	}()
	return done
}
