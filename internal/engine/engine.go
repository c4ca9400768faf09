// Package engine runs one game session: it polls input, advances the
// player and the fleet, and hands each frame to a renderer goroutine.
package engine

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/term-invaders/internal/audio"
	"github.com/vovakirdan/term-invaders/internal/core"
	"github.com/vovakirdan/term-invaders/internal/games/invaders"
	"github.com/vovakirdan/term-invaders/internal/render"
)

// DefaultFrameBuffer is the capacity of the frame channel.
const DefaultFrameBuffer = 8

// InputSource yields the intents received since the last poll.
// Poll must not block.
type InputSource interface {
	Poll() ([]core.Intent, error)
}

// Options configures an Engine. Input and Device are required.
type Options struct {
	Input  InputSource
	Device render.Device
	Audio  audio.Sink  // defaults to audio.Silent
	Logger *log.Logger // defaults to discarding

	// Idle is the pause after every tick. Zero means no pause.
	Idle time.Duration
	// FrameBuffer is the frame channel capacity. A full channel blocks the
	// game loop until the renderer catches up.
	FrameBuffer int

	// Player and Fleet replace the starting entities when set.
	Player *invaders.Player
	Fleet  *invaders.Fleet

	// Now replaces time.Now.
	Now func() time.Time
}

// Result describes a finished session.
type Result struct {
	Outcome core.Outcome
	Ticks   uint64
	Frames  int // frames sent to the renderer
	Render  render.Stats
}

// Engine owns the game state of one session.
type Engine struct {
	input  InputSource
	dev    render.Device
	sink   audio.Sink
	logger *log.Logger
	idle   time.Duration
	buffer int
	now    func() time.Time

	player *invaders.Player
	fleet  *invaders.Fleet

	tick   uint64
	frames int
	last   core.Frame // most recent frame sent
}

// New creates an engine with a fresh player and fleet unless opts carries them.
func New(opts Options) *Engine {
	e := &Engine{
		input:  opts.Input,
		dev:    opts.Device,
		sink:   opts.Audio,
		logger: opts.Logger,
		idle:   opts.Idle,
		buffer: opts.FrameBuffer,
		now:    opts.Now,
		player: opts.Player,
		fleet:  opts.Fleet,
	}
	if e.sink == nil {
		e.sink = audio.Silent{}
	}
	if e.logger == nil {
		e.logger = log.New(io.Discard)
	}
	if e.buffer <= 0 {
		e.buffer = DefaultFrameBuffer
	}
	if e.now == nil {
		e.now = time.Now
	}
	if e.player == nil {
		e.player = invaders.NewPlayer()
	}
	if e.fleet == nil {
		e.fleet = invaders.NewFleet()
	}
	return e
}

// Snapshot returns the current game state. Not safe during Run.
func (e *Engine) Snapshot() invaders.Snapshot {
	return invaders.TakeSnapshot(e.player, e.fleet)
}

// Run plays until the player quits, the game is won or lost, ctx is
// cancelled, or input or rendering fails. Before returning it waits for
// the renderer to drain every frame and then for queued audio.
func (e *Engine) Run(ctx context.Context) (Result, error) {
	e.logger.Info("session started", "invaders", e.fleet.Len())
	e.sink.Play(audio.CueStartup)

	frames := make(chan core.Frame, e.buffer)
	errc := make(chan error, 1)
	r := render.New(e.dev, e.logger)
	done := r.Start(frames, errc)

	outcome, err := e.loop(ctx, frames, errc)

	close(frames)
	if renderErr := <-done; err == nil && renderErr != nil {
		err = renderErr
	}
	e.sink.Wait()

	e.logState()

	res := Result{
		Outcome: outcome,
		Ticks:   e.tick,
		Frames:  e.frames,
		Render:  r.Stats(),
	}
	if err != nil {
		e.logger.Error("session failed", "ticks", e.tick, "error", err)
		return res, err
	}
	e.logger.Info("session ended", "outcome", outcome, "ticks", e.tick, "cells", res.Render.Cells)
	return res, nil
}

func (e *Engine) loop(ctx context.Context, frames chan<- core.Frame, errc <-chan error) (core.Outcome, error) {
	last := e.now()

	for {
		if ctx.Err() != nil {
			return core.OutcomeQuit, nil
		}

		now := e.now()
		delta := now.Sub(last)
		last = now
		e.tick++

		intents, err := e.input.Poll()
		if quit := e.apply(intents); quit {
			e.sink.Play(audio.CueLose)
			return core.OutcomeQuit, nil
		}
		if err != nil {
			return core.OutcomeNone, fmt.Errorf("engine: input: %w", err)
		}

		e.player.Update(delta)
		if e.fleet.Update(delta) {
			e.sink.Play(audio.CueMove)
		}
		if e.player.DetectHits(e.fleet) {
			e.sink.Play(audio.CueExplode)
		}

		frame := core.NewFrame()
		invaders.DrawAll(&frame, e.player, e.fleet)
		e.last = frame
		frames <- frame
		e.frames++

		select {
		case err := <-errc:
			return core.OutcomeNone, err
		default:
		}

		if e.idle > 0 {
			time.Sleep(e.idle)
		}

		switch {
		case e.fleet.AllKilled():
			e.sink.Play(audio.CueWin)
			return core.OutcomeWon, nil
		case e.fleet.ReachedBottom():
			e.sink.Play(audio.CueLose)
			return core.OutcomeLost, nil
		}
	}
}

// logState dumps the final game state at debug level.
func (e *Engine) logState() {
	snap := e.Snapshot()
	e.logger.Debug("final state",
		"player_x", snap.PlayerX,
		"shots", snap.Shots,
		"invaders", snap.Invaders,
		"direction", snap.Direction,
		"interval", snap.Interval,
	)
	if e.frames > 0 {
		e.logger.Debug("final frame", "frame", e.last.String())
	}
}

// apply moves or fires for each intent and reports whether one was a quit.
func (e *Engine) apply(intents []core.Intent) bool {
	for _, in := range intents {
		switch in {
		case core.IntentMoveLeft:
			e.player.MoveLeft()
			e.sink.Play(audio.CueMove)
		case core.IntentMoveRight:
			e.player.MoveRight()
			e.sink.Play(audio.CueMove)
		case core.IntentFire:
			if e.player.Shoot() {
				e.sink.Play(audio.CuePew)
			}
		case core.IntentQuit:
			return true
		}
	}
	return false
}
