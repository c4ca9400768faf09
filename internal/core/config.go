package core

import "time"

// Playfield dimensions in terminal cells. Fixed for the process lifetime.
const (
	Width  = 40
	Height = 20
)

// PlayerRow is the row the ship lives on; an invader reaching it ends the game.
const PlayerRow = Height - 1

// Gameplay timings. These are not configurable.
const (
	ShotCooldown     = 250 * time.Millisecond // minimum gap between two successful shots
	ShotStep         = 50 * time.Millisecond  // a projectile climbs one row per step
	BlastDuration    = 250 * time.Millisecond // how long a hit stays on screen
	BaseMoveInterval = 2000 * time.Millisecond
	MinMoveInterval  = 250 * time.Millisecond
	IdleSleep        = time.Millisecond // default pause between ticks
)

// Outcome describes how a session ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeQuit
	OutcomeWon
	OutcomeLost
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeQuit:
		return "quit"
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "unknown"
	}
}
