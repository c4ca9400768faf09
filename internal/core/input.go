package core

// Intent is a discrete player request, abstracted from physical key presses.
type Intent int

const (
	IntentNone      Intent = iota
	IntentMoveLeft         // Left arrow, h, a
	IntentMoveRight        // Right arrow, l, d
	IntentFire             // Space, Enter
	IntentQuit             // q, Esc, Ctrl+C
)

// Intents lists every actionable intent in display order.
var Intents = []Intent{IntentMoveLeft, IntentMoveRight, IntentFire, IntentQuit}

// String returns the config key for the intent.
func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "none"
	case IntentMoveLeft:
		return "left"
	case IntentMoveRight:
		return "right"
	case IntentFire:
		return "fire"
	case IntentQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// ParseIntent is the inverse of Intent.String.
func ParseIntent(s string) (Intent, bool) {
	for _, i := range Intents {
		if i.String() == s {
			return i, true
		}
	}
	return IntentNone, false
}
