package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/term-invaders/internal/config"
	"github.com/vovakirdan/term-invaders/internal/core"
)

// KeyMap holds the configured bindings as Bubble Tea key bindings.
type KeyMap struct {
	Left  key.Binding
	Right key.Binding
	Fire  key.Binding
	Quit  key.Binding
}

// NewKeyMap builds bindings from the keys section of the config.
func NewKeyMap(keys config.KeysConfig) KeyMap {
	return KeyMap{
		Left:  binding(keys, core.IntentMoveLeft, "move left"),
		Right: binding(keys, core.IntentMoveRight, "move right"),
		Fire:  binding(keys, core.IntentFire, "fire"),
		Quit:  binding(keys, core.IntentQuit, "quit"),
	}
}

func binding(keys config.KeysConfig, intent core.Intent, desc string) key.Binding {
	names := keys.For(intent)
	return key.NewBinding(
		key.WithKeys(names...),
		key.WithHelp(HelpKeys(names), desc),
	)
}

// HelpKeys formats key names for display: "left/h/a", "space/enter".
func HelpKeys(names []string) string {
	shown := make([]string, len(names))
	for i, n := range names {
		if n == " " {
			n = "space"
		}
		shown[i] = n
	}
	return strings.Join(shown, "/")
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Fire, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.Fire, k.Quit},
	}
}
