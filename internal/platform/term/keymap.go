package term

import (
	"github.com/vovakirdan/term-invaders/internal/config"
	"github.com/vovakirdan/term-invaders/internal/core"
)

// KeyMap translates key names to intents. Key names follow Bubble Tea's
// KeyMsg.String() so the same bindings serve every input source.
type KeyMap struct {
	byKey map[string]core.Intent
}

// NewKeyMap builds a key map from configured bindings.
func NewKeyMap(keys config.KeysConfig) *KeyMap {
	km := &KeyMap{byKey: make(map[string]core.Intent)}
	for _, intent := range core.Intents {
		for _, k := range keys.For(intent) {
			km.byKey[k] = intent
		}
	}
	return km
}

// Lookup returns the intent bound to a key, or IntentNone.
func (km *KeyMap) Lookup(key string) core.Intent {
	return km.byKey[key]
}
