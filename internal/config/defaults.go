package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/invaders.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches the embedded
// defaults/invaders.yaml and is used when that file cannot be parsed.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level: "info",
		},
		Audio: AudioConfig{
			Enabled:      true,
			Volume:       0.6,
			DrainTimeout: 3 * time.Second,
		},
		Render: RenderConfig{
			Device: DeviceTcell,
			Idle:   time.Millisecond,
		},
		Keys: KeysConfig{
			Left:  []string{"left", "h", "a"},
			Right: []string{"right", "l", "d"},
			Fire:  []string{" ", "enter"},
			Quit:  []string{"q", "esc", "ctrl+c"},
		},
		Theme: ThemeConfig{
			Ship:    "10",
			Shot:    "11",
			Blast:   "208",
			Invader: "9",
			Border:  "4",
		},
		Server: ServerConfig{
			Address:     ":23234",
			IdleTimeout: 10 * time.Minute,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
