// Package config provides YAML-based configuration loading for the
// platform side of the game: logging, audio, terminal device, key
// bindings, colours and the SSH server. Gameplay constants live in core.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/term-invaders/internal/core"
)

// Output devices.
const (
	DeviceTcell = "tcell"
	DeviceANSI  = "ansi"
)

var (
	// ErrUnknownDevice is returned for a render.device other than tcell or ansi.
	ErrUnknownDevice = errors.New("config: unknown render device")
	// ErrDuplicateKey is returned when one key is bound to two intents.
	ErrDuplicateKey = errors.New("config: key bound twice")
	// ErrMissingKeys is returned when an intent has no keys.
	ErrMissingKeys = errors.New("config: intent has no keys")
)

// Config contains the whole configuration file.
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Audio  AudioConfig  `yaml:"audio"`
	Render RenderConfig `yaml:"render"`
	Keys   KeysConfig   `yaml:"keys"`
	Theme  ThemeConfig  `yaml:"theme"`
	Server ServerConfig `yaml:"server"`
}

// LogConfig defines where logs go.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// AudioConfig defines sound cue playback.
type AudioConfig struct {
	Enabled      bool          `yaml:"enabled"`
	Volume       float64       `yaml:"volume"`
	SoundsDir    string        `yaml:"sounds_dir"`
	DrainTimeout time.Duration `yaml:"drain_timeout"`
}

// RenderConfig defines the output device and loop pacing.
type RenderConfig struct {
	Device string        `yaml:"device"`
	Idle   time.Duration `yaml:"idle"`
}

// KeysConfig lists key names per intent. Names follow Bubble Tea's
// KeyMsg.String(): "left", "enter", " ", "ctrl+c", "q".
type KeysConfig struct {
	Left  []string `yaml:"left"`
	Right []string `yaml:"right"`
	Fire  []string `yaml:"fire"`
	Quit  []string `yaml:"quit"`
}

// ThemeConfig holds ANSI 256-colour codes per glyph role.
type ThemeConfig struct {
	Ship    string `yaml:"ship"`
	Shot    string `yaml:"shot"`
	Blast   string `yaml:"blast"`
	Invader string `yaml:"invader"`
	Border  string `yaml:"border"`
}

// ServerConfig defines the SSH server.
type ServerConfig struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// For returns the keys bound to an intent.
func (k KeysConfig) For(i core.Intent) []string {
	switch i {
	case core.IntentMoveLeft:
		return k.Left
	case core.IntentMoveRight:
		return k.Right
	case core.IntentFire:
		return k.Fire
	case core.IntentQuit:
		return k.Quit
	default:
		return nil
	}
}

// Color returns the colour code for a role, or "" for the terminal default.
func (t ThemeConfig) Color(r core.Role) string {
	switch r {
	case core.RoleShip:
		return t.Ship
	case core.RoleShot:
		return t.Shot
	case core.RoleBlast:
		return t.Blast
	case core.RoleInvader:
		return t.Invader
	case core.RoleBorder:
		return t.Border
	default:
		return ""
	}
}

// Validate checks values the loader cannot express in YAML types.
func (c Config) Validate() error {
	switch c.Render.Device {
	case DeviceTcell, DeviceANSI:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDevice, c.Render.Device)
	}

	if c.Render.Idle < 0 {
		return fmt.Errorf("config: render.idle must not be negative, got %s", c.Render.Idle)
	}
	if c.Audio.Volume < 0 {
		return fmt.Errorf("config: audio.volume must not be negative, got %g", c.Audio.Volume)
	}

	seen := make(map[string]core.Intent)
	for _, intent := range core.Intents {
		keys := c.Keys.For(intent)
		if len(keys) == 0 {
			return fmt.Errorf("%w: %s", ErrMissingKeys, intent)
		}
		for _, k := range keys {
			if prev, ok := seen[k]; ok {
				return fmt.Errorf("%w: %q (%s and %s)", ErrDuplicateKey, k, prev, intent)
			}
			seen[k] = intent
		}
	}
	return nil
}
