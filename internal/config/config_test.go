package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/term-invaders/internal/core"
)

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg := Default()
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("Embedded YAML does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("Embedded YAML and Default() disagree:\n%+v\n%+v", cfg, Default())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config is invalid: %v", err)
	}
}

func TestLoadCustomPathKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("render:\n  device: ansi\n  idle: 5ms\naudio:\n  enabled: false\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Render.Device != DeviceANSI || cfg.Render.Idle != 5*time.Millisecond {
		t.Errorf("Render = %+v", cfg.Render)
	}
	if cfg.Audio.Enabled {
		t.Error("audio.enabled should be false")
	}
	if !reflect.DeepEqual(cfg.Keys, Default().Keys) {
		t.Errorf("Keys should keep defaults, got %+v", cfg.Keys)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Expected an error for a missing custom config")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"unknown device", func(c *Config) { c.Render.Device = "opengl" }, ErrUnknownDevice},
		{"no fire keys", func(c *Config) { c.Keys.Fire = nil }, ErrMissingKeys},
		{"key bound twice", func(c *Config) { c.Keys.Quit = append(c.Keys.Quit, "h") }, ErrDuplicateKey},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tc.want) {
				t.Errorf("Validate() = %v, expected %v", err, tc.want)
			}
		})
	}

	cfg := Default()
	cfg.Render.Idle = -time.Millisecond
	if err := cfg.Validate(); err == nil {
		t.Error("Negative idle should be rejected")
	}
}

func TestKeysFor(t *testing.T) {
	keys := Default().Keys
	for _, intent := range core.Intents {
		if len(keys.For(intent)) == 0 {
			t.Errorf("No keys for %v", intent)
		}
	}
	if keys.For(core.IntentNone) != nil {
		t.Error("IntentNone should have no keys")
	}
}

func TestThemeColor(t *testing.T) {
	theme := Default().Theme
	if theme.Color(core.RoleShip) != "10" {
		t.Errorf("Ship colour = %q", theme.Color(core.RoleShip))
	}
	if theme.Color(core.RoleNone) != "" {
		t.Error("RoleNone should use the terminal default")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	out, err := Marshal(Default())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(out, &cfg); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("Round trip changed config:\n%s", out)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got := ExpandHome("~/x/y"); got != filepath.Join(home, "x", "y") {
		t.Errorf("ExpandHome = %q", got)
	}
	if got := ExpandHome("/abs"); got != "/abs" {
		t.Errorf("Absolute paths should be unchanged, got %q", got)
	}
}
