package main

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/term-invaders/internal/config"
)

func TestKeysTable(t *testing.T) {
	out := keysTable(config.Default().Keys)

	for _, want := range []string{"Action", "left", "left/h/a", "fire", "space/enter", "quit"} {
		if !strings.Contains(out, want) {
			t.Errorf("keys table missing %q:\n%s", want, out)
		}
	}
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.LogConfig
		wantErr bool
	}{
		{"discard", config.LogConfig{Level: "info"}, false},
		{"file", config.LogConfig{Level: "debug", File: filepath.Join(t.TempDir(), "invaders.log")}, false},
		{"bad level", config.LogConfig{Level: "loud"}, true},
		{"bad file", config.LogConfig{Level: "info", File: filepath.Join(t.TempDir(), "missing", "x.log")}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, closeFn, err := newLogger(tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("newLogger() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				logger.Info("hello")
				closeFn()
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	flagConfig = filepath.Join(t.TempDir(), "missing.yaml")
	defer func() { flagConfig = "" }()
	if _, err := loadConfig(); err == nil {
		t.Error("loadConfig() with missing --config should fail")
	}
}

func TestOpenAudioDisabled(t *testing.T) {
	logger, closeLog, err := newLogger(config.LogConfig{Level: "info"})
	if err != nil {
		t.Fatal(err)
	}
	defer closeLog()

	sink, closeAudio := openAudio(config.AudioConfig{Enabled: false}, logger)
	defer closeAudio()

	sink.Play(0)
	sink.Wait()
}
