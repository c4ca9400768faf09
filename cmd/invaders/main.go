// invaders is a space-invaders game for the terminal.
//
// Usage:
//
//	invaders                 - Play (same as "invaders play")
//	invaders play            - Play in this terminal
//	invaders serve           - Start SSH server for remote play
//	invaders keys            - Show key bindings
//	invaders config          - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.invaders/config.yaml)
//	--log-level <level> - Override log.level from the config
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/term-invaders/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Term Invaders - shoot down the fleet before it lands",
	Long: `Term Invaders is a space-invaders game played in the terminal.

Available commands:
  play     - Play in this terminal (default)
  serve    - Start SSH server for remote play
  keys     - Show key bindings
  config   - Print the effective configuration

Examples:
  invaders
  invaders play --no-title
  invaders play --device ansi
  invaders serve
  invaders config > ~/.invaders/config.yaml`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the config file and applies global flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	return cfg, nil
}

// newLogger opens the log file from cfg, or discards logs when none is set.
// The terminal belongs to the game while it runs.
func newLogger(cfg config.LogConfig) (*log.Logger, func(), error) {
	var w io.Writer = io.Discard
	closeFn := func() {}

	if cfg.File != "" {
		f, err := os.OpenFile(config.ExpandHome(cfg.File), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "invaders",
	})
	lvl, err := log.ParseLevel(cfg.Level)
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	logger.SetLevel(lvl)

	return logger, closeFn, nil
}
