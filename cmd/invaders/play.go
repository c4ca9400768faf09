package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/term-invaders/internal/audio"
	"github.com/vovakirdan/term-invaders/internal/config"
	"github.com/vovakirdan/term-invaders/internal/core"
	"github.com/vovakirdan/term-invaders/internal/engine"
	"github.com/vovakirdan/term-invaders/internal/platform/term"
	"github.com/vovakirdan/term-invaders/internal/platform/tui"
)

var (
	flagNoTitle bool
	flagDevice  string
	flagMute    bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls (default bindings, see 'invaders keys'):
  Left/H/A       - Move left
  Right/L/D      - Move right
  Space/Enter    - Fire
  Q/Esc/Ctrl+C   - Quit

Devices:
  tcell  - Full-screen tcell screen (default)
  ansi   - Raw-mode stdin with plain ANSI output

Examples:
  invaders play
  invaders play --no-title
  invaders play --device ansi --mute`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&flagNoTitle, "no-title", false, "Skip the title screen")
	cmd.Flags().StringVar(&flagDevice, "device", "", "Output device: tcell or ansi (overrides render.device)")
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(_ *cobra.Command, _ []string) {
	outcome, err := play()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if outcome != core.OutcomeNone {
		fmt.Println(tui.RenderOutcome(outcome))
	}
}

func play() (core.Outcome, error) {
	cfg, err := loadConfig()
	if err != nil {
		return core.OutcomeNone, err
	}
	if flagDevice != "" {
		cfg.Render.Device = flagDevice
		if err := cfg.Validate(); err != nil {
			return core.OutcomeNone, err
		}
	}
	if flagMute {
		cfg.Audio.Enabled = false
	}

	logger, closeLog, err := newLogger(cfg.Log)
	if err != nil {
		return core.OutcomeNone, err
	}
	defer closeLog()

	if !flagNoTitle {
		start, err := tui.RunTitle(os.Stdin, os.Stdout, cfg)
		if err != nil {
			return core.OutcomeNone, err
		}
		if !start {
			return core.OutcomeNone, nil
		}
	}

	sink, closeAudio := openAudio(cfg.Audio, logger)
	defer closeAudio()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := engine.Options{
		Audio:  sink,
		Logger: logger,
		Idle:   cfg.Render.Idle,
	}
	keys := term.NewKeyMap(cfg.Keys)

	if cfg.Render.Device == config.DeviceANSI {
		return playANSI(ctx, cfg, keys, opts)
	}
	return playTcell(ctx, cfg, keys, opts)
}

func playTcell(ctx context.Context, cfg config.Config, keys *term.KeyMap, opts engine.Options) (core.Outcome, error) {
	screen, err := term.OpenScreen(cfg.Theme)
	if err != nil {
		return core.OutcomeNone, err
	}
	defer screen.Close()

	opts.Input = screen.Input(keys)
	opts.Device = screen
	res, err := engine.New(opts).Run(ctx)
	return res.Outcome, err
}

func playANSI(ctx context.Context, cfg config.Config, keys *term.KeyMap, opts engine.Options) (core.Outcome, error) {
	restore, err := term.RawMode(os.Stdin)
	if err != nil {
		return core.OutcomeNone, err
	}
	//nolint:errcheck // Best-effort restore on exit
	defer restore()

	dev := term.NewStream(os.Stdout, cfg.Theme, termenv.EnvColorProfile())
	if err := dev.Open(); err != nil {
		return core.OutcomeNone, err
	}
	//nolint:errcheck // Best-effort restore on exit
	defer dev.Close()

	in := term.NewStreamInput(os.Stdin, keys)
	defer in.Close()

	opts.Input = in
	opts.Device = dev
	res, err := engine.New(opts).Run(ctx)
	return res.Outcome, err
}

// openAudio opens the speaker, falling back to silence when audio is
// disabled or no device is available.
func openAudio(cfg config.AudioConfig, logger *log.Logger) (audio.Sink, func()) {
	if !cfg.Enabled {
		return audio.Silent{}, func() {}
	}

	spk, err := audio.NewSpeaker(audio.Options{
		SoundsDir:    config.ExpandHome(cfg.SoundsDir),
		Volume:       cfg.Volume,
		DrainTimeout: cfg.DrainTimeout,
	}, logger)
	if err != nil {
		logger.Warn("audio disabled", "error", err)
		return audio.Silent{}, func() {}
	}
	return spk, spk.Close
}
