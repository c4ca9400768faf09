package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/term-invaders/internal/audio"
	"github.com/vovakirdan/term-invaders/internal/config"
	"github.com/vovakirdan/term-invaders/internal/engine"
	"github.com/vovakirdan/term-invaders/internal/platform/term"
)

// ErrNoPTY is reported to clients that connect without a terminal.
var ErrNoPTY = errors.New("tui: a terminal is required, connect with ssh -t")

// SSHServer wraps a Wish SSH server. Every session plays its own game
// with an ANSI device and key reader on the session channel. Sessions
// have no audio.
type SSHServer struct {
	config config.Config
	keys   *term.KeyMap
	server *ssh.Server
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg config.Config) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "invaders-ssh",
	})
	if lvl, err := log.ParseLevel(cfg.Log.Level); err == nil {
		logger.SetLevel(lvl)
	}

	srv := &SSHServer{
		config: cfg,
		keys:   term.NewKeyMap(cfg.Keys),
		logger: logger,
	}

	hostKeyPath, err := resolveHostKey(cfg.Server.HostKey)
	if err != nil {
		return nil, err
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Server.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.Server.IdleTimeout),
		wish.WithMiddleware(
			srv.gameMiddleware,
			activeterm.Middleware(),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		return nil, fmt.Errorf("tui: cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// resolveHostKey defaults to ~/.invaders/host_key and makes sure its
// directory exists. Wish generates the key on first use.
func resolveHostKey(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("tui: cannot get home directory: %w", err)
		}
		path = filepath.Join(home, ".invaders", "host_key")
	}
	path = config.ExpandHome(path)

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("tui: cannot create host key directory: %w", err)
	}
	return path, nil
}

// gameMiddleware runs one game on the session.
func (s *SSHServer) gameMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, winCh, ok := sess.Pty()
		if !ok {
			wish.Fatalln(sess, ErrNoPTY)
			return
		}
		if err := term.CheckSize(pty.Window.Width, pty.Window.Height); err != nil {
			wish.Fatalln(sess, err)
			return
		}
		go func() {
			for range winCh {
			}
		}()

		logger := s.logger.With("user", sess.User())
		res, err := s.play(sess.Context(), sess, logger)
		if err != nil {
			logger.Warn("game aborted", "error", err)
		} else {
			wish.Println(sess, RenderOutcome(res.Outcome))
		}

		next(sess)
	}
}

// play runs a game until it ends or the client goes away.
func (s *SSHServer) play(ctx context.Context, sess ssh.Session, logger *log.Logger) (engine.Result, error) {
	dev := term.NewStream(sess, s.config.Theme, termenv.ANSI256)
	if err := dev.Open(); err != nil {
		return engine.Result{}, err
	}
	//nolint:errcheck // Best-effort restore, the client may be gone
	defer dev.Close()

	in := term.NewStreamInput(sess, s.keys)
	defer in.Close()

	eng := engine.New(engine.Options{
		Input:  in,
		Device: dev,
		Audio:  audio.Silent{},
		Logger: logger,
		Idle:   s.config.Render.Idle,
	})
	return eng.Run(ctx)
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		s.logger.Info("session started",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
		)
		next(sess)
		s.logger.Info("session ended",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Server.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errc := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errc <- err
		}
	}()

	select {
	case <-done:
	case err := <-errc:
		s.logger.Error("server error", "error", err)
		return fmt.Errorf("tui: serve: %w", err)
	}

	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Server.Address
}
