package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/keygen"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/charmbracelet/wish/logging"

	"github.com/benbeisheim/chess-backend/internal/config"
	chesslog "github.com/benbeisheim/chess-backend/internal/logging"
	"github.com/benbeisheim/chess-backend/internal/tui"
)

// Usage:
//
//	chessterm              play at this terminal
//	chessterm serve [-ssh-addr :2222] [-host-key path] [-log-level info]
func main() {
	if len(os.Args) < 2 || os.Args[1] != "serve" {
		p := tea.NewProgram(tui.New(nil), tea.WithAltScreen(), tea.WithMouseCellMotion())
		if _, err := p.Run(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	cfg, err := config.Load("chessterm serve", os.Args[2:], os.Getenv)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger, err := chesslog.New(cfg.LogLevel, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := runSSH(cfg, logger); err != nil {
		logger.Fatal("ssh server", "err", err)
	}
}

func runSSH(cfg config.Config, logger *log.Logger) error {
	if err := ensureHostKey(cfg.HostKeyPath, logger); err != nil {
		return err
	}

	s, err := wish.NewServer(
		wish.WithAddress(cfg.SSHAddr),
		wish.WithHostKeyPath(cfg.HostKeyPath),
		wish.WithMiddleware(
			bubbletea.Middleware(teaHandler),
			logging.MiddlewareWithLogger(logger),
		),
	)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	errs := make(chan error, 1)
	go func() {
		logger.Info("starting SSH chess server", "addr", cfg.SSHAddr)
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errs <- err
		}
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}
	logger.Info("stopping SSH server")

	tctx, tcancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
	defer tcancel()
	return s.Shutdown(tctx)
}

func ensureHostKey(path string, logger *log.Logger) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("host key dir: %w", err)
	}
	logger.Info("generating SSH host key", "path", path)
	if _, err := keygen.New(path, keygen.WithKeyType(keygen.Ed25519), keygen.WithWrite()); err != nil {
		return fmt.Errorf("host key: %w", err)
	}
	return nil
}

// Each SSH session gets its own hot-seat game.
func teaHandler(s ssh.Session) (tea.Model, []tea.ProgramOption) {
	return tui.New(bubbletea.MakeRenderer(s)), []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}
}
