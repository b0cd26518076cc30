// kingdom-quest-server serves the game over SSH. Every connection plays its
// own adventure; all of them share one leaderboard. Build:
//
//	go build -o kingdom-quest-server ./cmd/server
//
// Usage:
//
//	./kingdom-quest-server [--port 2222] [--key server_host_key]
//
// Connect with:
//
//	ssh -t -p 2222 yourname@localhost
package main

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"
	"unicode"
	"unicode/utf8"

	gossh "github.com/gliderlabs/ssh"
	xssh "golang.org/x/crypto/ssh"

	"kingdom-quest/internal/app"
	"kingdom-quest/internal/config"
	"kingdom-quest/internal/game"
	internalssh "kingdom-quest/internal/ssh"
)

// maxNameBytes bounds the player name shown on the leaderboard.
const maxNameBytes = 16

// allowedTerms lists the TERM values a client may select. Anything else
// falls back to defaultTerm.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"rxvt-unicode-256color": true,
}

const defaultTerm = "xterm-256color"

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Exitf("config: %v", err)
	}
	port := flag.Int("port", cfg.SSHPort, "SSH server port")
	keyFile := flag.String("key", cfg.HostKeyPath, "Path to the PEM-encoded host key (auto-generated if absent)")
	flag.Parse()

	logger := app.NewLogger(os.Stderr, cfg.LogLevel)
	slog.SetDefault(logger)

	if err := run(cfg, fmt.Sprintf(":%d", *port), *keyFile, logger); err != nil {
		config.Exitf("%v", err)
	}
}

// run serves until interrupted. Every error is returned so the store is
// closed before the process exits.
func run(cfg config.Config, addr, keyFile string, logger *slog.Logger) error {
	a, err := app.New(cfg, logger)
	if err != nil {
		return fmt.Errorf("start: %w", err)
	}
	defer func() {
		if err := a.Close(); err != nil {
			logger.Warn("closing store", "error", err)
		}
	}()

	signer, err := loadOrCreateHostKey(keyFile, logger)
	if err != nil {
		return fmt.Errorf("host key: %w", err)
	}

	srv := &gossh.Server{
		Addr: addr,
		Handler: func(s gossh.Session) {
			handleSession(s, a, logger)
		},
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// Any username is accepted and becomes the player name.
		HostSigners: []gossh.Signer{signer},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("ssh server listening", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, gossh.ErrServerClosed) {
		return fmt.Errorf("ssh server: %w", err)
	}
	return nil
}

// handleSession is the gliderlabs SSH handler for one connection.
// It blocks for the duration of the game so the SSH session stays open.
func handleSession(s gossh.Session, a *app.App, logger *slog.Logger) {
	pty, winCh, hasPTY := s.Pty()
	if !hasPTY {
		fmt.Fprintln(s, "This game requires a PTY. Connect with: ssh -t -p <port> <host>")
		return
	}

	term := pty.Term
	if !allowedTerms[term] {
		term = defaultTerm
	}
	name := sanitizeName(s.User())
	log := logger.With("remote", s.RemoteAddr().String(), "player", name)

	screen, err := internalssh.NewScreen(s, pty, winCh, term)
	if err != nil {
		log.Warn("session rejected", "error", err)
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}

	log.Info("session started", "term", term)
	game.New(screen, a, name).Run(s.Context())
	log.Info("session ended")
}

// sanitizeName strips control characters and truncates to maxNameBytes
// without splitting a rune.
func sanitizeName(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if unicode.IsControl(r) || r == utf8.RuneError {
			continue
		}
		if b.Len()+utf8.RuneLen(r) > maxNameBytes {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string, logger *slog.Logger) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			logger.Info("loaded host key", "path", path)
			return signer, nil
		}
	}

	logger.Info("generating new ed25519 host key", "path", path)
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	// Persist for next run (non-fatal if it fails).
	if pemBlock, err := xssh.MarshalPrivateKey(key, "kingdom-quest server"); err == nil {
		if err := os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0o600); err != nil {
			logger.Warn("host key not saved", "path", path, "error", err)
		}
	}
	return signer, nil
}
