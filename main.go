// kingdom-quest runs the game in the local terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"os/user"
	"path/filepath"

	"github.com/gdamore/tcell/v2"

	"kingdom-quest/internal/app"
	"kingdom-quest/internal/config"
	"kingdom-quest/internal/game"
	"kingdom-quest/internal/storage/jsonfile"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Exitf("config: %v", err)
	}
	name := flag.String("name", defaultName(), "Player name shown on the leaderboard")
	flag.Parse()

	if err := run(cfg, *name); err != nil {
		config.Exitf("%v", err)
	}
	fmt.Println("Farewell, hero.")
}

func run(cfg config.Config, name string) error {
	// The screen owns stdout, so logs go to a file next to the leaderboard.
	dataDir, err := cfg.ResolveDataDir(jsonfile.DefaultDir)
	if err != nil {
		return fmt.Errorf("data dir: %w", err)
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("data dir: %w", err)
	}
	logFile, err := os.OpenFile(filepath.Join(dataDir, "kingdom-quest.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("log file: %w", err)
	}
	defer logFile.Close()
	logger := app.NewLogger(logFile, cfg.LogLevel)

	cfg.DataDir = dataDir
	a, err := app.New(cfg, logger)
	if err != nil {
		return fmt.Errorf("start: %w", err)
	}
	defer a.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	game.New(screen, a, name).Run(ctx)
	return nil
}

func defaultName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "Hunter"
}
