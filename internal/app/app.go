// Package app wires configuration, storage and game data into the shared
// services every player session draws from.
package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"

	"kingdom-quest/assets"
	"kingdom-quest/internal/adventure"
	"kingdom-quest/internal/character"
	"kingdom-quest/internal/combat"
	"kingdom-quest/internal/config"
	"kingdom-quest/internal/locale"
	"kingdom-quest/internal/random"
	"kingdom-quest/internal/ranking"
	"kingdom-quest/internal/storage"
	"kingdom-quest/internal/storage/jsonfile"
	"kingdom-quest/internal/storage/sqlite"
)

// App is safe to share between sessions. Adventures it creates are not.
type App struct {
	Config      config.Config
	DataDir     string
	Data        assets.GameData
	Leaderboard *ranking.Leaderboard
	Format      *locale.Formatter
	Tiers       ranking.Tiers
	Logger      *slog.Logger

	store    storage.KV
	sessions atomic.Int64
}

// NewLogger returns a text logger writing to w at the given level.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// New opens the configured store and loads game data.
func New(cfg config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}
	dataDir, err := cfg.ResolveDataDir(jsonfile.DefaultDir)
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}
	data, err := assets.LoadFile(cfg.GameDataPath)
	if err != nil {
		return nil, err
	}

	store, repo, err := openRepository(cfg, dataDir)
	if err != nil {
		return nil, err
	}
	format := locale.New(cfg.Locale)
	board := ranking.NewLeaderboard(repo,
		ranking.WithDateFormat(format.Date),
		ranking.WithLogger(logger.With("component", "leaderboard")))

	logger.Info("kingdom-quest ready", "store", cfg.Store, "data_dir", dataDir,
		"items", data.Catalog.Len(), "opponents", len(data.Roster), "locale", format.Tag())

	return &App{
		Config:      cfg,
		DataDir:     dataDir,
		Data:        data,
		Leaderboard: board,
		Format:      format,
		Tiers:       ranking.Tiers{Threshold: cfg.RankThreshold, Legend: cfg.LegendTier},
		Logger:      logger,
		store:       store,
	}, nil
}

func openRepository(cfg config.Config, dataDir string) (storage.KV, ranking.Repository, error) {
	var store storage.KV
	switch cfg.Store {
	case config.StoreMemory:
		return nil, ranking.NewMemoryRepository(), nil
	case config.StoreSQLite:
		path := cfg.ResolveSQLitePath(dataDir)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("create sqlite dir: %w", err)
		}
		s, err := sqlite.Open(path)
		if err != nil {
			return nil, nil, err
		}
		store = s
	default:
		s, err := jsonfile.Open(dataDir)
		if err != nil {
			return nil, nil, err
		}
		store = s
	}
	return store, ranking.NewKVRepository(store, cfg.LeaderboardKey), nil
}

// NewCharacter builds a character from b with the configured point budget
// and starting currency.
func (a *App) NewCharacter(b character.Build) (*character.Character, error) {
	return character.FromBuild(b, a.Config.BuildPoints, character.WithCurrency(a.Config.StartingCurrency))
}

// NewAdventure starts an adventure for c with its own random source. With a
// fixed seed every adventure replays the same rolls.
func (a *App) NewAdventure(c *character.Character) (*adventure.Adventure, error) {
	rng, err := random.New(a.Config.Seed)
	if err != nil {
		return nil, err
	}
	n := a.sessions.Add(1)
	logger := a.Logger.With("adventure", n)
	resolver := combat.NewResolver(rng, a.Config.TurnCap)
	return adventure.New(c, a.Data, resolver, a.Leaderboard, a.Tiers, logger), nil
}

// RunLogPath is where finished adventures are appended as JSON lines.
func (a *App) RunLogPath() string { return filepath.Join(a.DataDir, "runs.jsonl") }

// Close releases the store.
func (a *App) Close() error {
	if a.store == nil {
		return nil
	}
	return a.store.Close()
}
