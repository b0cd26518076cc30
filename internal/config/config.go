// Package config loads runtime settings from the environment, optionally
// seeded from a .env file in the working directory.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Store backends.
const (
	StoreFile   = "file"
	StoreSQLite = "sqlite"
	StoreMemory = "memory"
)

// Config holds every KQ_* setting.
type Config struct {
	DataDir        string     `env:"KQ_DATA_DIR"`
	Store          string     `env:"KQ_STORE" envDefault:"file"`
	SQLitePath     string     `env:"KQ_SQLITE_PATH"`
	LeaderboardKey string     `env:"KQ_LEADERBOARD_KEY" envDefault:"leaderboard"`
	GameDataPath   string     `env:"KQ_GAME_DATA"`
	Locale         string     `env:"KQ_LOCALE" envDefault:"es"`
	LogLevel       slog.Level `env:"KQ_LOG_LEVEL" envDefault:"info"`

	RankThreshold    int    `env:"KQ_RANK_THRESHOLD" envDefault:"400"`
	LegendTier       bool   `env:"KQ_LEGEND_TIER" envDefault:"false"`
	StartingCurrency int    `env:"KQ_STARTING_CURRENCY" envDefault:"60"`
	BuildPoints      int    `env:"KQ_BUILD_POINTS" envDefault:"20"`
	TurnCap          int    `env:"KQ_TURN_CAP" envDefault:"1000"`
	Seed             *int64 `env:"KQ_SEED"` // unset draws a fresh seed per adventure

	SSHPort     int    `env:"KQ_SSH_PORT" envDefault:"2222"`
	HostKeyPath string `env:"KQ_HOST_KEY" envDefault:"server_host_key"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads .env files (missing ones are skipped), parses the environment
// and validates the result. Variables already set take precedence over .env.
func Load(dotenvFiles ...string) (Config, error) {
	if len(dotenvFiles) == 0 {
		dotenvFiles = []string{".env"}
	}
	for _, f := range dotenvFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the game cannot run with.
func (c Config) Validate() error {
	switch c.Store {
	case StoreFile, StoreSQLite, StoreMemory:
	default:
		return fmt.Errorf("KQ_STORE must be %q, %q or %q, got %q", StoreFile, StoreSQLite, StoreMemory, c.Store)
	}
	if c.StartingCurrency < 0 {
		return fmt.Errorf("KQ_STARTING_CURRENCY must not be negative, got %d", c.StartingCurrency)
	}
	if c.BuildPoints < 0 {
		return fmt.Errorf("KQ_BUILD_POINTS must not be negative, got %d", c.BuildPoints)
	}
	if c.TurnCap <= 0 {
		return fmt.Errorf("KQ_TURN_CAP must be positive, got %d", c.TurnCap)
	}
	if c.SSHPort <= 0 || c.SSHPort > 65535 {
		return fmt.Errorf("KQ_SSH_PORT out of range: %d", c.SSHPort)
	}
	return nil
}

// ResolveDataDir returns DataDir, or the XDG default when it is unset.
func (c Config) ResolveDataDir(defaultDir func() (string, error)) (string, error) {
	if c.DataDir != "" {
		return c.DataDir, nil
	}
	return defaultDir()
}

// ResolveSQLitePath returns SQLitePath, or kingdom-quest.db inside dataDir.
func (c Config) ResolveSQLitePath(dataDir string) string {
	if c.SQLitePath != "" {
		return c.SQLitePath
	}
	return filepath.Join(dataDir, "kingdom-quest.db")
}

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
