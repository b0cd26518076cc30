package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir()) // no .env here

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Store != StoreFile {
		t.Errorf("Store = %q; want file", cfg.Store)
	}
	if cfg.RankThreshold != 400 || cfg.TurnCap != 1000 || cfg.BuildPoints != 20 {
		t.Errorf("unexpected numeric defaults: %+v", cfg)
	}
	if cfg.LeaderboardKey != "leaderboard" || cfg.Locale != "es" {
		t.Errorf("unexpected string defaults: %+v", cfg)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v; want info", cfg.LogLevel)
	}
	if cfg.Seed != nil {
		t.Errorf("Seed = %d; want unset", *cfg.Seed)
	}
}

func TestZeroSeedIsKept(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("KQ_SEED", "0")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Seed == nil || *cfg.Seed != 0 {
		t.Errorf("KQ_SEED=0 should fix the seed at 0, got %v", cfg.Seed)
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("KQ_STORE", "sqlite")
	t.Setenv("KQ_RANK_THRESHOLD", "250")
	t.Setenv("KQ_SEED", "42")
	t.Setenv("KQ_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Store != StoreSQLite || cfg.RankThreshold != 250 || cfg.Seed == nil || *cfg.Seed != 42 {
		t.Errorf("env not applied: %+v", cfg)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v; want debug", cfg.LogLevel)
	}
}

func TestLoadDotenvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.env")
	if err := os.WriteFile(path, []byte("KQ_STARTING_CURRENCY=99\nKQ_LOCALE=en\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		os.Unsetenv("KQ_STARTING_CURRENCY")
		os.Unsetenv("KQ_LOCALE")
	})

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.StartingCurrency != 99 || cfg.Locale != "en" {
		t.Errorf("dotenv not applied: %+v", cfg)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"KQ_STORE":             "redis",
		"KQ_TURN_CAP":          "0",
		"KQ_STARTING_CURRENCY": "-5",
		"KQ_SSH_PORT":          "70000",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Chdir(t.TempDir())
			t.Setenv(key, value)
			if _, err := Load(); err == nil {
				t.Errorf("%s=%s should be rejected", key, value)
			}
		})
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg Config
	t.Setenv("KQ_TURN_CAP", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestResolvePaths(t *testing.T) {
	cfg := Config{}
	dir, err := cfg.ResolveDataDir(func() (string, error) { return "/xdg/kq", nil })
	if err != nil || dir != "/xdg/kq" {
		t.Errorf("ResolveDataDir = %q, %v", dir, err)
	}
	if got := cfg.ResolveSQLitePath(dir); got != filepath.Join("/xdg/kq", "kingdom-quest.db") {
		t.Errorf("ResolveSQLitePath = %q", got)
	}

	cfg = Config{DataDir: "/custom", SQLitePath: "/db/x.db"}
	dir, _ = cfg.ResolveDataDir(func() (string, error) { return "", errors.New("unused") })
	if dir != "/custom" || cfg.ResolveSQLitePath(dir) != "/db/x.db" {
		t.Errorf("explicit paths not honoured: %q %q", dir, cfg.ResolveSQLitePath(dir))
	}
}
