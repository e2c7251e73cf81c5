package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/sixdot/dotserve/internal/utils"
	"github.com/sixdot/dotserve/pkg/suggest"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Match.DeletionCost != suggest.DefaultDeletionCost {
		t.Errorf("deletion cost = %d, want %d", cfg.Match.DeletionCost, suggest.DefaultDeletionCost)
	}
	if cfg.Match.DefaultLimit != suggest.DefaultLimit {
		t.Errorf("default limit = %d, want %d", cfg.Match.DefaultLimit, suggest.DefaultLimit)
	}
	if cfg.Server.MaxLimit < cfg.Match.DefaultLimit {
		t.Error("server max limit below the default limit")
	}
	if cfg.Server.MaxQueryCells < 1 {
		t.Error("max query cells must be positive")
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := DefaultConfig()
	cfg.Match.DeletionCost = 5
	cfg.Server.MaxQueryCells = 12
	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if loaded.Match.DeletionCost != 5 {
		t.Errorf("deletion cost = %d, want 5", loaded.Match.DeletionCost)
	}
	if loaded.Server.MaxQueryCells != 12 {
		t.Errorf("max query cells = %d, want 12", loaded.Server.MaxQueryCells)
	}
}

func TestLoadConfigMalformedFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("this is { not toml"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig should fall back, got error: %v", err)
	}
	if cfg.Match.DeletionCost != suggest.DefaultDeletionCost {
		t.Errorf("fallback deletion cost = %d, want default", cfg.Match.DeletionCost)
	}
}

func TestInitConfigCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dotserve", "config.toml")

	cfg, err := InitConfig(path)
	if err != nil {
		t.Fatalf("InitConfig: %v", err)
	}
	if cfg.Match.DeletionCost != suggest.DefaultDeletionCost {
		t.Errorf("created config has deletion cost %d", cfg.Match.DeletionCost)
	}
	if !utils.FileExists(path) {
		t.Error("InitConfig did not create the config file")
	}
}

func TestNormalizeClamps(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Match.DeletionCost = -1
	cfg.Server.MaxLimit = 0
	cfg.Server.MaxPrefix = 0
	cfg.CLI.DefaultLimit = -5
	cfg.Normalize()

	defaults := DefaultConfig()
	if cfg.Match.DeletionCost != defaults.Match.DeletionCost {
		t.Errorf("deletion cost not clamped: %d", cfg.Match.DeletionCost)
	}
	if cfg.Server.MaxLimit != defaults.Server.MaxLimit {
		t.Errorf("max limit not clamped: %d", cfg.Server.MaxLimit)
	}
	if cfg.Server.MaxPrefix < cfg.Server.MinPrefix {
		t.Error("max prefix still below min prefix")
	}
	if cfg.CLI.DefaultLimit != defaults.CLI.DefaultLimit {
		t.Errorf("cli limit not clamped: %d", cfg.CLI.DefaultLimit)
	}
}

func TestUpdate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := DefaultConfig()

	maxLimit := 32
	cost := 4
	if err := cfg.Update(path, &maxLimit, &cost, nil); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if cfg.Server.MaxLimit != 32 || cfg.Match.DeletionCost != 4 {
		t.Errorf("update not applied: %+v", cfg)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if loaded.Server.MaxLimit != 32 || loaded.Match.DeletionCost != 4 {
		t.Errorf("update not persisted: %+v", loaded)
	}
}
