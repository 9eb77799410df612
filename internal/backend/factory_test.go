package backend

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"vefa/internal/config"
)

func TestBackendTypeIsValid(t *testing.T) {
	cases := map[BackendType]bool{
		MemoryBackend: true,
		SQLiteBackend: true,
		"sheets":      false,
		"":            false,
	}
	for bt, want := range cases {
		if got := bt.IsValid(); got != want {
			t.Fatalf("%q.IsValid()=%v want %v", bt, got, want)
		}
	}
}

func TestFromAppConfig(t *testing.T) {
	if _, err := FromAppConfig(nil); err == nil {
		t.Fatalf("expected error for nil config")
	}
	if _, err := FromAppConfig(&config.Config{DataBackend: "postgres"}); !errors.Is(err, ErrUnknownBackend) {
		t.Fatalf("expected ErrUnknownBackend, got %v", err)
	}
	cfg, err := FromAppConfig(&config.Config{DataBackend: "sqlite", SQLiteDBPath: "data/vefa.db"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Type != SQLiteBackend || cfg.SQLiteDBPath != "data/vefa.db" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestConfigValidate(t *testing.T) {
	if err := (Config{Type: SQLiteBackend}).Validate(); !errors.Is(err, ErrMissingDBPath) {
		t.Fatalf("sqlite without path should fail with ErrMissingDBPath, got %v", err)
	}
	if err := (Config{Type: MemoryBackend}).Validate(); err != nil {
		t.Fatalf("memory should validate, got %v", err)
	}
}

func TestLoadSnapshotFromBothBackends(t *testing.T) {
	f := NewFactory(nil)
	ctx := context.Background()

	mem, err := LoadSnapshot(ctx, f, Config{Type: MemoryBackend})
	if err != nil {
		t.Fatalf("memory: %v", err)
	}
	db, err := LoadSnapshot(ctx, f, Config{Type: SQLiteBackend, SQLiteDBPath: filepath.Join(t.TempDir(), "seed.db")})
	if err != nil {
		t.Fatalf("sqlite: %v", err)
	}
	if len(mem.Documents) != len(db.Documents) || len(mem.Steps) != len(db.Steps) {
		t.Fatalf("backends disagree: %d/%d documents, %d/%d steps",
			len(mem.Documents), len(db.Documents), len(mem.Steps), len(db.Steps))
	}
}
