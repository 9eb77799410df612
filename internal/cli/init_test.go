package cli

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"vefa/internal/config"
)

func TestSetupLoggerJSON(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	logger := SetupLogger(&buf, "debug", "json")
	logger.Debug("ready")
	if !strings.Contains(buf.String(), `"msg":"ready"`) {
		t.Fatalf("expected JSON debug entry, got %q", buf.String())
	}
}

func TestSetupLoggerUnknownLevel(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	logger := SetupLogger(&buf, "chatty", "text")
	if !strings.Contains(buf.String(), "Unknown log level") {
		t.Fatalf("expected warning, got %q", buf.String())
	}
	buf.Reset()
	logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug should be filtered at info level")
	}
}

func TestLoadSnapshotMemory(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	snap, err := LoadSnapshot(context.Background(), logger, &config.Config{DataBackend: "memory"})
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if len(snap.Payments) != 7 {
		t.Fatalf("payments=%d", len(snap.Payments))
	}
	if _, err := LoadSnapshot(context.Background(), logger, &config.Config{DataBackend: "nope"}); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}
