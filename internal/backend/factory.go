package backend

import (
	"context"
	"fmt"
	"log/slog"

	"vefa/internal/seed"
	"vefa/internal/storage"
)

// SourceResult is an opened seed source and the function releasing it.
type SourceResult struct {
	Source  seed.Source
	Cleanup func() error
}

// Factory opens the seed source described by a Config.
type Factory interface {
	CreateSource(ctx context.Context, config Config) (*SourceResult, error)
}

// DefaultFactory opens the memory and sqlite sources.
type DefaultFactory struct {
	logger *slog.Logger
}

func NewFactory(logger *slog.Logger) Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &DefaultFactory{logger: logger}
}

func (f *DefaultFactory) CreateSource(ctx context.Context, config Config) (*SourceResult, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	switch config.Type {
	case SQLiteBackend:
		return f.createSQLiteSource(config)
	case MemoryBackend:
		return f.createMemorySource()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, config.Type)
	}
}

func (f *DefaultFactory) createSQLiteSource(config Config) (*SourceResult, error) {
	src, err := storage.NewSQLiteSource(config.SQLiteDBPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite seed source: %w", err)
	}

	f.logger.Info("Initialized SQLite seed source", "db_path", config.SQLiteDBPath)

	return &SourceResult{Source: src, Cleanup: src.Close}, nil
}

func (f *DefaultFactory) createMemorySource() (*SourceResult, error) {
	f.logger.Info("Initialized memory seed source")
	return &SourceResult{Source: seed.NewMemorySource(nil)}, nil
}

// LoadSnapshot creates the configured source, loads and validates its
// snapshot, and releases the source.
func LoadSnapshot(ctx context.Context, f Factory, config Config) (seed.Snapshot, error) {
	res, err := f.CreateSource(ctx, config)
	if err != nil {
		return seed.Snapshot{}, err
	}
	if res.Cleanup != nil {
		defer res.Cleanup()
	}

	snap, err := res.Source.Load(ctx)
	if err != nil {
		return seed.Snapshot{}, fmt.Errorf("load seed snapshot: %w", err)
	}
	if err := snap.Validate(); err != nil {
		return seed.Snapshot{}, fmt.Errorf("validate seed snapshot: %w", err)
	}
	return snap, nil
}
