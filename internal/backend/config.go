// Package backend chooses where the seed snapshot comes from: the compiled
// fixture or a SQLite seed database.
package backend

import (
	"errors"
	"fmt"

	"vefa/internal/config"
)

var (
	ErrUnknownBackend = errors.New("unknown seed backend")
	ErrMissingDBPath  = errors.New("sqlite seed backend needs a database path")
)

// BackendType names a seed source implementation.
type BackendType string

const (
	MemoryBackend BackendType = "memory"
	SQLiteBackend BackendType = "sqlite"
)

func (bt BackendType) String() string { return string(bt) }

func (bt BackendType) IsValid() bool {
	return bt == MemoryBackend || bt == SQLiteBackend
}

// Config selects a seed source. SQLiteDBPath is only read by the sqlite
// backend.
type Config struct {
	Type         BackendType
	SQLiteDBPath string
}

// FromAppConfig extracts the seed source settings of the application config.
func FromAppConfig(appConfig *config.Config) (Config, error) {
	if appConfig == nil {
		return Config{}, errors.New("backend: nil application config")
	}
	c := Config{
		Type:         BackendType(appConfig.DataBackend),
		SQLiteDBPath: appConfig.SQLiteDBPath,
	}
	return c, c.Validate()
}

func (c Config) Validate() error {
	if !c.Type.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Type)
	}
	if c.Type == SQLiteBackend && c.SQLiteDBPath == "" {
		return ErrMissingDBPath
	}
	return nil
}
