package storage

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Veraticus/cashflow-journal/internal/common"
	"github.com/Veraticus/cashflow-journal/internal/service"
)

// Backend names a SnapshotStore implementation.
type Backend string

// Supported backends.
const (
	BackendSQLite Backend = "sqlite"
	BackendFile   Backend = "file"
	BackendMemory Backend = "memory"
)

// ParseBackend accepts a backend name in any case; empty means SQLite.
func ParseBackend(s string) (Backend, error) {
	switch b := Backend(strings.ToLower(strings.TrimSpace(s))); b {
	case "":
		return BackendSQLite, nil
	case BackendSQLite, BackendFile, BackendMemory:
		return b, nil
	default:
		return "", fmt.Errorf("%w: unknown storage backend %q", common.ErrInvalidConfig, s)
	}
}

// Config selects and locates a backend.
type Config struct {
	Backend  Backend
	DBPath   string
	FilePath string
}

// Open creates the configured store. SQLite stores are migrated before they
// are returned.
func Open(ctx context.Context, cfg Config) (service.SnapshotStore, error) {
	switch cfg.Backend {
	case BackendSQLite, "":
		store, err := NewSQLiteStorage(cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		if err := store.Migrate(ctx); err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
		slog.Debug("Initialized SQLite backend", "db_path", cfg.DBPath)
		return store, nil

	case BackendFile:
		store, err := NewFileStorage(cfg.FilePath)
		if err != nil {
			return nil, err
		}
		slog.Debug("Initialized file backend", "path", cfg.FilePath)
		return store, nil

	case BackendMemory:
		slog.Debug("Initialized memory backend")
		return NewMemoryStorage(), nil

	default:
		return nil, fmt.Errorf("%w: unsupported storage backend %q", common.ErrInvalidConfig, cfg.Backend)
	}
}
