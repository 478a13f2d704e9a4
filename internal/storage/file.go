package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Veraticus/cashflow-journal/internal/common"
	"github.com/Veraticus/cashflow-journal/internal/model"
)

// FileStorage keeps the snapshot in a single JSON file. Writes go to a
// temporary file that is renamed over the target.
type FileStorage struct {
	path string
}

// NewFileStorage creates a file store at path, creating its directory.
func NewFileStorage(path string) (*FileStorage, error) {
	if err := validateString(path, "path"); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &FileStorage{path: path}, nil
}

// Path returns the snapshot file path.
func (f *FileStorage) Path() string {
	return f.path
}

// Load reads the snapshot file. A missing or corrupt file is absent.
func (f *FileStorage) Load(ctx context.Context) (*model.Snapshot, bool) {
	if err := validateContext(ctx); err != nil {
		slog.Error("Could not load snapshot", "error", err)
		return nil, false
	}

	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false
	}
	if err != nil {
		slog.Error("Could not load snapshot", "path", f.path, "error", err)
		return nil, false
	}

	snap, err := decodeSnapshot(data)
	if err != nil {
		common.LogError(err, "Stored snapshot is unreadable", common.Fields{"path": f.path})
		return nil, false
	}
	return snap, true
}

// Save writes the snapshot file.
func (f *FileStorage) Save(ctx context.Context, snap *model.Snapshot) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateSnapshot(snap); err != nil {
		return err
	}

	data, err := encodeSnapshot(snap)
	if err != nil {
		return fmt.Errorf("%w: %w", common.ErrStorageUnavailable, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".snapshot-*.json")
	if err != nil {
		return fmt.Errorf("%w: failed to create temp file: %w", common.ErrStorageUnavailable, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: failed to write snapshot: %w", common.ErrStorageUnavailable, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: failed to write snapshot: %w", common.ErrStorageUnavailable, err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: failed to replace snapshot: %w", common.ErrStorageUnavailable, err)
	}

	slog.Debug("Saved snapshot", "path", f.path, "bytes", len(data))
	return nil
}

// Clear deletes the snapshot file. A missing file is not an error.
func (f *FileStorage) Clear(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: failed to remove snapshot: %w", common.ErrStorageUnavailable, err)
	}
	return nil
}

// Close is a no-op; the file is not held open.
func (f *FileStorage) Close() error {
	return nil
}
