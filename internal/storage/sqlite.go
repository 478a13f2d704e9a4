package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Veraticus/cashflow-journal/internal/common"
	"github.com/Veraticus/cashflow-journal/internal/model"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteStorage keeps the snapshot as one row of a key-value table.
type SQLiteStorage struct {
	db     *sql.DB
	dbPath string
	key    string
}

// NewSQLiteStorage creates a new SQLite storage instance.
func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	if err := validateString(dbPath, "dbPath"); err != nil {
		return nil, err
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dsn(dbPath))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	slog.Debug("Opened database", "path", dbPath)

	return &SQLiteStorage{
		db:     db,
		dbPath: dbPath,
		key:    DefaultKey,
	}, nil
}

func dsn(dbPath string) string {
	return dbPath + "?_journal_mode=WAL&_busy_timeout=5000"
}

// Path returns the database file path.
func (s *SQLiteStorage) Path() string {
	return s.dbPath
}

// Close closes the database connection.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// Load returns the stored snapshot. Any failure is logged and reported as
// absent.
func (s *SQLiteStorage) Load(ctx context.Context) (*model.Snapshot, bool) {
	if err := validateContext(ctx); err != nil {
		slog.Error("Could not load snapshot", "error", err)
		return nil, false
	}

	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv_store WHERE key = ?`, s.key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false
	}
	if err != nil {
		slog.Error("Could not load snapshot", "path", s.dbPath, "error", err)
		return nil, false
	}

	snap, err := decodeSnapshot([]byte(value))
	if err != nil {
		common.LogError(err, "Stored snapshot is unreadable", common.Fields{"path": s.dbPath})
		return nil, false
	}
	return snap, true
}

// Save replaces the stored snapshot and bumps its revision.
func (s *SQLiteStorage) Save(ctx context.Context, snap *model.Snapshot) error {
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

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO kv_store (key, value, revision, updated_at)
		VALUES (?, ?, 1, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			revision = kv_store.revision + 1,
			updated_at = CURRENT_TIMESTAMP
	`, s.key, string(data))
	if err != nil {
		return fmt.Errorf("%w: failed to save snapshot: %w", common.ErrStorageUnavailable, err)
	}

	slog.Debug("Saved snapshot", "bytes", len(data), "transactions", len(snap.Transactions))
	return nil
}

// Clear removes the stored snapshot.
func (s *SQLiteStorage) Clear(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv_store WHERE key = ?`, s.key); err != nil {
		return fmt.Errorf("%w: failed to clear snapshot: %w", common.ErrStorageUnavailable, err)
	}

	slog.Info("Cleared stored snapshot", "path", s.dbPath)
	return nil
}

// Revision returns how many times the snapshot has been saved since it was
// last cleared, or 0 when nothing is stored.
func (s *SQLiteStorage) Revision(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var revision int
	err := s.db.QueryRowContext(ctx, `SELECT revision FROM kv_store WHERE key = ?`, s.key).Scan(&revision)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read revision: %w", err)
	}
	return revision, nil
}
