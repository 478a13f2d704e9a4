package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/cashflow-journal/internal/common"
)

func TestParseBackend(t *testing.T) {
	tests := []struct {
		input   string
		want    Backend
		wantErr bool
	}{
		{input: "", want: BackendSQLite},
		{input: "SQLite", want: BackendSQLite},
		{input: "file", want: BackendFile},
		{input: " memory ", want: BackendMemory},
		{input: "sheets", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseBackend(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, common.ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOpen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	sqliteStore, err := Open(ctx, Config{Backend: BackendSQLite, DBPath: filepath.Join(dir, "j.db")})
	require.NoError(t, err)
	defer func() { _ = sqliteStore.Close() }()
	assert.IsType(t, &SQLiteStorage{}, sqliteStore)
	require.NoError(t, sqliteStore.Save(ctx, testSnapshot()), "store is migrated")

	fileStore, err := Open(ctx, Config{Backend: BackendFile, FilePath: filepath.Join(dir, "j.json")})
	require.NoError(t, err)
	assert.IsType(t, &FileStorage{}, fileStore)

	memStore, err := Open(ctx, Config{Backend: BackendMemory})
	require.NoError(t, err)
	assert.IsType(t, &MemoryStorage{}, memStore)

	_, err = Open(ctx, Config{Backend: "sheets"})
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
}
