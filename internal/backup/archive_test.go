package backup

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/cashflow-journal/internal/model"
)

// newTestArchive returns an archive whose clock advances one minute per
// reading.
func newTestArchive(t *testing.T) *Archive {
	t.Helper()
	a, err := NewArchive(filepath.Join(t.TempDir(), "backups"))
	require.NoError(t, err)

	at := day
	a.now = func() time.Time {
		at = at.Add(time.Minute)
		return at
	}
	return a
}

func TestArchiveCreateAndLoad(t *testing.T) {
	a := newTestArchive(t)
	snap := model.SampleSnapshot(day, false)

	meta, err := a.Create(snap, "before-taxes", "manual")
	require.NoError(t, err)
	assert.Equal(t, "before-taxes", meta.ID)
	assert.Equal(t, 6, meta.Transactions)
	assert.Equal(t, 12, meta.Categories)
	assert.Equal(t, 4, meta.Recurring)
	assert.False(t, meta.IsAuto)
	assert.Positive(t, meta.FileSize)

	got, err := a.Load("before-taxes")
	require.NoError(t, err)
	assert.Len(t, got.Transactions, 6)
	assert.Equal(t, snap.ExpenseCategories, got.ExpenseCategories)
}

func TestArchiveCreateGeneratesID(t *testing.T) {
	a := newTestArchive(t)

	meta, err := a.Create(model.SampleSnapshot(day, false), "", "")
	require.NoError(t, err)
	assert.Equal(t, "backup-2024-03-15-103100", meta.ID)
}

func TestArchiveRejectsDuplicatesAndTraversal(t *testing.T) {
	a := newTestArchive(t)
	snap := model.SampleSnapshot(day, false)

	_, err := a.Create(snap, "one", "")
	require.NoError(t, err)
	_, err = a.Create(snap, "one", "")
	assert.ErrorIs(t, err, ErrBackupExists)

	for _, id := range []string{"../escape", "a/b", `a\b`} {
		_, err = a.Create(snap, id, "")
		assert.ErrorIs(t, err, ErrInvalidID, id)
		_, err = a.Load(id)
		assert.ErrorIs(t, err, ErrInvalidID, id)
		assert.ErrorIs(t, a.Delete(id), ErrInvalidID, id)
	}
}

func TestArchiveListNewestFirst(t *testing.T) {
	a := newTestArchive(t)
	snap := model.SampleSnapshot(day, false)

	for _, id := range []string{"first", "second", "third"} {
		_, err := a.Create(snap, id, "")
		require.NoError(t, err)
	}
	require.NoError(t, os.WriteFile(filepath.Join(a.Dir(), "broken.meta.json"), []byte("{"), 0600))

	list, err := a.List()
	require.NoError(t, err)
	require.Len(t, list, 3, "corrupt metadata is skipped")
	assert.Equal(t, "third", list[0].ID)
	assert.Equal(t, "first", list[2].ID)
}

func TestArchiveDelete(t *testing.T) {
	a := newTestArchive(t)
	_, err := a.Create(model.SampleSnapshot(day, false), "gone", "")
	require.NoError(t, err)

	require.NoError(t, a.Delete("gone"))
	_, err = a.Load("gone")
	assert.ErrorIs(t, err, ErrBackupNotFound)
	assert.ErrorIs(t, a.Delete("gone"), ErrBackupNotFound)

	list, err := a.List()
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestAutoBackupPrunesOldCopies(t *testing.T) {
	a := newTestArchive(t)
	snap := model.SampleSnapshot(day, false)

	_, err := a.Create(snap, "manual", "")
	require.NoError(t, err)
	for i := 0; i < MaxAutoBackups+3; i++ {
		meta, err := a.AutoBackup(snap, "restore")
		require.NoError(t, err)
		require.NotNil(t, meta)
		assert.True(t, meta.IsAuto)
	}

	list, err := a.List()
	require.NoError(t, err)

	auto := 0
	for _, m := range list {
		if m.IsAuto {
			auto++
		}
	}
	assert.Equal(t, MaxAutoBackups, auto)
	assert.Len(t, list, MaxAutoBackups+1, "manual backups are never pruned")
	assert.Equal(t, "auto-restore-2024-03-15-104600", list[0].ID)
}

func TestAutoBackupSkipsEmptyJournal(t *testing.T) {
	a := newTestArchive(t)

	meta, err := a.AutoBackup(model.DefaultSnapshot(false), "clear")
	require.NoError(t, err)
	assert.Nil(t, meta)

	list, err := a.List()
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestAutoBackupAvoidsNameCollisions(t *testing.T) {
	a := newTestArchive(t)
	a.now = func() time.Time { return day }
	snap := model.SampleSnapshot(day, false)

	first, err := a.AutoBackup(snap, "clear")
	require.NoError(t, err)
	second, err := a.AutoBackup(snap, "clear")
	require.NoError(t, err)

	assert.Equal(t, "auto-clear-2024-03-15-103000", first.ID)
	assert.Equal(t, "auto-clear-2024-03-15-103000-2", second.ID)
}
