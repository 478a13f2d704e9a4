package testutil

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/Veraticus/cashflow-journal/internal/common"
	"github.com/Veraticus/cashflow-journal/internal/model"
	"github.com/Veraticus/cashflow-journal/internal/storage"
)

// SetupTestStore creates a migrated SQLite store in a temp directory and
// closes it when the test ends.
func SetupTestStore(t *testing.T) *storage.SQLiteStorage {
	t.Helper()

	store, err := storage.NewSQLiteStorage(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	if err := store.Migrate(context.Background()); err != nil {
		_ = store.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

// StubStore is an in-memory SnapshotStore that records calls and can be
// told to fail.
type StubStore struct {
	Stored   *model.Snapshot
	SaveErr  error
	ClearErr error
	Saves    int
	Clears   int
	mu       sync.Mutex
}

// NewStubStore returns a stub holding snap, which may be nil.
func NewStubStore(snap *model.Snapshot) *StubStore {
	return &StubStore{Stored: snap}
}

// NewFailingStore returns a stub whose Save and Clear always fail.
func NewFailingStore() *StubStore {
	err := fmt.Errorf("%w: disk is read-only", common.ErrStorageUnavailable)
	return &StubStore{SaveErr: err, ClearErr: err}
}

// Load implements service.SnapshotStore.
func (s *StubStore) Load(_ context.Context) (*model.Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Stored == nil {
		return nil, false
	}
	return s.Stored.Clone(), true
}

// Save implements service.SnapshotStore.
func (s *StubStore) Save(_ context.Context, snap *model.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.Saves++
	s.Stored = snap.Clone()
	return nil
}

// Clear implements service.SnapshotStore.
func (s *StubStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ClearErr != nil {
		return s.ClearErr
	}
	s.Clears++
	s.Stored = nil
	return nil
}

// Close implements service.SnapshotStore.
func (s *StubStore) Close() error {
	return nil
}

// SequentialIDs returns an id generator producing prefix-1, prefix-2, ...
// with one counter per prefix.
func SequentialIDs() func(prefix string) string {
	var mu sync.Mutex
	counters := map[string]int{}
	return func(prefix string) string {
		mu.Lock()
		defer mu.Unlock()
		counters[prefix]++
		return fmt.Sprintf("%s-%d", prefix, counters[prefix])
	}
}

// FixedClock returns a clock that always reads at.
func FixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}
