package storage

import (
	"context"
	"sync"

	"github.com/Veraticus/cashflow-journal/internal/model"
)

// MemoryStorage keeps the snapshot in process memory. Values are copied in
// and out so callers cannot alias the stored state.
type MemoryStorage struct {
	snap *model.Snapshot
	mu   sync.Mutex
}

// NewMemoryStorage creates an empty memory store.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

// Load returns a copy of the stored snapshot.
func (m *MemoryStorage) Load(_ context.Context) (*model.Snapshot, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.snap == nil {
		return nil, false
	}
	return m.snap.Clone(), true
}

// Save stores a copy of snap.
func (m *MemoryStorage) Save(ctx context.Context, snap *model.Snapshot) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateSnapshot(snap); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.snap = snap.Clone()
	return nil
}

// Clear drops the stored snapshot.
func (m *MemoryStorage) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snap = nil
	return nil
}

// Close is a no-op.
func (m *MemoryStorage) Close() error {
	return nil
}
