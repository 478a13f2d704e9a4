// Package service defines the interfaces shared between the journal and its
// collaborators.
package service

import (
	"context"

	"github.com/Veraticus/cashflow-journal/internal/model"
)

// SnapshotStore persists the whole application snapshot as one value.
//
// Load never fails: a missing, unreadable or corrupt value is reported as
// absent (ok == false) and logged by the implementation. Save replaces the
// stored value. Save and Clear errors wrap common.ErrStorageUnavailable.
type SnapshotStore interface {
	Load(ctx context.Context) (snap *model.Snapshot, ok bool)
	Save(ctx context.Context, snap *model.Snapshot) error
	Clear(ctx context.Context) error
	Close() error
}
