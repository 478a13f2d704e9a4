// Package journal owns the in-memory snapshot and is the only place it is
// mutated. Every successful mutation saves the full snapshot.
package journal

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Veraticus/cashflow-journal/internal/common"
	"github.com/Veraticus/cashflow-journal/internal/model"
	"github.com/Veraticus/cashflow-journal/internal/period"
	"github.com/Veraticus/cashflow-journal/internal/report"
	"github.com/Veraticus/cashflow-journal/internal/service"
)

// Id prefixes for generated entities.
const (
	PrefixTransaction = "trans"
	PrefixCategory    = "cat"
	PrefixRecurring   = "re"
)

// Journal is the store object front ends call into.
type Journal struct {
	store      service.SnapshotStore
	snap       *model.Snapshot
	persistErr error
	now        func() time.Time
	newID      func(prefix string) string
	mu         sync.Mutex
	darkMode   bool
}

// Option configures a Journal.
type Option func(*Journal)

// WithClock overrides the time source used for new transactions, sample
// data and summaries.
func WithClock(now func() time.Time) Option {
	return func(j *Journal) {
		j.now = now
	}
}

// WithIDGenerator overrides id generation.
func WithIDGenerator(gen func(prefix string) string) Option {
	return func(j *Journal) {
		j.newID = gen
	}
}

// WithDefaultDarkMode sets the theme used when nothing is stored yet.
func WithDefaultDarkMode(dark bool) Option {
	return func(j *Journal) {
		j.darkMode = dark
	}
}

// NewID returns prefix followed by a random UUID.
func NewID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

// Open loads the stored snapshot, or starts from the defaults when nothing
// usable is stored.
func Open(ctx context.Context, store service.SnapshotStore, opts ...Option) *Journal {
	j := &Journal{
		store: store,
		now:   time.Now,
		newID: NewID,
	}
	for _, opt := range opts {
		opt(j)
	}

	if snap, ok := store.Load(ctx); ok {
		snap.Normalize()
		j.snap = snap
		slog.Debug("Loaded journal",
			"transactions", len(snap.Transactions),
			"recurring", len(snap.RecurringExpenses))
	} else {
		j.snap = model.DefaultSnapshot(j.darkMode)
		slog.Debug("No saved journal, starting from defaults")
	}
	return j
}

// Snapshot returns a copy of the current state.
func (j *Journal) Snapshot() *model.Snapshot {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.snap.Clone()
}

// Summary computes the report for p as of the journal's clock.
func (j *Journal) Summary(p period.Period) report.Summary {
	j.mu.Lock()
	defer j.mu.Unlock()
	return report.Build(j.snap, p, j.now())
}

// SummaryWithSnapshot returns the report for p together with the state it
// was computed from, read under one lock.
func (j *Journal) SummaryWithSnapshot(p period.Period) (report.Summary, *model.Snapshot) {
	j.mu.Lock()
	defer j.mu.Unlock()
	return report.Build(j.snap, p, j.now()), j.snap.Clone()
}

// Now returns the journal's clock reading.
func (j *Journal) Now() time.Time {
	return j.now()
}

// PersistErr returns the error of the most recent failed save or clear, or
// nil once a later one succeeds. The in-memory state is then the only copy.
func (j *Journal) PersistErr() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.persistErr
}

// commit swaps in next and saves it. Callers hold mu.
func (j *Journal) commit(ctx context.Context, next *model.Snapshot, op string) {
	j.snap = next
	if err := j.store.Save(ctx, next); err != nil {
		j.persistErr = err
		common.LogWarn("Could not save journal, changes are kept in memory only", common.Fields{"op": op, "error": err})
		return
	}
	j.persistErr = nil
	common.LogDebug("Saved journal", common.Fields{"op": op})
}

// SetDarkMode records the theme preference.
func (j *Journal) SetDarkMode(ctx context.Context, dark bool) {
	j.mu.Lock()
	defer j.mu.Unlock()

	next := j.snap.Clone()
	next.DarkMode = dark
	j.commit(ctx, next, "set_dark_mode")
}

// LoadSampleData replaces transactions, categories and recurring expenses
// with the sample set. The theme preference is kept.
func (j *Journal) LoadSampleData(ctx context.Context) {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.commit(ctx, model.SampleSnapshot(j.now(), j.snap.DarkMode), "load_sample_data")
	slog.Info("Loaded sample data")
}

// ClearAll removes the stored snapshot and resets memory to the defaults,
// keeping the theme preference. The reset state is not saved, so the next
// Open also starts from the defaults.
func (j *Journal) ClearAll(ctx context.Context) {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.snap = model.DefaultSnapshot(j.snap.DarkMode)
	if err := j.store.Clear(ctx); err != nil {
		j.persistErr = err
		slog.Warn("Could not clear stored journal", "error", err)
		return
	}
	j.persistErr = nil
	slog.Info("Cleared all data")
}

// Restore replaces the whole state with snap, which the caller has already
// validated as a backup.
func (j *Journal) Restore(ctx context.Context, snap *model.Snapshot) {
	j.mu.Lock()
	defer j.mu.Unlock()

	next := snap.Clone()
	next.Normalize()
	j.commit(ctx, next, "restore")
	slog.Info("Restored journal",
		"transactions", len(next.Transactions),
		"recurring", len(next.RecurringExpenses))
}
