package backup

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/Veraticus/cashflow-journal/internal/model"
)

// MaxAutoBackups is how many automatic backups are kept; older ones are
// pruned after each new one.
const MaxAutoBackups = 5

// Archive errors.
var (
	ErrBackupNotFound = errors.New("backup not found")
	ErrBackupExists   = errors.New("backup already exists")
	ErrInvalidID      = errors.New("invalid backup id: cannot contain path separators")
)

// Archive keeps named JSON backups with a metadata sidecar in one directory.
type Archive struct {
	now func() time.Time
	dir string
}

// Metadata describes an archived backup.
type Metadata struct {
	CreatedAt    time.Time `json:"created_at"`
	ID           string    `json:"id"`
	Description  string    `json:"description"`
	FileSize     int64     `json:"file_size"`
	Transactions int       `json:"transactions"`
	Categories   int       `json:"categories"`
	Recurring    int       `json:"recurring"`
	IsAuto       bool      `json:"is_auto"`
}

// NewArchive opens (creating if needed) the archive directory dir.
func NewArchive(dir string) (*Archive, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create backups directory: %w", err)
	}
	return &Archive{dir: dir, now: time.Now}, nil
}

// Dir returns the archive directory.
func (a *Archive) Dir() string {
	return a.dir
}

// Create stores snap under id. An empty id is generated from the clock.
func (a *Archive) Create(snap *model.Snapshot, id, description string) (*Metadata, error) {
	if id == "" {
		id = "backup-" + a.now().Format("2006-01-02-150405")
	}
	return a.create(snap, id, description, false)
}

// AutoBackup stores a safety copy before op and prunes old automatic
// copies. An empty snapshot is not worth keeping and is skipped.
func (a *Archive) AutoBackup(snap *model.Snapshot, op string) (*Metadata, error) {
	if len(snap.Transactions) == 0 && len(snap.RecurringExpenses) == 0 {
		slog.Debug("Skipping automatic backup of empty journal", "op", op)
		return nil, nil
	}

	base := fmt.Sprintf("auto-%s-%s", op, a.now().Format("2006-01-02-150405"))
	id := base
	for n := 2; a.exists(id); n++ {
		id = fmt.Sprintf("%s-%d", base, n)
	}

	meta, err := a.create(snap, id, "Automatic backup before "+op, true)
	if err != nil {
		return nil, fmt.Errorf("failed to create automatic backup: %w", err)
	}

	if err := a.pruneAuto(); err != nil {
		slog.Warn("failed to prune old automatic backups", "error", err)
	}
	return meta, nil
}

func (a *Archive) create(snap *model.Snapshot, id, description string, auto bool) (*Metadata, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	if a.exists(id) {
		return nil, fmt.Errorf("%w: %s", ErrBackupExists, id)
	}

	data, err := JSONEncoder{}.Encode(snap)
	if err != nil {
		return nil, fmt.Errorf("failed to encode backup: %w", err)
	}
	if err := writeAtomic(a.dataPath(id), data); err != nil {
		return nil, fmt.Errorf("failed to write backup: %w", err)
	}

	meta := Metadata{
		ID:           id,
		CreatedAt:    a.now(),
		Description:  description,
		FileSize:     int64(len(data)),
		Transactions: len(snap.Transactions),
		Categories:   len(snap.IncomeCategories) + len(snap.ExpenseCategories),
		Recurring:    len(snap.RecurringExpenses),
		IsAuto:       auto,
	}
	if err := a.saveMetadata(meta); err != nil {
		if rmErr := os.Remove(a.dataPath(id)); rmErr != nil {
			slog.Error("failed to remove backup file after metadata save failure", "error", rmErr)
		}
		return nil, fmt.Errorf("failed to save metadata: %w", err)
	}

	slog.Debug("Created backup", "id", id, "auto", auto)
	return &meta, nil
}

// List returns every backup with readable metadata, newest first.
func (a *Archive) List() ([]Metadata, error) {
	entries, err := os.ReadDir(a.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read backups directory: %w", err)
	}

	backups := make([]Metadata, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".meta.json") {
			continue
		}
		meta, err := a.loadMetadata(strings.TrimSuffix(entry.Name(), ".meta.json"))
		if err != nil {
			// Skip corrupted metadata files
			continue
		}
		backups = append(backups, *meta)
	}

	sort.SliceStable(backups, func(i, j int) bool {
		return backups[i].CreatedAt.After(backups[j].CreatedAt)
	})
	return backups, nil
}

// Load reads the backup with id, applying the same checks as a restore
// file.
func (a *Archive) Load(id string) (*model.Snapshot, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	// #nosec G304 - id is validated above
	f, err := os.Open(a.dataPath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrBackupNotFound, id)
		}
		return nil, fmt.Errorf("failed to open backup: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			slog.Error("failed to close backup file", "error", closeErr)
		}
	}()

	return Parse(f, FormatJSON)
}

// Delete removes the backup with id.
func (a *Archive) Delete(id string) error {
	if err := validateID(id); err != nil {
		return err
	}
	if !a.exists(id) {
		return fmt.Errorf("%w: %s", ErrBackupNotFound, id)
	}

	if err := os.Remove(a.dataPath(id)); err != nil {
		return fmt.Errorf("failed to remove backup file: %w", err)
	}
	if err := os.Remove(a.metaPath(id)); err != nil {
		slog.Debug("failed to remove metadata file", "error", err, "id", id)
	}
	return nil
}

func (a *Archive) pruneAuto() error {
	backups, err := a.List()
	if err != nil {
		return err
	}

	kept := 0
	for _, b := range backups {
		if !b.IsAuto {
			continue
		}
		kept++
		if kept > MaxAutoBackups {
			if err := a.Delete(b.ID); err != nil {
				slog.Debug("failed to delete old automatic backup", "error", err, "id", b.ID)
			}
		}
	}
	return nil
}

func (a *Archive) exists(id string) bool {
	_, err := os.Stat(a.dataPath(id))
	return err == nil
}

func (a *Archive) dataPath(id string) string {
	return filepath.Join(a.dir, id+".json")
}

func (a *Archive) metaPath(id string) string {
	return filepath.Join(a.dir, id+".meta.json")
}

func (a *Archive) saveMetadata(meta Metadata) error {
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return err
	}
	return writeAtomic(a.metaPath(meta.ID), data)
}

func (a *Archive) loadMetadata(id string) (*Metadata, error) {
	// #nosec G304 - ids come from validated names or directory entries
	data, err := os.ReadFile(a.metaPath(id))
	if err != nil {
		return nil, err
	}
	var meta Metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func validateID(id string) error {
	if id == "" || strings.Contains(id, "/") || strings.Contains(id, "\\") || strings.Contains(id, "..") {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return nil
}

// writeAtomic writes through a temp file and renames it into place.
func writeAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
