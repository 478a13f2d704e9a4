package storage

import (
	"encoding/json"
	"fmt"

	"github.com/Veraticus/cashflow-journal/internal/model"
)

// DefaultKey is the key the snapshot is stored under.
const DefaultKey = "cashflowJournalData"

func encodeSnapshot(snap *model.Snapshot) ([]byte, error) {
	data, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return data, nil
}

func decodeSnapshot(data []byte) (*model.Snapshot, error) {
	var snap model.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	snap.Normalize()
	return &snap, nil
}
