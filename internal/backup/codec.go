// Package backup exports the journal snapshot to portable files and reads
// them back for restore.
package backup

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Veraticus/cashflow-journal/internal/common"
	"github.com/Veraticus/cashflow-journal/internal/model"
)

// Format is a backup file encoding.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FileNamePrefix starts every exported backup file name.
const FileNamePrefix = "cashflow-journal-backup-"

// Fields a restore file must carry with a non-null value.
var requiredFields = []string{"transactions", "incomeCategories"}

// ParseFormat accepts "json", "yaml" or "yml" in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", common.Validationf("unknown backup format %q (want json or yaml)", s)
	}
}

// FormatFromPath picks the format from a file extension. Anything that is
// not .yaml or .yml is read as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// FileName returns the default export name for the given day.
func FileName(now time.Time, f Format) string {
	return FileNamePrefix + now.Format("2006-01-02") + "." + string(f)
}

// Encoder turns a snapshot into file content.
type Encoder interface {
	Encode(snap *model.Snapshot) ([]byte, error)
}

// JSONEncoder writes indented JSON with numeric amounts.
type JSONEncoder struct{}

// Encode implements Encoder.
func (JSONEncoder) Encode(snap *model.Snapshot) ([]byte, error) {
	return json.MarshalIndent(snap, "", "  ")
}

// YAMLEncoder writes YAML using the same field names as the JSON form.
type YAMLEncoder struct{}

// Encode implements Encoder.
func (YAMLEncoder) Encode(snap *model.Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(snap); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncoderFor returns the encoder for f.
func EncoderFor(f Format) Encoder {
	if f == FormatYAML {
		return YAMLEncoder{}
	}
	return JSONEncoder{}
}

// Export writes snap to w in format f.
func Export(w io.Writer, snap *model.Snapshot, f Format) error {
	data, err := EncoderFor(f).Encode(snap)
	if err != nil {
		return fmt.Errorf("failed to encode backup: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write backup: %w", err)
	}
	return nil
}

// Parse reads a backup in format f. The content must decode and carry
// non-null transactions and incomeCategories fields; anything else fails
// with ErrInvalidFormat. The returned snapshot is normalized.
func Parse(r io.Reader, f Format) (*model.Snapshot, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup: %w", err)
	}

	var snap *model.Snapshot
	if f == FormatYAML {
		snap, err = parseYAML(data)
	} else {
		snap, err = parseJSON(data)
	}
	if err != nil {
		return nil, err
	}

	snap.Normalize()
	return snap, nil
}

func parseJSON(data []byte) (*model.Snapshot, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: not a JSON object: %v", common.ErrInvalidFormat, err)
	}
	for _, field := range requiredFields {
		v, ok := raw[field]
		if !ok || bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			return nil, missingField(field)
		}
	}

	var snap model.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidFormat, err)
	}
	return &snap, nil
}

func parseYAML(data []byte) (*model.Snapshot, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: not a YAML mapping: %v", common.ErrInvalidFormat, err)
	}
	for _, field := range requiredFields {
		if raw[field] == nil {
			return nil, missingField(field)
		}
	}

	var snap model.Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidFormat, err)
	}
	return &snap, nil
}

func missingField(field string) error {
	return fmt.Errorf("%w: backup has no %q field", common.ErrInvalidFormat, field)
}
