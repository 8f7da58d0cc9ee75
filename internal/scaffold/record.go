package scaffold

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// RecordFileName is the persisted discovery record written into every
// generated project. Later tool invocations (and the user, by hand) read
// and edit this file to fix up the Qt location.
const RecordFileName = "qtweb.json"

// Record is the persisted outcome of Qt discovery for a scaffold run.
// QtPath is a pointer so an unresolved installation serializes as an
// explicit null rather than a missing key or empty string.
type Record struct {
	QtPath    *string   `json:"qtPath"`
	RunID     string    `json:"runId"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewRecord builds a record for the given discovery outcome; qtPath == ""
// means discovery failed.
func NewRecord(qtPath string) Record {
	rec := Record{
		RunID:     uuid.NewString(),
		CreatedAt: time.Now().UTC(),
	}
	if qtPath != "" {
		rec.QtPath = &qtPath
	}
	return rec
}

// WriteRecord persists the record into dir.
func WriteRecord(dir string, rec Record) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", RecordFileName, err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(filepath.Join(dir, RecordFileName), data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", RecordFileName, err)
	}
	return nil
}

// LoadRecord reads a previously persisted record from dir.
func LoadRecord(dir string) (Record, error) {
	var rec Record
	data, err := os.ReadFile(filepath.Join(dir, RecordFileName))
	if err != nil {
		return rec, fmt.Errorf("failed to read %s: %w", RecordFileName, err)
	}
	if err := json.Unmarshal(data, &rec); err != nil {
		return rec, fmt.Errorf("failed to parse %s: %w", RecordFileName, err)
	}
	return rec, nil
}
