// Package storage implements whole-document JSON persistence.
//
// Each record set lives in a single flat file that is read and rewritten in
// full. There is no partial write, no locking, and no atomic swap; concurrent
// writers lose updates (last rewrite wins).
package storage

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadJSON reads the document at path into a value of type T.
//
// A missing file or unreadable/corrupt content yields def instead of an
// error: storage read failures are masked with defaults, never surfaced to
// the user. Silent data loss on a corrupt document is a known limitation.
func LoadJSON[T any](path string, def T) T {
	data, err := os.ReadFile(path)
	if err != nil {
		return def
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return def
	}
	return v
}

// SaveJSON rewrites the document at path with v, pretty-printed.
func SaveJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
