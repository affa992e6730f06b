package lineage

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadFile reads and validates a lineage snapshot from a JSON file.
func LoadFile(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a lineage snapshot from JSON bytes.
func Parse(data []byte) (*Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	if err := snap.Validate(); err != nil {
		return nil, fmt.Errorf("invalid snapshot: %w", err)
	}
	return &snap, nil
}
