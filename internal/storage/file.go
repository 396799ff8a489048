package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// JSONFile persists the mapping as one indented JSON document keyed by user id
type JSONFile struct {
	path string
}

// NewJSONFile returns a persister for the given path. The file is created on first save.
func NewJSONFile(path string) *JSONFile {
	return &JSONFile{path: path}
}

// Load reads the document. A missing file is an empty mapping.
func (f *JSONFile) Load() (map[string]Subscriber, error) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]Subscriber{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", f.path, err)
	}

	data := map[string]Subscriber{}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", f.path, err)
	}
	return data, nil
}

// Save rewrites the whole document
func (f *JSONFile) Save(data map[string]Subscriber) error {
	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode subscriptions: %w", err)
	}
	if err := os.WriteFile(f.path, raw, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", f.path, err)
	}
	return nil
}
