package fixtures

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrEmpty reports a fixture file that exists but has no content.
var ErrEmpty = errors.New("fixture file is empty")

// LoadObject loads a fixture holding a single JSON object.
func LoadObject(path string) (map[string]interface{}, error) {
	raw, err := read(path)
	if err != nil {
		return nil, err
	}

	var doc map[string]interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return doc, nil
}

// LoadRecords loads a fixture holding a JSON array of objects, one per
// destination document.
func LoadRecords(path string) ([]map[string]interface{}, error) {
	raw, err := read(path)
	if err != nil {
		return nil, err
	}

	var records []map[string]interface{}
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return records, nil
}

// LoadList loads a fixture holding a JSON array of arbitrary values. Used
// for fixtures whose whole array is wrapped into a single document.
func LoadList(path string) ([]interface{}, error) {
	raw, err := read(path)
	if err != nil {
		return nil, err
	}

	var list []interface{}
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return list, nil
}

// read returns the raw fixture bytes. Absent files surface fs.ErrNotExist
// and blank files surface ErrEmpty so callers can warn and skip.
func read(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmpty)
	}
	return raw, nil
}
