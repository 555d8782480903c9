package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"stackcollect/pkg/models"
)

// Save serializes questions as an indented JSON array at path, creating
// any missing parent directories. An existing file is overwritten without
// merging. The write goes through a temporary file and a rename so a
// crash mid-write never leaves a truncated document behind.
//
// HTML escaping is disabled so question and answer bodies (and any
// non-ASCII text) survive literally in the output.
func Save(questions []models.Question, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tempPath := path + ".tmp"
	file, err := os.Create(tempPath)
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(questions); err != nil {
		file.Close()
		os.Remove(tempPath)
		return fmt.Errorf("failed to encode questions: %w", err)
	}

	if err := file.Sync(); err != nil {
		file.Close()
		os.Remove(tempPath)
		return fmt.Errorf("failed to sync output file: %w", err)
	}

	if err := file.Close(); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to close output file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to replace output file: %w", err)
	}

	return nil
}

// Load reads a JSON array of questions back from path. Used by callers
// that post-process collected data; the collector itself never reads its
// own output.
func Load(path string) ([]models.Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var questions []models.Question
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	return questions, nil
}
