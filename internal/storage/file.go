package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"student_diary/internal/models"
)

// FileStorage keeps the diary as one JSON document on disk.
type FileStorage struct {
	path string
}

func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

func (fst *FileStorage) Load(ctx context.Context) (*models.Document, error) {
	op := "internal/storage/file.go Load"

	data, err := os.ReadFile(fst.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: failed to read %s: %w", op, fst.path, err)
	}

	var doc models.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%s: failed to decode %s: %w", op, fst.path, err)
	}
	doc.Normalize()

	return &doc, nil
}

// Save writes to a temporary file next to the target and renames it into
// place, so a failed save never leaves a half-written document behind.
func (fst *FileStorage) Save(ctx context.Context, doc *models.Document) error {
	op := "internal/storage/file.go Save"

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%s: failed to encode document: %w", op, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(fst.path), ".diary-*.tmp")
	if err != nil {
		return fmt.Errorf("%s: failed to create temp file: %w", op, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("%s: failed to write temp file: %w", op, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("%s: failed to sync temp file: %w", op, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%s: failed to close temp file: %w", op, err)
	}

	if err := os.Rename(tmpName, fst.path); err != nil {
		return fmt.Errorf("%s: failed to replace %s: %w", op, fst.path, err)
	}

	return nil
}
