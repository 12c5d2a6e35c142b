package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"student_diary/internal/models"
)

func TestFileStorageRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "diary_data.json")
	fst := NewFileStorage(path)

	doc := models.SampleDocument()
	require.NoError(t, fst.Save(ctx, doc))

	loaded, err := fst.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, doc, loaded)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"mood_history": [`)
	assert.Contains(t, string(data), `"date": "2025-01-15"`)
}

func TestFileStorageReplacesDocument(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dir := t.TempDir()
	fst := NewFileStorage(filepath.Join(dir, "diary_data.json"))

	require.NoError(t, fst.Save(ctx, models.SampleDocument()))
	require.NoError(t, fst.Save(ctx, models.NewDocument()))

	loaded, err := fst.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.NewDocument(), loaded)

	files, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, files, 1, "temp files must not be left behind")
}

func TestFileStorageLoadErrors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dir := t.TempDir()

	_, err := NewFileStorage(filepath.Join(dir, "missing.json")).Load(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte(`{"entries": [`), 0o600))
	_, err = NewFileStorage(broken).Load(ctx)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestFileStorageLoadFillsMissingArrays(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "partial.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"entries": []}`), 0o600))

	loaded, err := NewFileStorage(path).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.NewDocument(), loaded)
}

func TestFileStorageSaveIntoMissingDirectory(t *testing.T) {
	t.Parallel()

	fst := NewFileStorage(filepath.Join(t.TempDir(), "nope", "diary_data.json"))
	assert.Error(t, fst.Save(context.Background(), models.NewDocument()))
}
