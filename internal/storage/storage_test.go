package storage

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAferoStore_Unit(t *testing.T) {
	// In-memory filesystem, no disk I/O is performed.
	memFs := afero.NewMemMapFs()
	store := NewAferoStore(memFs)
	ctx := context.Background()

	fileName := "c0ffee.png"
	fileContent := "\x89PNG fake image bytes"

	t.Run("Save", func(t *testing.T) {
		bytesWritten, err := store.Save(ctx, fileName, bytes.NewReader([]byte(fileContent)))
		require.NoError(t, err)
		assert.Equal(t, int64(len(fileContent)), bytesWritten)

		readBytes, err := afero.ReadFile(memFs, fileName)
		require.NoError(t, err)
		assert.Equal(t, fileContent, string(readBytes))
	})

	t.Run("Save replaces existing content", func(t *testing.T) {
		_, err := store.Save(ctx, "replace.jpg", bytes.NewReader([]byte("a much longer first version")))
		require.NoError(t, err)
		_, err = store.Save(ctx, "replace.jpg", bytes.NewReader([]byte("short")))
		require.NoError(t, err)

		readBytes, err := afero.ReadFile(memFs, "replace.jpg")
		require.NoError(t, err)
		assert.Equal(t, "short", string(readBytes))
	})

	t.Run("Exists", func(t *testing.T) {
		exists, err := store.Exists(ctx, fileName)
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = store.Exists(ctx, "missing.png")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("Exists ignores directories", func(t *testing.T) {
		require.NoError(t, memFs.MkdirAll("nested", 0o755))
		exists, err := store.Exists(ctx, "nested")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("Open", func(t *testing.T) {
		file, err := store.Open(ctx, fileName)
		require.NoError(t, err)
		defer file.Close()

		readBytes, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, fileContent, string(readBytes))
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, fileName))

		exists, err := afero.Exists(memFs, fileName)
		require.NoError(t, err)
		assert.False(t, exists, "file should not exist after deleting")
	})

	t.Run("Delete missing file", func(t *testing.T) {
		assert.NoError(t, store.Delete(ctx, "never-stored.png"))
	})

	t.Run("Open non-existent file", func(t *testing.T) {
		_, err := store.Open(ctx, "nothing.png")
		assert.Error(t, err, "opening a non-existent file should return an error")
	})

	t.Run("Canceled context", func(t *testing.T) {
		canceled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := store.Save(canceled, "late.png", bytes.NewReader([]byte("x")))
		assert.ErrorIs(t, err, context.Canceled)

		exists, err := afero.Exists(memFs, "late.png")
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestAferoStore_ReadOnly(t *testing.T) {
	store := NewAferoStore(afero.NewReadOnlyFs(afero.NewMemMapFs()))
	ctx := context.Background()

	_, err := store.Save(ctx, "blocked.png", bytes.NewReader([]byte("x")))
	assert.Error(t, err)
}
