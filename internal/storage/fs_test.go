package storage_test

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/lucalvex/hub-projeto-diag-api/internal/config"
	"github.com/lucalvex/hub-projeto-diag-api/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFSStore(t *testing.T) {
	ctx := context.Background()
	store, err := storage.NewFSStore(t.TempDir())
	require.NoError(t, err)

	t.Run("PutAndGet", func(t *testing.T) {
		key, err := store.Put(ctx, "relatorios/u1/a1.pdf", bytes.NewReader([]byte("%PDF-1.3")), 8, "application/pdf")
		require.NoError(t, err)
		assert.Equal(t, "relatorios/u1/a1.pdf", key)

		rc, err := store.Get(ctx, key)
		require.NoError(t, err)
		defer rc.Close()
		body, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, "%PDF-1.3", string(body))
	})

	t.Run("RejectsTraversal", func(t *testing.T) {
		_, err := store.Put(ctx, "../fora.pdf", bytes.NewReader(nil), 0, "")
		assert.ErrorIs(t, err, storage.ErrInvalidKey)

		_, err = store.Put(ctx, "", bytes.NewReader(nil), 0, "")
		assert.ErrorIs(t, err, storage.ErrInvalidKey)
	})
}

func TestNew(t *testing.T) {
	ctx := context.Background()

	t.Run("NoneDisablesArchival", func(t *testing.T) {
		store, err := storage.New(ctx, config.Settings{StorageDriver: "none"})
		require.NoError(t, err)
		assert.Nil(t, store)
	})

	t.Run("FilesystemDriver", func(t *testing.T) {
		store, err := storage.New(ctx, config.Settings{StorageDriver: "fs", StoragePath: t.TempDir()})
		require.NoError(t, err)
		assert.IsType(t, &storage.FSStore{}, store)
	})

	t.Run("UnknownDriver", func(t *testing.T) {
		_, err := storage.New(ctx, config.Settings{StorageDriver: "s3"})
		assert.Error(t, err)
	})
}
