package boltdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gameguild/gg-client/internal/client/storage"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "testdb.db")
	store, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return store
}

func TestStorage_SetGet(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	err := store.Set(ctx, "gameguild/token", []byte("tok1"))
	require.NoError(t, err)

	value, err := store.Get(ctx, "gameguild/token")
	require.NoError(t, err)
	assert.Equal(t, []byte("tok1"), value)

	// Перезапись значения
	err = store.Set(ctx, "gameguild/token", []byte("tok2"))
	require.NoError(t, err)

	value, err = store.Get(ctx, "gameguild/token")
	require.NoError(t, err)
	assert.Equal(t, []byte("tok2"), value)
}

func TestStorage_Get_NotFound(t *testing.T) {
	store := newTestStorage(t)

	value, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)
	assert.Nil(t, value)
}

func TestStorage_Delete(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "key", []byte("value")))
	require.NoError(t, store.Delete(ctx, "key"))

	_, err := store.Get(ctx, "key")
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)

	// Повторное удаление - не ошибка
	assert.NoError(t, store.Delete(ctx, "key"))
}

func TestStorage_Closed(t *testing.T) {
	store := newTestStorage(t)
	require.NoError(t, store.Close())

	ctx := context.Background()

	_, err := store.Get(ctx, "key")
	assert.ErrorIs(t, err, storage.ErrStorageClosed)

	err = store.Set(ctx, "key", []byte("value"))
	assert.ErrorIs(t, err, storage.ErrStorageClosed)

	err = store.Delete(ctx, "key")
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}
