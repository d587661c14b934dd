package memory

import (
	"context"
	"ecoalerta/internal/storage"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorage_GetSet(t *testing.T) {
	store := New()
	ctx := context.Background()

	_, err := store.Get(ctx, storage.KeyReports)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, store.Set(ctx, storage.KeyReports, []byte(`[]`)))

	value, err := store.Get(ctx, storage.KeyReports)
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(value))

	store.Delete(storage.KeyReports)
	_, err = store.Get(ctx, storage.KeyReports)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestStorage_CopiesValues(t *testing.T) {
	store := New()
	ctx := context.Background()

	input := []byte("abc")
	require.NoError(t, store.Set(ctx, "k", input))
	input[0] = 'x'

	value, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(value))

	value[1] = 'y'
	again, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(again))
}

func TestStorage_FailWrites(t *testing.T) {
	store := New()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", []byte("before")))

	store.FailWrites(true)
	err := store.Set(ctx, "k", []byte("after"))
	assert.ErrorIs(t, err, ErrWriteRejected)

	value, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "before", string(value), "failed write leaves value untouched")

	store.FailWrites(false)
	assert.NoError(t, store.Set(ctx, "k", []byte("after")))
}
