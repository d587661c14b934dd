package profile

import (
	"context"
	"ecoalerta/internal/core"
	"ecoalerta/internal/storage"
	"ecoalerta/internal/storage/memory"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() (*Store, *memory.Storage) {
	kv := memory.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(kv, logger), kv
}

func TestStore_LoadBeforeSave(t *testing.T) {
	store, _ := newTestStore()
	assert.Nil(t, store.Load(context.Background()))
}

func TestStore_RoundTrip(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()

	cfg := core.UserConfig{
		Neighborhood: "Trindade",
		Slots:        []string{"2ª 07:00", "5ª 07:00"},
	}

	require.NoError(t, store.Save(ctx, cfg))

	loaded := store.Load(ctx)
	require.NotNil(t, loaded)
	assert.Equal(t, cfg, *loaded)
}

func TestStore_StoredFormat(t *testing.T) {
	store, kv := newTestStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, core.UserConfig{Neighborhood: "Centro", Slots: []string{}}))

	data, err := kv.Get(ctx, storage.KeyConfig)
	require.NoError(t, err)
	assert.JSONEq(t, `{"neighborhood":"Centro","slots":[]}`, string(data))
}

func TestStore_CorruptValue(t *testing.T) {
	store, kv := newTestStore()
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, storage.KeyConfig, []byte("{not json")))
	assert.Nil(t, store.Load(ctx))

	require.NoError(t, kv.Set(ctx, storage.KeyConfig, []byte("null")))
	assert.Nil(t, store.Load(ctx))
}

func TestStore_SaveFailure(t *testing.T) {
	store, kv := newTestStore()
	ctx := context.Background()

	kv.FailWrites(true)
	err := store.Save(ctx, core.UserConfig{Neighborhood: "Centro"})
	assert.ErrorIs(t, err, memory.ErrWriteRejected)
	assert.Nil(t, store.Load(ctx))
}
