package storage

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	var store Storage = NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Ping(ctx))

	id := uuid.New()
	snap := testSnapshot(id)
	require.NoError(t, store.SaveSession(ctx, id, snap))

	loaded, err := store.LoadSession(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, snap.Characters, loaded.Characters)

	// The stored copy is isolated from later mutations.
	snap.PlayerName = "Someone Else"
	loaded, err = store.LoadSession(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Alex", loaded.PlayerName)
}

func TestMemoryStoreNotFound(t *testing.T) {
	store := NewMemoryStore()

	loaded, err := store.LoadSession(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestMemoryStoreDelete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	id := uuid.New()
	require.NoError(t, store.SaveSession(ctx, id, testSnapshot(id)))
	require.NoError(t, store.DeleteSession(ctx, id))

	loaded, err := store.LoadSession(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}
