package storage

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JimenezCarmona8063/MYXITECH/internal/engine"
	"github.com/JimenezCarmona8063/MYXITECH/pkg/geom"
	"github.com/JimenezCarmona8063/MYXITECH/pkg/sim"
	"github.com/JimenezCarmona8063/MYXITECH/pkg/story"
)

func testRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store, err := NewRedisStore("redis://"+mr.Addr(), time.Hour, logger)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store, mr
}

func testSnapshot(id uuid.UUID) *engine.SessionSnapshot {
	target := geom.Vec{X: 360, Y: 100}
	st := story.NewState()
	st.Elapsed = 13.5
	st.ClassInSession = true
	st.PlayerRole = sim.RoleStudent
	return &engine.SessionSnapshot{
		ID:         id,
		SavedAt:    time.Now().UTC(),
		PlayerName: "Alex",
		Story:      *st,
		Characters: map[string]sim.Snapshot{
			"Alex": {
				Position:     geom.Vec{X: 580, Y: 240},
				CurrentIndex: 1,
				WaitTimer:    2.25,
				Target:       &target,
				Status:       map[string]bool{"Attended class": true, "Ate lunch": false},
				Phase:        sim.PhaseSeeking,
			},
		},
	}
}

func TestNewRedisStoreBadURL(t *testing.T) {
	_, err := NewRedisStore("not-a-url", time.Hour, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse redis url")
}

func TestSaveAndLoadSession(t *testing.T) {
	store, _ := testRedisStore(t)
	ctx := context.Background()

	id := uuid.New()
	snap := testSnapshot(id)
	require.NoError(t, store.SaveSession(ctx, id, snap))

	loaded, err := store.LoadSession(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, loaded)

	assert.Equal(t, snap.ID, loaded.ID)
	assert.Equal(t, snap.PlayerName, loaded.PlayerName)
	assert.Equal(t, snap.Story.Elapsed, loaded.Story.Elapsed)
	assert.Equal(t, snap.Story.PlayerRole, loaded.Story.PlayerRole)
	assert.Equal(t, snap.Characters, loaded.Characters)
}

func TestLoadSessionNotFound(t *testing.T) {
	store, _ := testRedisStore(t)

	loaded, err := store.LoadSession(context.Background(), uuid.New())
	require.NoError(t, err, "a missing session is not an error")
	assert.Nil(t, loaded)
}

func TestSaveSessionSetsTTL(t *testing.T) {
	store, mr := testRedisStore(t)
	ctx := context.Background()

	id := uuid.New()
	require.NoError(t, store.SaveSession(ctx, id, testSnapshot(id)))

	assert.Equal(t, time.Hour, mr.TTL(sessionKey(id)))

	// After the TTL passes the session is gone.
	mr.FastForward(2 * time.Hour)
	loaded, err := store.LoadSession(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestDeleteSession(t *testing.T) {
	store, _ := testRedisStore(t)
	ctx := context.Background()

	id := uuid.New()
	require.NoError(t, store.SaveSession(ctx, id, testSnapshot(id)))
	require.NoError(t, store.DeleteSession(ctx, id))

	loaded, err := store.LoadSession(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, loaded)

	// Deleting a session that never existed is fine.
	assert.NoError(t, store.DeleteSession(ctx, uuid.New()))
}

func TestPing(t *testing.T) {
	store, mr := testRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Ping(ctx))

	mr.Close()
	assert.Error(t, store.Ping(ctx))
}

func TestLoadSessionCorruptPayload(t *testing.T) {
	store, mr := testRedisStore(t)

	id := uuid.New()
	require.NoError(t, mr.Set(sessionKey(id), "not json"))

	_, err := store.LoadSession(context.Background(), id)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmarshal")
}
