package session

import (
	"context"
	"testing"
	"time"

	"wednest/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStore(client, time.Hour), mr
}

func TestSessionRoundTrip(t *testing.T) {
	store, _ := setupStore(t)

	sess := &models.Session{
		UserID:    "couple-1",
		AuthToken: "token-abc",
		Role:      models.RoleCouple,
		Email:     "pair@example.com",
	}
	require.NoError(t, store.Create(context.Background(), sess))
	assert.False(t, sess.CreatedAt.IsZero())

	loaded, err := store.Get(context.Background(), "token-abc")
	require.NoError(t, err)
	assert.Equal(t, "couple-1", loaded.UserID)
	assert.Equal(t, models.RoleCouple, loaded.Role)
	assert.True(t, loaded.IsCouple())
}

func TestGetUnknownTokenIsNotFound(t *testing.T) {
	store, _ := setupStore(t)

	_, err := store.Get(context.Background(), "never-issued")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestCreateRequiresToken(t *testing.T) {
	store, _ := setupStore(t)

	assert.Error(t, store.Create(context.Background(), nil))
	assert.Error(t, store.Create(context.Background(), &models.Session{UserID: "couple-1"}))
}

func TestDeleteEndsSession(t *testing.T) {
	store, _ := setupStore(t)

	sess := &models.Session{UserID: "couple-1", AuthToken: "token-abc", Role: models.RoleCouple}
	require.NoError(t, store.Create(context.Background(), sess))
	require.NoError(t, store.Delete(context.Background(), "token-abc"))

	_, err := store.Get(context.Background(), "token-abc")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestGetSlidesExpiry(t *testing.T) {
	store, mr := setupStore(t)

	sess := &models.Session{UserID: "couple-1", AuthToken: "token-abc", Role: models.RoleCouple}
	require.NoError(t, store.Create(context.Background(), sess))

	mr.FastForward(45 * time.Minute)
	_, err := store.Get(context.Background(), "token-abc")
	require.NoError(t, err)

	// The read above reset the clock; the session survives past the
	// original expiry.
	mr.FastForward(45 * time.Minute)
	_, err = store.Get(context.Background(), "token-abc")
	assert.NoError(t, err)
}

func TestRawTokenNeverStored(t *testing.T) {
	store, mr := setupStore(t)

	sess := &models.Session{UserID: "couple-1", AuthToken: "token-abc", Role: models.RoleCouple}
	require.NoError(t, store.Create(context.Background(), sess))

	for _, key := range mr.Keys() {
		assert.NotContains(t, key, "token-abc")
	}
}
