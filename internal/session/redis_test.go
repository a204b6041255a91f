package session

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisStore(t *testing.T, ttl time.Duration) (*Redis, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedis(client, ttl), mr
}

func TestRedisCreateAndGet(t *testing.T) {
	store, _ := newRedisStore(t, time.Hour)
	ctx := context.Background()

	state, err := store.Create(ctx, "signup")
	require.NoError(t, err)
	require.NotEmpty(t, state.ID)

	got, err := store.Get(ctx, state.ID)
	require.NoError(t, err)
	assert.Equal(t, "signup", got.Kind)
	assert.Equal(t, 0, got.Step)
}

func TestRedisGetUnknown(t *testing.T) {
	store, _ := newRedisStore(t, time.Hour)

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisSaveRoundTrip(t *testing.T) {
	store, _ := newRedisStore(t, time.Hour)
	ctx := context.Background()

	state, err := store.Create(ctx, "booking")
	require.NoError(t, err)

	state.Step = 2
	state.Form = map[string]string{"service": "facial"}
	require.NoError(t, store.Save(ctx, state))

	got, err := store.Get(ctx, state.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Step)
	assert.Equal(t, "facial", got.Form["service"])
}

func TestRedisExpiry(t *testing.T) {
	store, mr := newRedisStore(t, time.Minute)
	ctx := context.Background()

	state, err := store.Create(ctx, "signup")
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	_, err = store.Get(ctx, state.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisDelete(t *testing.T) {
	store, _ := newRedisStore(t, time.Hour)
	ctx := context.Background()

	state, err := store.Create(ctx, "signup")
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, state.ID))
	_, err = store.Get(ctx, state.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
