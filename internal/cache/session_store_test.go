package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"recipebox/internal/cache"
	"recipebox/internal/testutil"
)

func TestSessionStore_SaveLoadDelete(t *testing.T) {
	ctx := context.Background()
	client, _ := testutil.NewRedis(t)
	store := cache.NewSessionStore(client, 0)

	userID, ok, err := store.Load(ctx, "missing")
	require.NoError(t, err)
	require.False(t, ok)
	require.Zero(t, userID)

	require.NoError(t, store.Save(ctx, "abc", 42))

	userID, ok, err = store.Load(ctx, "abc")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, uint(42), userID)

	existed, err := store.Delete(ctx, "abc")
	require.NoError(t, err)
	require.True(t, existed)

	existed, err = store.Delete(ctx, "abc")
	require.NoError(t, err)
	require.False(t, existed)

	_, ok, err = store.Load(ctx, "abc")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestSessionStore_NoTTLByDefault(t *testing.T) {
	ctx := context.Background()
	client, srv := testutil.NewRedis(t)
	store := cache.NewSessionStore(client, 0)

	require.NoError(t, store.Save(ctx, "abc", 1))
	require.Equal(t, time.Duration(0), srv.TTL("recipebox:session:abc"))
}

func TestSessionStore_TTLExpires(t *testing.T) {
	ctx := context.Background()
	client, srv := testutil.NewRedis(t)
	store := cache.NewSessionStore(client, time.Minute)

	require.NoError(t, store.Save(ctx, "abc", 1))
	require.Equal(t, time.Minute, srv.TTL("recipebox:session:abc"))

	srv.FastForward(2 * time.Minute)

	_, ok, err := store.Load(ctx, "abc")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestSessionStore_CorruptValue(t *testing.T) {
	ctx := context.Background()
	client, srv := testutil.NewRedis(t)
	store := cache.NewSessionStore(client, 0)

	require.NoError(t, srv.Set("recipebox:session:abc", "not-a-number"))

	_, _, err := store.Load(ctx, "abc")
	require.Error(t, err)
}
