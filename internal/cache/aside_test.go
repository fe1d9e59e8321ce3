package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(nil) })
	return mr
}

func TestAside_FetchesOnceThenServesFromCache(t *testing.T) {
	setupTestRedis(t)
	ctx := context.Background()

	calls := 0
	var got []string
	fetch := func() error {
		calls++
		got = []string{"first", "second"}
		return nil
	}

	require.NoError(t, Aside(ctx, "test:list", &got, time.Minute, fetch))
	assert.Equal(t, 1, calls)
	assert.Equal(t, []string{"first", "second"}, got)

	got = nil
	require.NoError(t, Aside(ctx, "test:list", &got, time.Minute, fetch))
	assert.Equal(t, 1, calls, "second read should come from cache")
	assert.Equal(t, []string{"first", "second"}, got)
}

func TestAside_InvalidateForcesRefetch(t *testing.T) {
	setupTestRedis(t)
	ctx := context.Background()

	calls := 0
	var got int
	fetch := func() error {
		calls++
		got = calls
		return nil
	}

	require.NoError(t, Aside(ctx, "test:counter", &got, time.Minute, fetch))
	Invalidate(ctx, "test:counter")
	require.NoError(t, Aside(ctx, "test:counter", &got, time.Minute, fetch))
	assert.Equal(t, 2, calls)
}

func TestAside_ExpiredEntryRefetches(t *testing.T) {
	mr := setupTestRedis(t)
	ctx := context.Background()

	calls := 0
	var got string
	fetch := func() error {
		calls++
		got = "value"
		return nil
	}

	require.NoError(t, Aside(ctx, "test:ttl", &got, time.Minute, fetch))
	mr.FastForward(2 * time.Minute)
	require.NoError(t, Aside(ctx, "test:ttl", &got, time.Minute, fetch))
	assert.Equal(t, 2, calls)
}

func TestAside_NoClientDegradesToFetch(t *testing.T) {
	SetClient(nil)

	calls := 0
	var got string
	fetch := func() error {
		calls++
		got = "direct"
		return nil
	}

	require.NoError(t, Aside(context.Background(), "test:none", &got, time.Minute, fetch))
	require.NoError(t, Aside(context.Background(), "test:none", &got, time.Minute, fetch))
	assert.Equal(t, 2, calls)
	assert.Equal(t, "direct", got)
}
