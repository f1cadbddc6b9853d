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

type profile struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	Client = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		Close()
	})
	return mr
}

func TestGetSetJSON(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	var missing profile
	found, err := GetJSON(ctx, UserProfileKey(1), &missing)
	require.NoError(t, err)
	assert.False(t, found)

	want := profile{ID: 1, Username: "testuser"}
	require.NoError(t, SetJSON(ctx, UserProfileKey(1), want, time.Minute))

	var got profile
	found, err = GetJSON(ctx, UserProfileKey(1), &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, want, got)
}

func TestCacheAside(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	calls := 0
	fetch := func(dest *profile) func() error {
		return func() error {
			calls++
			*dest = profile{ID: 2, Username: "testuser2"}
			return nil
		}
	}

	var first profile
	require.NoError(t, CacheAside(ctx, UserProfileKey(2), &first, time.Minute, fetch(&first)))
	assert.Equal(t, 1, calls)
	assert.Equal(t, "testuser2", first.Username)

	// Second read is served from the cache.
	var second profile
	require.NoError(t, CacheAside(ctx, UserProfileKey(2), &second, time.Minute, fetch(&second)))
	assert.Equal(t, 1, calls)
	assert.Equal(t, first, second)
}

func TestInvalidate(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, UserProfileKey(3), profile{ID: 3}, time.Minute))
	Invalidate(ctx, UserProfileKey(3))

	var got profile
	found, err := GetJSON(ctx, UserProfileKey(3), &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestHelpersNoopWithoutClient(t *testing.T) {
	Client = nil

	ctx := context.Background()
	var got profile
	found, err := GetJSON(ctx, "whatever", &got)
	require.NoError(t, err)
	assert.False(t, found)

	assert.NoError(t, SetJSON(ctx, "whatever", got, time.Minute))
	Invalidate(ctx, "whatever")
}
