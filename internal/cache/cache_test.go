package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(nil) })
	return mr
}

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestAsideFetchesOnMissAndServesFromCache(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	fetches := 0
	fetch := func(dest *payload) func() error {
		return func() error {
			fetches++
			*dest = payload{Name: "Ada", Count: 1}
			return nil
		}
	}

	var got payload
	require.NoError(t, Aside(ctx, "k", &got, PostListTTL, fetch(&got)))
	assert.Equal(t, 1, fetches)
	assert.Equal(t, "Ada", got.Name)

	var again payload
	require.NoError(t, Aside(ctx, "k", &again, PostListTTL, fetch(&again)))
	assert.Equal(t, 1, fetches, "second read must come from cache")
	assert.Equal(t, got, again)
}

func TestAsideWithoutClientAlwaysFetches(t *testing.T) {
	SetClient(nil)
	ctx := context.Background()

	fetches := 0
	var got payload
	for i := 0; i < 2; i++ {
		require.NoError(t, Aside(ctx, "k", &got, PostListTTL, func() error {
			fetches++
			return nil
		}))
	}
	assert.Equal(t, 2, fetches)
}

func TestInvalidatePostsDropsAllListingKeys(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, PostListKey(20, 0), []string{"x"}, PostListTTL))
	require.NoError(t, SetJSON(ctx, UserPostsKey(7, 20, 0), []string{"y"}, PostListTTL))
	require.NoError(t, SetJSON(ctx, UserListKey(20, 0), []string{"z"}, UserListTTL))
	require.NoError(t, SetJSON(ctx, "unrelated", "keep", PostListTTL))

	InvalidatePosts(ctx)

	assert.False(t, mr.Exists(PostListKey(20, 0)))
	assert.False(t, mr.Exists(UserPostsKey(7, 20, 0)))
	// User listings embed post_count, so post mutations drop them too.
	assert.False(t, mr.Exists(UserListKey(20, 0)))
	assert.True(t, mr.Exists("unrelated"))
}

func TestInvalidateUsersKeepsPostListings(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, PostListKey(20, 0), []string{"x"}, PostListTTL))
	require.NoError(t, SetJSON(ctx, UserListKey(20, 0), []string{"z"}, UserListTTL))

	InvalidateUsers(ctx)

	assert.True(t, mr.Exists(PostListKey(20, 0)))
	assert.False(t, mr.Exists(UserListKey(20, 0)))
}
