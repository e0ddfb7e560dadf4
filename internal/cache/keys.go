package cache

import (
	"context"
	"fmt"
	"time"
)

// TTLs are short: post mutations invalidate eagerly, so these only bound
// staleness if an invalidation is lost.
const (
	PostListTTL = 30 * time.Second
	UserListTTL = 30 * time.Second
)

// PostListKey is the cache key for a page of the global posts listing.
func PostListKey(limit, offset int) string {
	return fmt.Sprintf("posts:list:%d:%d", limit, offset)
}

// UserPostsKey is the cache key for a page of one user's posts.
func UserPostsKey(userID uint, limit, offset int) string {
	return fmt.Sprintf("posts:user:%d:%d:%d", userID, limit, offset)
}

// UserListKey is the cache key for a page of the users listing.
func UserListKey(limit, offset int) string {
	return fmt.Sprintf("users:list:%d:%d", limit, offset)
}

// InvalidatePosts drops all post listing entries, and the user listings with
// them: each user row carries a post_count that post mutations change.
func InvalidatePosts(ctx context.Context) {
	dropByPattern(ctx, "posts:*")
	dropByPattern(ctx, "users:*")
}

// InvalidateUsers drops the cached user listings, e.g. after a registration.
func InvalidateUsers(ctx context.Context) {
	dropByPattern(ctx, "users:*")
}

// Pages are few, so a single SCAN pass is enough.
func dropByPattern(ctx context.Context, pattern string) {
	if client == nil {
		return
	}
	iter := client.Scan(ctx, 0, pattern, 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	Delete(ctx, keys...)
}
