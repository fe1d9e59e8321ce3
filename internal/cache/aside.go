package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

const (
	PostKeyPrefix    = "post:%d"
	PostsListKey     = "posts:recent"
	GroupsListKey    = "groups:all"
	GroupPostsPrefix = "group:%d:posts"
)

const (
	PostTTL  = 30 * time.Minute
	ListTTL  = 1 * time.Minute
	GroupTTL = 10 * time.Minute
)

func PostKey(postID uint) string {
	return fmt.Sprintf(PostKeyPrefix, postID)
}

func GroupPostsKey(groupID uint) string {
	return fmt.Sprintf(GroupPostsPrefix, groupID)
}

// Aside implements the cache-aside pattern: return the cached value for key
// if present, otherwise call fetch (which must fill dest) and store the
// result. A missing or unreachable Redis degrades to a plain fetch.
func Aside(ctx context.Context, key string, dest any, ttl time.Duration, fetch func() error) error {
	if client == nil {
		return fetch()
	}

	if data, err := client.Get(ctx, key).Bytes(); err == nil {
		if jsonErr := json.Unmarshal(data, dest); jsonErr == nil {
			return nil
		}
		// Corrupt entry: drop it and fall through to fetch.
		client.Del(ctx, key)
	}

	if err := fetch(); err != nil {
		return err
	}

	if data, err := json.Marshal(dest); err == nil {
		client.Set(ctx, key, data, ttl)
	}
	return nil
}

// Invalidate removes a single key from the cache.
func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidatePost(ctx context.Context, postID uint) {
	Invalidate(ctx, PostKey(postID))
}

func InvalidatePostsList(ctx context.Context) {
	Invalidate(ctx, PostsListKey)
}

func InvalidateGroupsList(ctx context.Context) {
	Invalidate(ctx, GroupsListKey)
}
