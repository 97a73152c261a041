package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultCacheTTL = time.Minute

// listingsKey caches the rendered GET /places payload.
const listingsKey = "cache:places:list"

// ListingCache is a read-through cache for the place listing, invalidated on
// every place mutation. A nil *ListingCache is a valid no-op cache, so the
// server runs unchanged when Redis is not configured.
type ListingCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewListingCache wraps the given Redis client. A non-positive ttl falls
// back to the default.
func NewListingCache(client *redis.Client, ttl time.Duration) *ListingCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &ListingCache{client: client, ttl: ttl}
}

// Get returns the cached listing payload and whether it was present.
func (c *ListingCache) Get(ctx context.Context) ([]byte, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	payload, err := c.client.Get(ctx, listingsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return payload, true, nil
}

// Set stores the listing payload for the configured TTL.
func (c *ListingCache) Set(ctx context.Context, payload []byte) error {
	if c == nil {
		return nil
	}
	return c.client.Set(ctx, listingsKey, payload, c.ttl).Err()
}

// Invalidate drops the cached listing. Called after any place mutation.
func (c *ListingCache) Invalidate(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.client.Del(ctx, listingsKey).Err()
}
