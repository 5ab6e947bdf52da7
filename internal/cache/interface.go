package cache

import (
	"context"
	"time"
)

type Cache interface {
	// Get decodes the cached value into dest and reports whether the key was present.
	Get(ctx context.Context, key string, dest any) (bool, error)
	// Set stores value as JSON. A non-positive ttl uses the configured default.
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

const (
	ProductKeyPrefix = "product"
)

func Key(prefix string, id string) string {
	return prefix + ":" + id
}

// ProductKey is the cache key for a product looked up by slug.
func ProductKey(slug string) string {
	return Key(ProductKeyPrefix, slug)
}
