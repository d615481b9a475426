package mongodb

import (
	"context"
	"time"
)

// CacheService is the slice of the cache the repositories need. pkg/cache
// provides the Redis implementation; passing nil disables caching.
type CacheService interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}
