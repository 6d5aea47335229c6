package domain

import (
	"context"
	"time"
)

// CacheError represents an error originating from the cache.
type CacheError string

func (e CacheError) Error() string {
	return string(e)
}

// ErrCacheMiss is returned when a key is not found in the cache.
const ErrCacheMiss = CacheError("cache: key not found")

// Cache is the port for the key/value cache. String operations back the
// embedding cache; hash operations back the hint cache, which stores one
// field per cached hint under a single key.
type Cache interface {
	// Get returns the value stored at key, or ErrCacheMiss.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value at key. A zero expiration means no expiry.
	Set(ctx context.Context, key string, value string, expiration time.Duration) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// HGetAll returns every field/value pair of the hash at key. An
	// absent key yields an empty map.
	HGetAll(ctx context.Context, key string) (map[string]string, error)

	// HSet sets one field of the hash at key.
	HSet(ctx context.Context, key string, field string, value string) error

	// Expire sets a time-to-live on key.
	Expire(ctx context.Context, key string, expiration time.Duration) error
}
