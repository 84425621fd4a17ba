// Package cache stores rendered artifacts so that repeated runs with the
// same inputs skip rendering.
//
// Keys are built with [Key] from any JSON-serializable parts, typically the
// resolved panel configuration plus the output format:
//
//	c, err := cache.NewFileCache(dir)
//	key := cache.Key("artifact", cfg, "pdf")
//	if data, hit, _ := c.Get(ctx, key); hit {
//	    return data
//	}
//
// [NullCache] disables caching without changing call sites.
package cache

import (
	"context"
	"time"
)

// TTLArtifact is how long rendered artifacts stay valid.
const TTLArtifact = 7 * 24 * time.Hour

// Cache is a byte store with expiring entries.
type Cache interface {
	// Get returns the stored data and whether the key was present and fresh.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of 0 never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
