package cache

import (
	"context"
	"time"
)

// Cache is the read-through cache used by repositories.
// Implementations must treat a missing key as (false, nil), not an error.
type Cache interface {
	// Get loads key into dest
	// Returns: (found bool, error)
	// - found = true: cache hit, dest has been populated
	// - found = false: cache miss, dest is untouched
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value under key with a TTL.
	// Strings and byte slices are stored as-is, anything else as JSON.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys
	Delete(ctx context.Context, keys ...string) error

	// Ping checks the connection
	Ping(ctx context.Context) error
}
