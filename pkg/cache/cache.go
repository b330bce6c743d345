// Package cache stores optimization results keyed by the content of the
// input, so repeated runs over the same mesh skip the scheduler entirely.
//
// The CLI uses a [FileCache] under the user's XDG cache directory;
// [NullCache] disables caching without branching at every call site.
package cache

import (
	"context"
	"time"
)

// Cache is the storage interface for optimization results.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}
