// Package cache stores rendered gauge artifacts.
//
// Rendering is cheap but not free: a 500px PNG with a 50-segment gradient
// takes a few milliseconds, a PDF needs an external process. The server and
// the dashboard command therefore cache artifact bytes keyed by a hash of
// everything that affects the output (see [Keyer]).
//
// Backends:
//   - [FileCache]: one JSON file per entry, for the CLI
//   - [MemoryCache]: bounded in-process map, the server default
//   - [RedisCache]: shared across server instances
//   - [NullCache]: disables caching
//
// Cache failures never fail a render; callers log them and carry on.
package cache

import (
	"context"
	"time"
)

// ArtifactTTL is how long rendered artifacts are kept.
const ArtifactTTL = 24 * time.Hour

// Cache is a byte store with per-entry expiration.
type Cache interface {
	// Get returns the value for key. A miss is (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl <= 0 means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
