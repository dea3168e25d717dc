// Package cache stores build artifacts between runs.
//
// Three backends implement [Cache]:
//
//   - [FileCache]: one JSON file per entry under the user cache directory
//   - [RedisCache]: a shared Redis instance, selected with WTFCESKO_REDIS_URL
//   - [NullCache]: caching disabled
//
// Keys come from a [Keyer] so every backend sees the same key layout.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with optional expiry.
// A miss is reported as (nil, false, nil), never as an error.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Clearer is implemented by caches that can drop every entry they own.
type Clearer interface {
	Clear(ctx context.Context) error
}

// Default lifetimes.
const (
	// TTLSite applies to rendered pages and bundles. Inputs are part of the
	// key, so the TTL only bounds disk usage.
	TTLSite = 7 * 24 * time.Hour

	// TTLArtifact applies to secondary artifacts such as the sitemap.
	TTLArtifact = 7 * 24 * time.Hour
)
