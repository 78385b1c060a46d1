// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"
)

// ReportCache caches rendered report payloads for a short TTL. Reports are
// snapshot reads, so serving a slightly stale payload is acceptable; writes
// never go through the cache.
type ReportCache interface {
	// Get unmarshals the cached payload for key into dest and reports whether
	// a cached value was present.
	Get(ctx context.Context, key string, dest any) (bool, error)

	// Set stores the payload under key with the given TTL.
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}
