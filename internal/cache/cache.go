package cache

import (
	"context"
	"time"
)

// Cache TTLs. Feed generation is the expensive query, so its results are
// cached briefly; counts tolerate more staleness.
const (
	FeedTTL      = 5 * time.Minute
	FeedCountTTL = 10 * time.Minute
	MatchListTTL = 5 * time.Minute
)

// Store is a fail-open cache: a backend error on read degrades to a
// miss, an error on write or invalidation is logged and swallowed.
// Cached values are never authoritative.
type Store interface {
	// Get returns the cached value and whether it was present.
	Get(ctx context.Context, key string) (string, bool)
	// Set stores value under key with a TTL.
	Set(ctx context.Context, key, value string, ttl time.Duration)
	// Delete removes a single exact key.
	Delete(ctx context.Context, key string)
	// DeleteByPattern removes all keys matching a glob pattern and
	// returns how many were removed. Costs a SCAN; use Delete when the
	// key is known exactly.
	DeleteByPattern(ctx context.Context, pattern string) int
}
