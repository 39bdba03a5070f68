// Package cache provides a time-bounded cache of query results over a pluggable key-value store.
// Cache failures never fail queries, a broken store degrades to direct reads.
package cache

import (
	"context"
	"time"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store

// Store is a key-value store with per-key expiration
type Store interface {
	// Get returns value for the key, false if the key is missing or expired
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}
