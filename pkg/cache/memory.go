package cache

import (
	"context"
	"time"

	expirable "github.com/go-pkgz/expirable-cache/v3"
)

// MemoryStore implements Store in process memory, used when no redis is configured
type MemoryStore struct {
	cache expirable.Cache[string, []byte]
}

// NewMemoryStore makes in-memory store limited to maxKeys, zero means unlimited
func NewMemoryStore(maxKeys int) *MemoryStore {
	c := expirable.NewCache[string, []byte]().WithLRU()
	if maxKeys > 0 {
		c = c.WithMaxKeys(maxKeys)
	}
	return &MemoryStore{cache: c}
}

// Get returns value for the key
func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := s.cache.Get(key)
	if !ok {
		return nil, false, nil
	}
	return v, true, nil
}

// Set stores value with ttl
func (s *MemoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	s.cache.Set(key, value, ttl)
	return nil
}

// Delete removes keys
func (s *MemoryStore) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		s.cache.Invalidate(k)
	}
	return nil
}
