package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/singleflight"
)

// maxLoadTime bounds a shared load once it no longer follows the caller's context
const maxLoadTime = time.Minute

// Layer caches JSON-encoded query results. Store errors on read are treated as a miss and
// errors on write are logged and dropped. Concurrent misses of the same key are coalesced.
type Layer struct {
	store   Store
	timeout time.Duration
	group   singleflight.Group
}

// NewLayer makes cache layer over the store, each store call is bounded by timeout
func NewLayer(store Store, timeout time.Duration) *Layer {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &Layer{store: store, timeout: timeout}
}

// Fetch returns cached value for the key or calls load and caches its result with ttl.
// Errors of load are returned and never cached. Nil layer calls load directly.
func Fetch[T any](ctx context.Context, l *Layer, key string, ttl time.Duration, load func(context.Context) (T, error)) (T, error) {
	if l == nil {
		return load(ctx)
	}

	if data, ok := l.get(ctx, key); ok {
		var v T
		err := json.Unmarshal(data, &v)
		if err == nil {
			return v, nil
		}
		lgr.Printf("[WARN] can't decode cached %s, %v", key, err)
	}

	// shared load is detached from the first caller, each waiter gives up on its own context
	ch := l.group.DoChan(key, func() (any, error) {
		lctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), maxLoadTime)
		defer cancel()
		v, err := load(lctx)
		if err != nil {
			return nil, err
		}
		l.set(lctx, key, v, ttl)
		return v, nil
	})

	var zero T
	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case r := <-ch:
		if r.Err != nil {
			return zero, r.Err
		}
		return r.Val.(T), nil
	}
}

// Delete removes keys from the store
func (l *Layer) Delete(ctx context.Context, keys ...string) error {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()
	if err := l.store.Delete(ctx, keys...); err != nil {
		return fmt.Errorf("delete cache keys: %w", err)
	}
	return nil
}

func (l *Layer) get(ctx context.Context, key string) ([]byte, bool) {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()
	data, ok, err := l.store.Get(ctx, key)
	if err != nil {
		lgr.Printf("[WARN] cache get %s failed, treated as miss: %v", key, err)
		return nil, false
	}
	return data, ok
}

func (l *Layer) set(ctx context.Context, key string, v any, ttl time.Duration) {
	data, err := json.Marshal(v)
	if err != nil {
		lgr.Printf("[WARN] can't encode %s for cache, %v", key, err)
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), l.timeout)
	defer cancel()
	if err := l.store.Set(ctx, key, data, ttl); err != nil {
		lgr.Printf("[WARN] cache set %s failed, %v", key, err)
	}
}
