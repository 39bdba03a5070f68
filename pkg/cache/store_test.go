package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(2)

	_, ok, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "a", []byte("1"), time.Minute))
	v, ok, err := s.Get(ctx, "a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("1"), v)

	require.NoError(t, s.Set(ctx, "short", []byte("2"), 10*time.Millisecond))
	time.Sleep(20 * time.Millisecond)
	_, ok, err = s.Get(ctx, "short")
	require.NoError(t, err)
	assert.False(t, ok, "expired")

	require.NoError(t, s.Delete(ctx, "a", "nope"))
	_, ok, _ = s.Get(ctx, "a")
	assert.False(t, ok)

	// max keys enforced
	require.NoError(t, s.Set(ctx, "x", []byte("x"), time.Minute))
	require.NoError(t, s.Set(ctx, "y", []byte("y"), time.Minute))
	require.NoError(t, s.Set(ctx, "z", []byte("z"), time.Minute))
	_, ok, _ = s.Get(ctx, "x")
	assert.False(t, ok, "oldest evicted")
}

func TestRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()

	s, err := NewRedisStore(ctx, RedisOpts{Addr: mr.Addr()})
	require.NoError(t, err)
	defer s.Close()

	_, ok, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "hot_keywords:50", []byte(`{"total":1}`), 10*time.Minute))
	v, ok, err := s.Get(ctx, "hot_keywords:50")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"total":1}`, string(v))
	assert.Equal(t, 10*time.Minute, mr.TTL("hot_keywords:50"))

	mr.FastForward(11 * time.Minute)
	_, ok, err = s.Get(ctx, "hot_keywords:50")
	require.NoError(t, err)
	assert.False(t, ok, "expired")

	require.NoError(t, s.Set(ctx, "a", []byte("1"), time.Minute))
	require.NoError(t, s.Set(ctx, "b", []byte("2"), time.Minute))
	require.NoError(t, s.Delete(ctx, "a", "b", "c"))
	assert.False(t, mr.Exists("a"))
	assert.False(t, mr.Exists("b"))
	require.NoError(t, s.Delete(ctx))

	mr.SetError("LOADING server is loading")
	_, _, err = s.Get(ctx, "a")
	require.Error(t, err)
	require.Error(t, s.Set(ctx, "a", []byte("1"), time.Minute))
	mr.SetError("")
}

func TestRedisStore_ConnectFailure(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := NewRedisStore(ctx, RedisOpts{Addr: "127.0.0.1:1"})
	require.Error(t, err)
}

func TestLayer_WithRedisDown(t *testing.T) {
	mr := miniredis.RunT(t)
	s, err := NewRedisStore(context.Background(), RedisOpts{Addr: mr.Addr()})
	require.NoError(t, err)
	defer s.Close()
	layer := NewLayer(s, 200*time.Millisecond)

	mr.Close() // redis goes away after start
	calls := 0
	for i := 0; i < 2; i++ {
		res, err := Fetch(context.Background(), layer, "k", time.Minute, func(context.Context) (int, error) {
			calls++
			return 42, nil
		})
		require.NoError(t, err)
		assert.Equal(t, 42, res)
	}
	assert.Equal(t, 2, calls, "every call goes to the loader")
}
