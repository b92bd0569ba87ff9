package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	redis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRedis struct {
	keys map[string]time.Duration
	err  error
}

func (f *fakeRedis) SetNX(_ context.Context, key string, _ interface{}, ttl time.Duration) *redis.BoolCmd {
	if f.err != nil {
		return redis.NewBoolResult(false, f.err)
	}
	if _, ok := f.keys[key]; ok {
		return redis.NewBoolResult(false, nil)
	}
	f.keys[key] = ttl
	return redis.NewBoolResult(true, nil)
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, k := range keys {
		if _, ok := f.keys[k]; ok {
			delete(f.keys, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func TestIdempotencyStore(t *testing.T) {
	t.Run("second claim is rejected until released", func(t *testing.T) {
		r := &fakeRedis{keys: map[string]time.Duration{}}
		s := newIdempotencyStore(r, time.Minute)
		ctx := context.Background()

		ok, err := s.Claim(ctx, "abc")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, time.Minute, r.keys[keyPrefix+"abc"])

		ok, err = s.Claim(ctx, "abc")
		require.NoError(t, err)
		assert.False(t, ok)

		require.NoError(t, s.Release(ctx, "abc"))
		ok, err = s.Claim(ctx, "abc")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("default ttl", func(t *testing.T) {
		s := newIdempotencyStore(&fakeRedis{keys: map[string]time.Duration{}}, 0)
		assert.Equal(t, 10*time.Minute, s.ttl)
	})

	t.Run("redis error", func(t *testing.T) {
		s := newIdempotencyStore(&fakeRedis{err: errors.New("connection refused")}, time.Minute)
		_, err := s.Claim(context.Background(), "abc")
		assert.Error(t, err)
	})

	t.Run("nil store", func(t *testing.T) {
		var s *IdempotencyStore
		_, err := s.Claim(context.Background(), "abc")
		assert.Error(t, err)
		assert.NoError(t, s.Release(context.Background(), "abc"))
		assert.Nil(t, NewIdempotencyStore(nil, time.Minute))
	})
}
