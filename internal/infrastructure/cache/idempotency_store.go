package cache

import (
	"context"
	"errors"
	"time"

	redis "github.com/redis/go-redis/v9"
)

const keyPrefix = "petsit:idempotency:"

// redisClient is the part of *redis.Client used by the store.
type redisClient interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// IdempotencyStore remembers Idempotency-Key headers for a TTL so a repeated submit of the same
// lifecycle request (double click, client retry) is rejected while the first one is live.
type IdempotencyStore struct {
	client redisClient
	ttl    time.Duration
}

func NewIdempotencyStore(client *redis.Client, ttl time.Duration) *IdempotencyStore {
	if client == nil {
		return nil
	}
	return newIdempotencyStore(client, ttl)
}

func newIdempotencyStore(client redisClient, ttl time.Duration) *IdempotencyStore {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &IdempotencyStore{client: client, ttl: ttl}
}

// Claim records key. It returns false when the key was already claimed and has not expired.
func (s *IdempotencyStore) Claim(ctx context.Context, key string) (bool, error) {
	if s == nil || s.client == nil {
		return false, errors.New("idempotency store not configured")
	}
	if key == "" {
		return false, errors.New("idempotency key is empty")
	}
	return s.client.SetNX(ctx, keyPrefix+key, time.Now().UTC().Format(time.RFC3339), s.ttl).Result()
}

// Release forgets key so the request can be retried, used when the first attempt failed.
func (s *IdempotencyStore) Release(ctx context.Context, key string) error {
	if s == nil || s.client == nil || key == "" {
		return nil
	}
	return s.client.Del(ctx, keyPrefix+key).Err()
}

// NewRedisClient opens a client and checks the connection.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}
