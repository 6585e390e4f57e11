package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrDisabled is reported by Ping when no cache backend is configured.
var ErrDisabled = errors.New("cache disabled")

// Cache stores JSON-encoded lookup lists.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
	Delete(ctx context.Context, keys ...string) error
	Ping(ctx context.Context) error
}

// RedisCache keeps entries in redis under a common prefix with a fixed TTL.
type RedisCache struct {
	Client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedis connects to redis with short timeouts.
func NewRedis(addr, password string, db int, ttl time.Duration) *RedisCache {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  1 * time.Second,
		WriteTimeout: 1 * time.Second,
	})
	return NewRedisFromClient(client, ttl)
}

func NewRedisFromClient(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, prefix: "hr:", ttl: ttl}
}

func (r *RedisCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	b, err := r.Client.Get(ctx, r.prefix+key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(b, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (r *RedisCache) Set(ctx context.Context, key string, value interface{}) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.Client.Set(ctx, r.prefix+key, b, r.ttl).Err()
}

func (r *RedisCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = r.prefix + k
	}
	return r.Client.Del(ctx, full...).Err()
}

func (r *RedisCache) Ping(ctx context.Context) error {
	return r.Client.Ping(ctx).Err()
}

func (r *RedisCache) Close() error {
	return r.Client.Close()
}

// Nop is used when REDIS_ADDR is empty: every lookup misses.
type Nop struct{}

func (Nop) Get(context.Context, string, interface{}) (bool, error) { return false, nil }
func (Nop) Set(context.Context, string, interface{}) error         { return nil }
func (Nop) Delete(context.Context, ...string) error                { return nil }
func (Nop) Ping(context.Context) error                             { return ErrDisabled }
