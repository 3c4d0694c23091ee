package cache

import (
	"context"       // Context for Redis operations
	"encoding/json" // JSON encoding/decoding
	"time"          // Time durations

	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// Cache stores JSON encoded values under string keys
type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Incr(ctx context.Context, key string) (int64, error)
}

// Redis is a Cache backed by a Redis server
type Redis struct {
	rdb *redis.Client
}

// NewRedis wraps a connected Redis client
func NewRedis(rdb *redis.Client) *Redis {
	return &Redis{rdb: rdb}
}

// Get retrieves a value from Redis and unmarshals it into dest
func (r *Redis) Get(ctx context.Context, key string, dest any) (bool, error) {
	val, err := r.rdb.Get(ctx, key).Result() // Get value from Redis
	if err == redis.Nil {
		return false, nil // Key does not exist
	} else if err != nil {
		return false, err // Other Redis error
	}
	return true, json.Unmarshal([]byte(val), dest) // Unmarshal JSON into dest
}

// Set stores a value in Redis with a TTL
func (r *Redis) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	b, err := json.Marshal(value) // Marshal value to JSON
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, key, b, ttl).Err()
}

// Delete removes keys from Redis
func (r *Redis) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return r.rdb.Del(ctx, keys...).Err()
}

// Incr atomically increments the integer stored at key
func (r *Redis) Incr(ctx context.Context, key string) (int64, error) {
	return r.rdb.Incr(ctx, key).Result()
}

// Nop is used when no Redis server is configured
type Nop struct{}

func (Nop) Get(context.Context, string, any) (bool, error)        { return false, nil }
func (Nop) Set(context.Context, string, any, time.Duration) error { return nil }
func (Nop) Delete(context.Context, ...string) error               { return nil }
func (Nop) Incr(context.Context, string) (int64, error)           { return 0, nil }

// Load returns the cached value under key, or calls load and caches its result.
// Cache failures are logged and never fail the request.
func Load[T any](ctx context.Context, c Cache, key string, ttl time.Duration, load func() (T, error)) (T, error) {
	var cached T
	found, err := c.Get(ctx, key, &cached)
	if err != nil {
		logrus.WithFields(logrus.Fields{"key": key, "error": err.Error()}).Warn("Cache read failed")
	} else if found {
		return cached, nil
	}
	v, err := load()
	if err != nil {
		return v, err
	}
	if err := c.Set(ctx, key, v, ttl); err != nil {
		logrus.WithFields(logrus.Fields{"key": key, "error": err.Error()}).Warn("Cache write failed")
	}
	return v, nil
}
