package cart

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// cartTTL bounds how long an abandoned cart survives in Redis. Matches
// the session cookie lifetime.
const cartTTL = 30 * 24 * time.Hour

// RedisStorage persists carts in Redis. Selected by config when a redis
// address is set; otherwise the JSON database blob store is used.
type RedisStorage struct {
	client *redis.Client
}

// NewRedisStorage connects to the given Redis address and verifies the
// connection with a ping.
func NewRedisStorage(addr string) (*RedisStorage, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return &RedisStorage{client: client}, nil
}

// Get returns the persisted cart payload for key.
func (r *RedisStorage) Get(key string) (string, bool, error) {
	value, err := r.client.Get(context.Background(), key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Set writes the cart payload under key, refreshing its TTL.
func (r *RedisStorage) Set(key, value string) error {
	return r.client.Set(context.Background(), key, value, cartTTL).Err()
}

// Close releases the Redis connection.
func (r *RedisStorage) Close() error {
	return r.client.Close()
}
