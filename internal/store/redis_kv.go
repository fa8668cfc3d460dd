package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisKV implements KV on Redis. Keys are namespaced as "{prefix}:{key}".
type RedisKV struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisKV creates a KV backed by client. An empty prefix defaults to
// "hatchery".
func NewRedisKV(client redis.UniversalClient, prefix string) *RedisKV {
	if prefix == "" {
		prefix = "hatchery"
	}
	return &RedisKV{client: client, prefix: prefix}
}

func (r *RedisKV) key(k string) string {
	return fmt.Sprintf("%s:%s", r.prefix, k)
}

func (r *RedisKV) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, r.key(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("redis get %q: %w", key, err)
	}
	return val, nil
}

func (r *RedisKV) Set(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, r.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %q: %w", key, err)
	}
	return nil
}

func (r *RedisKV) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		return fmt.Errorf("redis del %q: %w", key, err)
	}
	return nil
}

// Close closes the underlying client.
func (r *RedisKV) Close() error {
	return r.client.Close()
}

var _ KV = (*RedisKV)(nil)
