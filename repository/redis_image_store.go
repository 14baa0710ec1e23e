package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type redisImageStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisImageStore returns an ImageStore backed by Redis. The TTL closes
// the orphaned-entry gap: images for checkouts that never complete expire on
// their own.
func NewRedisImageStore(client *redis.Client, ttl time.Duration) ImageStore {
	return &redisImageStore{client: client, ttl: ttl}
}

// NewRedisClient connects to Redis using a redis:// URL and verifies the
// connection with a ping.
func NewRedisClient(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

func (r *redisImageStore) key(k string) string {
	return "staged-image:" + k
}

func (r *redisImageStore) Put(ctx context.Context, key, imageData string) error {
	return r.client.Set(ctx, r.key(key), imageData, r.ttl).Err()
}

func (r *redisImageStore) Get(ctx context.Context, key string) (string, error) {
	data, err := r.client.Get(ctx, r.key(key)).Result()
	if err == redis.Nil {
		return "", ErrImageNotFound
	}
	if err != nil {
		return "", err
	}
	return data, nil
}

func (r *redisImageStore) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, r.key(key)).Err()
}
