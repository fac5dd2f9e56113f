package storage

import (
	"fmt"

	"github.com/go-redis/redis"
)

type RedisClient struct {
	cli *redis.Client
}

// NewRedisClient parses a redis:// or rediss:// URL. No connection is made
// until the first command.
func NewRedisClient(redisURL string) (*RedisClient, error) {
	opts, err := redis.ParseURL(redisURL)

	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	return &RedisClient{cli: redis.NewClient(opts)}, nil
}

func (r *RedisClient) Ping() error {
	if err := r.cli.Ping().Err(); err != nil {
		return fmt.Errorf("redis ping %s: %w", r.cli.Options().Addr, err)
	}

	return nil
}

func (r *RedisClient) Options() *redis.Options {
	return r.cli.Options()
}

func (r *RedisClient) Close() error {
	return r.cli.Close()
}
