// Package redis provides a Redis-backed key-value store so several
// EcoAlerta instances can share one profile and ledger.
package redis

import (
	"context"
	"ecoalerta/internal/storage"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// DefaultKeyPrefix namespaces all keys written by EcoAlerta
const DefaultKeyPrefix = "ecoalerta:"

// Config contains Redis connection settings
type Config struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}

// RedisStorage implements storage.Store using Redis
type RedisStorage struct {
	client *goredis.Client
	prefix string
}

// New connects to Redis and verifies the connection
func New(cfg Config) (*RedisStorage, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Addr, err)
	}

	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}

	return &RedisStorage{
		client: client,
		prefix: prefix,
	}, nil
}

// Get retrieves the value stored under key
func (s *RedisStorage) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Set stores value under key without expiry
func (s *RedisStorage) Set(ctx context.Context, key string, value []byte) error {
	return s.client.Set(ctx, s.prefix+key, value, 0).Err()
}

// Close closes the Redis connection
func (s *RedisStorage) Close() error {
	return s.client.Close()
}

var _ storage.Store = (*RedisStorage)(nil)
