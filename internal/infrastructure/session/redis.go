package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultTimeout = 5 * time.Second

// keyPrefix matches the storage key the browser client used for its single
// token entry, extended with the session id so one console can serve many
// browsers.
const keyPrefix = "accessToken:"

// Config captures the settings for establishing a Redis connection.
type Config struct {
	Addr    string
	DB      int
	Timeout time.Duration
}

// Connect initialises a Redis client and validates connectivity with a ping.
// A default timeout is applied when none is provided.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}

// RedisTokenStore is the durable token store: entries survive console
// restarts and expire with the session TTL.
type RedisTokenStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisTokenStore(client *redis.Client, ttl time.Duration) *RedisTokenStore {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &RedisTokenStore{client: client, ttl: ttl}
}

func (s *RedisTokenStore) Get(ctx context.Context, sid string) (string, bool, error) {
	token, err := s.client.Get(ctx, key(sid)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("token get: %w", err)
	}
	return token, true, nil
}

func (s *RedisTokenStore) Set(ctx context.Context, sid, token string) error {
	if err := s.client.Set(ctx, key(sid), token, s.ttl).Err(); err != nil {
		return fmt.Errorf("token set: %w", err)
	}
	return nil
}

// Clear removes the entry. Deleting an absent key is not an error.
func (s *RedisTokenStore) Clear(ctx context.Context, sid string) error {
	if err := s.client.Del(ctx, key(sid)).Err(); err != nil {
		return fmt.Errorf("token clear: %w", err)
	}
	return nil
}

func key(sid string) string {
	return keyPrefix + sid
}
