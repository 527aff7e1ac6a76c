// Package redis implements the driven.Store port on top of a Redis
// connection. Batched writes go through a pipeline so every chunk costs one
// round-trip.
//
// Usage:
//
//	client := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
//	s := redisstore.New(client)
//	if err := s.Ping(ctx); err != nil { ... }
package redis

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/hsajid-cs/redis-populate/internal/core/domain"
	"github.com/hsajid-cs/redis-populate/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.Store = (*Store)(nil)

// Store implements driven.Store backed by Redis.
type Store struct {
	client *goredis.Client
}

// New creates a Redis-backed store. The store owns the client and closes it
// on Close.
func New(client *goredis.Client) *Store {
	return &Store{client: client}
}

// Ping verifies the Redis connection is alive.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("store/redis: ping: %w", err)
	}
	return nil
}

// Del removes the given keys.
func (s *Store) Del(ctx context.Context, keys ...string) error {
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("store/redis: del: %w", err)
	}
	return nil
}

// RPush appends values to the list at key, one pipelined round-trip.
func (s *Store) RPush(ctx context.Context, key string, values []string) error {
	if len(values) == 0 {
		return nil
	}

	pipe := s.client.Pipeline()
	for _, v := range values {
		pipe.RPush(ctx, key, v)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("store/redis: rpush %s: %w", key, err)
	}
	return nil
}

// SAddEach adds members to the set at key through a pipeline and reports,
// per member, whether SADD returned 1 (newly added).
func (s *Store) SAddEach(ctx context.Context, key string, members []string) ([]bool, error) {
	if len(members) == 0 {
		return nil, nil
	}

	pipe := s.client.Pipeline()
	cmds := make([]*goredis.IntCmd, len(members))
	for i, m := range members {
		cmds[i] = pipe.SAdd(ctx, key, m)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("store/redis: sadd %s: %w", key, err)
	}

	added := make([]bool, len(members))
	for i, cmd := range cmds {
		added[i] = cmd.Val() == 1
	}
	return added, nil
}

// Get returns the string value at key.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	v, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, goredis.Nil) {
		return "", domain.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("store/redis: get %s: %w", key, err)
	}
	return v, nil
}

// LRange returns the full contents of the list at key.
func (s *Store) LRange(ctx context.Context, key string) ([]string, error) {
	v, err := s.client.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("store/redis: lrange %s: %w", key, err)
	}
	return v, nil
}

// LLen returns the length of the list at key.
func (s *Store) LLen(ctx context.Context, key string) (int64, error) {
	n, err := s.client.LLen(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("store/redis: llen %s: %w", key, err)
	}
	return n, nil
}

// SMembers returns the members of the set at key.
func (s *Store) SMembers(ctx context.Context, key string) ([]string, error) {
	v, err := s.client.SMembers(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("store/redis: smembers %s: %w", key, err)
	}
	return v, nil
}

// HGetAll returns the field-value pairs of the hash at key.
func (s *Store) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	v, err := s.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("store/redis: hgetall %s: %w", key, err)
	}
	return v, nil
}

// Type returns the structural type of key.
func (s *Store) Type(ctx context.Context, key string) (string, error) {
	t, err := s.client.Type(ctx, key).Result()
	if err != nil {
		return "", fmt.Errorf("store/redis: type %s: %w", key, err)
	}
	return t, nil
}

// Keys returns all keys matching the glob pattern.
func (s *Store) Keys(ctx context.Context, pattern string) ([]string, error) {
	keys, err := s.client.Keys(ctx, pattern).Result()
	if err != nil {
		return nil, fmt.Errorf("store/redis: keys %s: %w", pattern, err)
	}
	return keys, nil
}

// Close releases the client's connection pool.
func (s *Store) Close() error {
	return s.client.Close()
}
