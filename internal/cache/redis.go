package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type redisStore struct {
	client *redis.Client
	log    *zap.Logger
}

// NewRedisStore wraps a redis client as a fail-open Store. Errors never
// propagate to callers; an outage degrades latency, not correctness.
func NewRedisStore(client *redis.Client, log *zap.Logger) Store {
	return &redisStore{client: client, log: log}
}

func (s *redisStore) Get(ctx context.Context, key string) (string, bool) {
	value, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			s.log.Warn("cache get failed, treating as miss", zap.String("key", key), zap.Error(err))
		}
		return "", false
	}
	return value, true
}

func (s *redisStore) Set(ctx context.Context, key, value string, ttl time.Duration) {
	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		s.log.Warn("cache set failed", zap.String("key", key), zap.Error(err))
	}
}

func (s *redisStore) Delete(ctx context.Context, key string) {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		s.log.Warn("cache delete failed", zap.String("key", key), zap.Error(err))
	}
}

func (s *redisStore) DeleteByPattern(ctx context.Context, pattern string) int {
	var keys []string
	iter := s.client.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		s.log.Warn("cache scan failed", zap.String("pattern", pattern), zap.Error(err))
		return 0
	}
	if len(keys) == 0 {
		return 0
	}

	removed, err := s.client.Del(ctx, keys...).Result()
	if err != nil {
		s.log.Warn("cache delete failed", zap.String("pattern", pattern), zap.Error(err))
		return 0
	}
	return int(removed)
}
