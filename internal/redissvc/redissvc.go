// Package redissvc tracks rate-limit strikes and temporary bans in Redis.
// The service is optional: when no Redis is configured the rate limiter still
// throttles, it just keeps no strike history across requests.
package redissvc

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	strikeKeyPrefix = "ratelimit:strikes:"
	banKeyPrefix    = "ratelimit:ban:"
)

type RedisService struct {
	rdb *redis.Client
}

func NewRedisService(rdb *redis.Client) *RedisService {
	return &RedisService{rdb: rdb}
}

func (s *RedisService) Rdb() *redis.Client {
	return s.rdb
}

// AddStrike increments the caller's strike counter and refreshes its expiry
// window. Returns the new strike count.
func (s *RedisService) AddStrike(ctx context.Context, ip string, window time.Duration) (int64, error) {
	key := strikeKeyPrefix + ip
	strikes, err := s.rdb.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("redissvc: incr strikes for %s: %w", ip, err)
	}
	s.rdb.Expire(ctx, key, window)
	return strikes, nil
}

// Ban marks the ip banned for the given duration.
func (s *RedisService) Ban(ctx context.Context, ip string, d time.Duration) error {
	if err := s.rdb.Set(ctx, banKeyPrefix+ip, time.Now().Format(time.RFC3339), d).Err(); err != nil {
		return fmt.Errorf("redissvc: ban %s: %w", ip, err)
	}
	return nil
}

// IsBanned reports whether the ip currently has an active ban key.
func (s *RedisService) IsBanned(ctx context.Context, ip string) (bool, error) {
	n, err := s.rdb.Exists(ctx, banKeyPrefix+ip).Result()
	if err != nil {
		return false, fmt.Errorf("redissvc: check ban for %s: %w", ip, err)
	}
	return n > 0, nil
}
