package session

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const activeSetKey = "defensoria:sessions:active"

// RedisStore tracks sender activity in a Redis sorted set scored by
// last-seen time, so the active count survives restarts and is shared
// across relay instances.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis constructs a Redis-backed session store.
func NewRedis(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Touch(ctx context.Context, senderID string, at time.Time) error {
	err := s.client.ZAdd(ctx, activeSetKey, redis.Z{
		Score:  float64(at.Unix()),
		Member: senderID,
	}).Err()
	if err != nil {
		return fmt.Errorf("touch session: %w", err)
	}
	return nil
}

func (s *RedisStore) ActiveCount(ctx context.Context, now time.Time) (int64, error) {
	cutoff := now.Add(-s.ttl).Unix()
	if err := s.client.ZRemRangeByScore(ctx, activeSetKey, "-inf", strconv.FormatInt(cutoff, 10)).Err(); err != nil {
		return 0, fmt.Errorf("expire sessions: %w", err)
	}
	count, err := s.client.ZCard(ctx, activeSetKey).Result()
	if err != nil {
		return 0, fmt.Errorf("count sessions: %w", err)
	}
	return count, nil
}
