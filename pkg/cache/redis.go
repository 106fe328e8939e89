package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"quiz-platform/internal/models"
)

const (
	leaderboardKey = "leaderboard:global"
	leaderboardTTL = 5 * time.Minute
)

// RedisCache holds the leaderboard snapshot so the top-100 query does not
// hit Postgres on every read. The database stays the source of truth; the
// cache is invalidated after each accepted submission.
type RedisCache struct {
	client *redis.Client
	ctx    context.Context
}

func NewRedisCache(addr string) *RedisCache {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisCache{
		client: client,
		ctx:    context.Background(),
	}
}

func (c *RedisCache) SetLeaderboard(entries []models.LeaderboardEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return c.client.Set(c.ctx, leaderboardKey, data, leaderboardTTL).Err()
}

// GetLeaderboard returns (nil, nil) on a cache miss so callers can fall
// through to the store without special-casing redis.Nil.
func (c *RedisCache) GetLeaderboard() ([]models.LeaderboardEntry, error) {
	data, err := c.client.Get(c.ctx, leaderboardKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var entries []models.LeaderboardEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *RedisCache) InvalidateLeaderboard() error {
	return c.client.Del(c.ctx, leaderboardKey).Err()
}

// Ping verifies the connection at startup.
func (c *RedisCache) Ping() error {
	return c.client.Ping(c.ctx).Err()
}

// Close releases the underlying client.
func (c *RedisCache) Close() error {
	return c.client.Close()
}
