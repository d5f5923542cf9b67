// Package cache mirrors live scores into Redis so dashboards and tooling can
// read the board without touching the game loop. The in-memory registry
// stays authoritative; this is a write-through read model.
package cache

import (
	"context"

	"emojitrivia/internal/model"

	"github.com/redis/go-redis/v9"
)

const leaderboardKey = "trivia:leaderboard"

// LeaderboardCache handles Redis ZSET operations for the score mirror.
type LeaderboardCache interface {
	UpdateScore(ctx context.Context, nickname string, score int) error
	RemovePlayer(ctx context.Context, nickname string) error
	Clear(ctx context.Context) error
	GetTop(ctx context.Context, limit int) ([]model.PlayerSummary, error)
}

type leaderboardCache struct {
	client *redis.Client
}

// NewLeaderboardCache creates a new leaderboard cache.
func NewLeaderboardCache(client *redis.Client) LeaderboardCache {
	return &leaderboardCache{client: client}
}

func (c *leaderboardCache) UpdateScore(ctx context.Context, nickname string, score int) error {
	return c.client.ZAdd(ctx, leaderboardKey, redis.Z{
		Score:  float64(score),
		Member: nickname,
	}).Err()
}

func (c *leaderboardCache) RemovePlayer(ctx context.Context, nickname string) error {
	return c.client.ZRem(ctx, leaderboardKey, nickname).Err()
}

func (c *leaderboardCache) Clear(ctx context.Context) error {
	return c.client.Del(ctx, leaderboardKey).Err()
}

func (c *leaderboardCache) GetTop(ctx context.Context, limit int) ([]model.PlayerSummary, error) {
	results, err := c.client.ZRevRangeWithScores(ctx, leaderboardKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]model.PlayerSummary, len(results))
	for i, z := range results {
		entries[i] = model.PlayerSummary{
			Nickname: z.Member.(string),
			Score:    int(z.Score),
		}
	}
	return entries, nil
}
