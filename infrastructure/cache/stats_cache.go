package cache

import (
	"context"
	"encoding/json"
	"time"

	"videotube/domain/dto"
	"videotube/domain/repository"
	"videotube/infrastructure/logger"

	"github.com/redis/go-redis/v9"
)

const statsTTL = 30 * time.Second

// StatsCache keeps channel-stats aggregation results for a short window.
// Every operation is best effort; a nil client or a Redis failure is
// treated as a miss.
type StatsCache struct {
	client *redis.Client
}

func NewStatsCache(client *redis.Client) repository.IStatsCache {
	return &StatsCache{client: client}
}

func (c *StatsCache) GetChannelStats(ctx context.Context, owner string) (*dto.ChannelStats, bool) {
	if c.client == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, statsKey(owner)).Result()
	if err != nil {
		if err != redis.Nil {
			logger.GetLogger().WithField("error", err).Warn("Error while reading stats cache")
		}
		return nil, false
	}
	var stats dto.ChannelStats
	if err := json.Unmarshal([]byte(raw), &stats); err != nil {
		return nil, false
	}
	return &stats, true
}

func (c *StatsCache) SetChannelStats(ctx context.Context, owner string, stats *dto.ChannelStats) {
	if c.client == nil || stats == nil {
		return
	}
	raw, err := json.Marshal(stats)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, statsKey(owner), raw, statsTTL).Err(); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Error while writing stats cache")
	}
}

func statsKey(owner string) string {
	return "videotube:stats:" + owner
}
