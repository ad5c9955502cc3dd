package repository

import (
	"context"

	"videotube/domain/dto"
)

// IStatsCache fronts the channel-stats aggregation. Both methods are best
// effort: a miss or a cache failure just falls through to the database.
type IStatsCache interface {
	GetChannelStats(ctx context.Context, owner string) (*dto.ChannelStats, bool)
	SetChannelStats(ctx context.Context, owner string, stats *dto.ChannelStats)
}
