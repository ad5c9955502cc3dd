package repository

import (
	"context"

	"videotube/domain/dto"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// IDashboard serves the read-only channel statistics aggregation, joining
// videos, subscriptions and likes for one channel owner.
type IDashboard interface {
	GetChannelStats(ctx context.Context, owner bson.ObjectID) (*dto.ChannelStats, error)
}
