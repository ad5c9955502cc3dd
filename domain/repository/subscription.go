package repository

import (
	"context"

	"videotube/domain/dto"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type ISubscription interface {
	// Toggle subscribes or unsubscribes; uniqueness of (subscriber, channel)
	// is enforced by the collection index, not read-then-write.
	Toggle(ctx context.Context, subscriber, channel bson.ObjectID) (added bool, err error)
	ListSubscribers(ctx context.Context, channel bson.ObjectID) ([]dto.SubscribedUser, error)
	ListSubscribedChannels(ctx context.Context, subscriber bson.ObjectID) ([]dto.SubscribedUser, error)
}
