package persistence

import (
	"context"
	"time"

	"videotube/domain/dto"
	"videotube/domain/model"
	"videotube/domain/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type SubscriptionRepository struct {
	db *mongo.Database
}

func NewSubscriptionRepository(db *mongo.Database) repository.ISubscription {
	return &SubscriptionRepository{db: db}
}

func (r *SubscriptionRepository) collection() *mongo.Collection {
	return r.db.Collection(CollectionSubscriptions)
}

func (r *SubscriptionRepository) Toggle(ctx context.Context, subscriber, channel bson.ObjectID) (bool, error) {
	sub := model.Subscription{
		Subscriber: subscriber,
		Channel:    channel,
		CreatedAt:  time.Now().UTC(),
	}

	// Insert first; the unique (subscriber, channel) index resolves races.
	_, err := r.collection().InsertOne(ctx, sub)
	if err == nil {
		return true, nil
	}
	if !mongo.IsDuplicateKeyError(err) {
		return false, err
	}

	filter := bson.D{
		{Key: "subscriber", Value: subscriber},
		{Key: "channel", Value: channel},
	}
	if _, err := r.collection().DeleteOne(ctx, filter); err != nil {
		return false, err
	}
	return false, nil
}

func (r *SubscriptionRepository) ListSubscribers(ctx context.Context, channel bson.ObjectID) ([]dto.SubscribedUser, error) {
	return r.listJoined(ctx, bson.D{{Key: "channel", Value: channel}}, "subscriber")
}

func (r *SubscriptionRepository) ListSubscribedChannels(ctx context.Context, subscriber bson.ObjectID) ([]dto.SubscribedUser, error) {
	return r.listJoined(ctx, bson.D{{Key: "subscriber", Value: subscriber}}, "channel")
}

func (r *SubscriptionRepository) listJoined(ctx context.Context, match bson.D, localField string) ([]dto.SubscribedUser, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: CollectionUsers},
			{Key: "localField", Value: localField},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "user"},
			{Key: "pipeline", Value: bson.A{
				bson.D{{Key: "$project", Value: bson.D{
					{Key: "username", Value: 1},
					{Key: "fullname", Value: 1},
					{Key: "avatar", Value: 1},
				}}},
			}},
		}}},
		bson.D{{Key: "$unwind", Value: "$user"}},
		bson.D{{Key: "$replaceRoot", Value: bson.D{{Key: "newRoot", Value: "$user"}}}},
	}

	cursor, err := r.collection().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []subscribedUserDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return subscribedUsersToDTO(docs), nil
}
