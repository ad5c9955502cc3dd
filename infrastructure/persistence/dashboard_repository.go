package persistence

import (
	"context"

	"videotube/domain/dto"
	"videotube/domain/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// DashboardRepository runs the channel-stats aggregation across videos,
// likes and subscriptions.
type DashboardRepository struct {
	db *mongo.Database
}

func NewDashboardRepository(db *mongo.Database) repository.IDashboard {
	return &DashboardRepository{db: db}
}

func (r *DashboardRepository) GetChannelStats(ctx context.Context, owner bson.ObjectID) (*dto.ChannelStats, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "owner", Value: owner}}}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: CollectionLikes},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "video"},
			{Key: "as", Value: "likes"},
		}}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "totalVideos", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "totalViews", Value: bson.D{{Key: "$sum", Value: "$views"}}},
			{Key: "totalLikes", Value: bson.D{{Key: "$sum", Value: bson.D{{Key: "$size", Value: "$likes"}}}}},
		}}},
	}

	cursor, err := r.db.Collection(CollectionVideos).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []struct {
		TotalVideos int64 `bson:"totalVideos"`
		TotalViews  int64 `bson:"totalViews"`
		TotalLikes  int64 `bson:"totalLikes"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	stats := &dto.ChannelStats{}
	if len(docs) > 0 {
		stats.TotalVideos = docs[0].TotalVideos
		stats.TotalViews = docs[0].TotalViews
		stats.TotalLikes = docs[0].TotalLikes
	}

	subscribers, err := r.db.Collection(CollectionSubscriptions).
		CountDocuments(ctx, bson.D{{Key: "channel", Value: owner}})
	if err != nil {
		return nil, err
	}
	stats.TotalSubscribers = subscribers

	return stats, nil
}
