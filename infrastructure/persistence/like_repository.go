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

type LikeRepository struct {
	db *mongo.Database
}

func NewLikeRepository(db *mongo.Database) repository.ILike {
	return &LikeRepository{db: db}
}

func (r *LikeRepository) collection() *mongo.Collection {
	return r.db.Collection(CollectionLikes)
}

func (r *LikeRepository) Toggle(ctx context.Context, owner, target bson.ObjectID, kind model.LikeTargetKind) (bool, error) {
	like := model.Like{LikedBy: owner, CreatedAt: time.Now().UTC()}
	switch kind {
	case model.LikeTargetVideo:
		like.Video = &target
	case model.LikeTargetComment:
		like.Comment = &target
	case model.LikeTargetTweet:
		like.Tweet = &target
	default:
		return false, model.NewValidationError("Invalid like target")
	}

	// Insert first. The partial unique index on (likedBy, <kind>) turns a
	// concurrent duplicate into a key error, which selects the remove branch.
	_, err := r.collection().InsertOne(ctx, like)
	if err == nil {
		return true, nil
	}
	if !mongo.IsDuplicateKeyError(err) {
		return false, err
	}

	filter := bson.D{
		{Key: "likedBy", Value: owner},
		{Key: string(kind), Value: target},
	}
	if _, err := r.collection().DeleteOne(ctx, filter); err != nil {
		return false, err
	}
	return false, nil
}

func (r *LikeRepository) DeleteByVideo(ctx context.Context, videoID bson.ObjectID) error {
	_, err := r.collection().DeleteMany(ctx, bson.D{{Key: "video", Value: videoID}})
	return err
}

func (r *LikeRepository) DeleteByComment(ctx context.Context, commentID bson.ObjectID) error {
	_, err := r.collection().DeleteMany(ctx, bson.D{{Key: "comment", Value: commentID}})
	return err
}

func (r *LikeRepository) DeleteByComments(ctx context.Context, commentIDs []bson.ObjectID) error {
	if len(commentIDs) == 0 {
		return nil
	}
	filter := bson.D{{Key: "comment", Value: bson.D{{Key: "$in", Value: commentIDs}}}}
	_, err := r.collection().DeleteMany(ctx, filter)
	return err
}

func (r *LikeRepository) DeleteByTweet(ctx context.Context, tweetID bson.ObjectID) error {
	_, err := r.collection().DeleteMany(ctx, bson.D{{Key: "tweet", Value: tweetID}})
	return err
}

func (r *LikeRepository) ListLikedVideos(ctx context.Context, owner bson.ObjectID) ([]dto.VideoWithOwner, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{
			{Key: "likedBy", Value: owner},
			{Key: "video", Value: bson.D{{Key: "$exists", Value: true}}},
		}}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: CollectionVideos},
			{Key: "localField", Value: "video"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "video"},
			{Key: "pipeline", Value: bson.A{
				bson.D{{Key: "$lookup", Value: bson.D{
					{Key: "from", Value: CollectionUsers},
					{Key: "localField", Value: "owner"},
					{Key: "foreignField", Value: "_id"},
					{Key: "as", Value: "owner"},
					{Key: "pipeline", Value: bson.A{
						bson.D{{Key: "$project", Value: bson.D{
							{Key: "username", Value: 1},
							{Key: "fullname", Value: 1},
							{Key: "avatar", Value: 1},
						}}},
					}},
				}}},
				bson.D{{Key: "$addFields", Value: bson.D{
					{Key: "owner", Value: bson.D{{Key: "$first", Value: "$owner"}}},
				}}},
			}},
		}}},
		bson.D{{Key: "$unwind", Value: "$video"}},
		bson.D{{Key: "$replaceRoot", Value: bson.D{{Key: "newRoot", Value: "$video"}}}},
	}

	cursor, err := r.collection().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []videoWithOwnerDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return videosWithOwnerToDTO(docs), nil
}
