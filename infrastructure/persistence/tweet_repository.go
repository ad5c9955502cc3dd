package persistence

import (
	"context"
	"time"

	"videotube/domain/model"
	"videotube/domain/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type TweetRepository struct {
	db *mongo.Database
}

func NewTweetRepository(db *mongo.Database) repository.ITweet {
	return &TweetRepository{db: db}
}

func (r *TweetRepository) collection() *mongo.Collection {
	return r.db.Collection(CollectionTweets)
}

func (r *TweetRepository) Create(ctx context.Context, tweet model.Tweet) (*model.Tweet, error) {
	now := time.Now().UTC()
	tweet.CreatedAt = now
	tweet.UpdatedAt = now

	res, err := r.collection().InsertOne(ctx, tweet)
	if err != nil {
		return nil, err
	}
	tweet.ID = res.InsertedID.(bson.ObjectID)
	return &tweet, nil
}

func (r *TweetRepository) GetByID(ctx context.Context, id bson.ObjectID) (*model.Tweet, error) {
	var tweet model.Tweet
	err := r.collection().FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&tweet)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, model.NewNotFoundError("Tweet not found")
		}
		return nil, err
	}
	return &tweet, nil
}

func (r *TweetRepository) ListByOwner(ctx context.Context, owner bson.ObjectID) ([]model.Tweet, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection().Find(ctx, bson.D{{Key: "owner", Value: owner}}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	docs := []model.Tweet{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *TweetRepository) UpdateContent(ctx context.Context, id bson.ObjectID, content string) (*model.Tweet, error) {
	var updated model.Tweet
	err := r.collection().FindOneAndUpdate(
		ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "content", Value: content},
			{Key: "updatedAt", Value: time.Now().UTC()},
		}}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, model.NewNotFoundError("Tweet not found")
		}
		return nil, err
	}
	return &updated, nil
}

func (r *TweetRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.collection().DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return model.NewNotFoundError("Tweet not found")
	}
	return nil
}
