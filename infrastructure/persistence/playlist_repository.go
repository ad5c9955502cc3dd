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

type PlaylistRepository struct {
	db *mongo.Database
}

func NewPlaylistRepository(db *mongo.Database) repository.IPlaylist {
	return &PlaylistRepository{db: db}
}

func (r *PlaylistRepository) collection() *mongo.Collection {
	return r.db.Collection(CollectionPlaylists)
}

func (r *PlaylistRepository) Create(ctx context.Context, playlist model.Playlist) (*model.Playlist, error) {
	now := time.Now().UTC()
	playlist.CreatedAt = now
	playlist.UpdatedAt = now
	if playlist.Videos == nil {
		playlist.Videos = []bson.ObjectID{}
	}

	res, err := r.collection().InsertOne(ctx, playlist)
	if err != nil {
		return nil, err
	}
	playlist.ID = res.InsertedID.(bson.ObjectID)
	return &playlist, nil
}

func (r *PlaylistRepository) GetByID(ctx context.Context, id bson.ObjectID) (*model.Playlist, error) {
	var playlist model.Playlist
	err := r.collection().FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&playlist)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, model.NewNotFoundError("Playlist not found")
		}
		return nil, err
	}
	return &playlist, nil
}

func (r *PlaylistRepository) ListByOwner(ctx context.Context, owner bson.ObjectID) ([]model.Playlist, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection().Find(ctx, bson.D{{Key: "owner", Value: owner}}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	docs := []model.Playlist{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *PlaylistRepository) AddVideo(ctx context.Context, id, videoID bson.ObjectID) (*model.Playlist, error) {
	return r.findOneAndUpdate(ctx, id, bson.D{
		{Key: "$addToSet", Value: bson.D{{Key: "videos", Value: videoID}}},
		{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: time.Now().UTC()}}},
	})
}

func (r *PlaylistRepository) RemoveVideo(ctx context.Context, id, videoID bson.ObjectID) (*model.Playlist, error) {
	return r.findOneAndUpdate(ctx, id, bson.D{
		{Key: "$pull", Value: bson.D{{Key: "videos", Value: videoID}}},
		{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: time.Now().UTC()}}},
	})
}

func (r *PlaylistRepository) UpdateDetails(ctx context.Context, id bson.ObjectID, name, description string) (*model.Playlist, error) {
	return r.findOneAndUpdate(ctx, id, bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "name", Value: name},
			{Key: "description", Value: description},
			{Key: "updatedAt", Value: time.Now().UTC()},
		}},
	})
}

func (r *PlaylistRepository) findOneAndUpdate(ctx context.Context, id bson.ObjectID, update bson.D) (*model.Playlist, error) {
	var updated model.Playlist
	err := r.collection().FindOneAndUpdate(
		ctx,
		bson.D{{Key: "_id", Value: id}},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, model.NewNotFoundError("Playlist not found")
		}
		return nil, err
	}
	return &updated, nil
}

func (r *PlaylistRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.collection().DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return model.NewNotFoundError("Playlist not found")
	}
	return nil
}

func (r *PlaylistRepository) PullVideoFromAll(ctx context.Context, videoID bson.ObjectID) error {
	_, err := r.collection().UpdateMany(
		ctx,
		bson.D{{Key: "videos", Value: videoID}},
		bson.D{{Key: "$pull", Value: bson.D{{Key: "videos", Value: videoID}}}},
	)
	return err
}
