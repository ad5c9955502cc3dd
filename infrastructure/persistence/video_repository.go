package persistence

import (
	"context"
	"strings"
	"time"

	"videotube/domain/dto"
	"videotube/domain/model"
	"videotube/domain/repository"
	"videotube/infrastructure/logger"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// sortableVideoFields guards the caller-specified sort key.
var sortableVideoFields = map[string]bool{
	"createdAt": true,
	"title":     true,
	"duration":  true,
	"views":     true,
}

type VideoRepository struct {
	db *mongo.Database
}

func NewVideoRepository(db *mongo.Database) repository.IVideo {
	return &VideoRepository{db: db}
}

func (r *VideoRepository) collection() *mongo.Collection {
	return r.db.Collection(CollectionVideos)
}

func (r *VideoRepository) Create(ctx context.Context, video model.Video) (*model.Video, error) {
	now := time.Now().UTC()
	video.CreatedAt = now
	video.UpdatedAt = now

	res, err := r.collection().InsertOne(ctx, video)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while creating video")
		return nil, err
	}
	video.ID = res.InsertedID.(bson.ObjectID)
	return &video, nil
}

func (r *VideoRepository) GetByID(ctx context.Context, id bson.ObjectID) (*model.Video, error) {
	var video model.Video
	err := r.collection().FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&video)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, model.NewNotFoundError("Video not found")
		}
		return nil, err
	}
	return &video, nil
}

func (r *VideoRepository) Update(ctx context.Context, id bson.ObjectID, patch dto.VideoPatch) (*model.Video, error) {
	set := bson.D{{Key: "updatedAt", Value: time.Now().UTC()}}
	if patch.Title != nil {
		set = append(set, bson.E{Key: "title", Value: *patch.Title})
	}
	if patch.Description != nil {
		set = append(set, bson.E{Key: "description", Value: *patch.Description})
	}
	if patch.Thumbnail != nil {
		set = append(set, bson.E{Key: "thumbnail", Value: *patch.Thumbnail})
	}
	if patch.IsPublished != nil {
		set = append(set, bson.E{Key: "isPublished", Value: *patch.IsPublished})
	}

	var updated model.Video
	err := r.collection().FindOneAndUpdate(
		ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: set}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, model.NewNotFoundError("Video not found")
		}
		return nil, err
	}
	return &updated, nil
}

func (r *VideoRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.collection().DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return model.NewNotFoundError("Video not found")
	}
	return nil
}

func (r *VideoRepository) IncrementViews(ctx context.Context, id bson.ObjectID) error {
	_, err := r.collection().UpdateOne(
		ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$inc", Value: bson.D{{Key: "views", Value: 1}}}},
	)
	return err
}

func (r *VideoRepository) List(ctx context.Context, q dto.ListVideosQuery, owner bson.ObjectID) (*dto.VideoPage, error) {
	filter := bson.D{{Key: "owner", Value: owner}}
	if q.Query != "" {
		filter = append(filter, bson.E{Key: "title", Value: bson.D{
			{Key: "$regex", Value: q.Query},
			{Key: "$options", Value: "i"},
		}})
	}

	total, err := r.collection().CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	sortBy := q.SortBy
	if !sortableVideoFields[sortBy] {
		sortBy = "createdAt"
	}
	dir := -1
	if strings.EqualFold(q.SortType, "asc") {
		dir = 1
	}

	opts := options.Find().
		SetSort(bson.D{{Key: sortBy, Value: dir}}).
		SetSkip((q.Page - 1) * q.Limit).
		SetLimit(q.Limit)

	cursor, err := r.collection().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	docs := []model.Video{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	return &dto.VideoPage{
		Docs:       docs,
		TotalDocs:  total,
		Page:       q.Page,
		Limit:      q.Limit,
		TotalPages: totalPages(total, q.Limit),
	}, nil
}

func (r *VideoRepository) ListByOwner(ctx context.Context, owner bson.ObjectID) ([]model.Video, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection().Find(ctx, bson.D{{Key: "owner", Value: owner}}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	docs := []model.Video{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}
