package persistence

import (
	"context"
	"time"

	"videotube/domain/dto"
	"videotube/domain/model"
	"videotube/domain/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type CommentRepository struct {
	db *mongo.Database
}

func NewCommentRepository(db *mongo.Database) repository.IComment {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) collection() *mongo.Collection {
	return r.db.Collection(CollectionComments)
}

func (r *CommentRepository) Create(ctx context.Context, comment model.Comment) (*model.Comment, error) {
	now := time.Now().UTC()
	comment.CreatedAt = now
	comment.UpdatedAt = now

	res, err := r.collection().InsertOne(ctx, comment)
	if err != nil {
		return nil, err
	}
	comment.ID = res.InsertedID.(bson.ObjectID)
	return &comment, nil
}

func (r *CommentRepository) GetByID(ctx context.Context, id bson.ObjectID) (*model.Comment, error) {
	var comment model.Comment
	err := r.collection().FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&comment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, model.NewNotFoundError("Comment not found")
		}
		return nil, err
	}
	return &comment, nil
}

func (r *CommentRepository) UpdateContent(ctx context.Context, id bson.ObjectID, content string) (*model.Comment, error) {
	var updated model.Comment
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
			return nil, model.NewNotFoundError("Comment not found")
		}
		return nil, err
	}
	return &updated, nil
}

func (r *CommentRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.collection().DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return model.NewNotFoundError("Comment not found")
	}
	return nil
}

func (r *CommentRepository) ListIDsByVideo(ctx context.Context, videoID bson.ObjectID) ([]bson.ObjectID, error) {
	opts := options.Find().SetProjection(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.collection().Find(ctx, bson.D{{Key: "video", Value: videoID}}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []struct {
		ID bson.ObjectID `bson:"_id"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	ids := make([]bson.ObjectID, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.ID)
	}
	return ids, nil
}

func (r *CommentRepository) DeleteByVideo(ctx context.Context, videoID bson.ObjectID) error {
	_, err := r.collection().DeleteMany(ctx, bson.D{{Key: "video", Value: videoID}})
	return err
}

func (r *CommentRepository) ListByVideo(ctx context.Context, videoID bson.ObjectID, page, limit int64) (*dto.CommentPage, error) {
	filter := bson.D{{Key: "video", Value: videoID}}
	total, err := r.collection().CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: filter}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		bson.D{{Key: "$skip", Value: (page - 1) * limit}},
		bson.D{{Key: "$limit", Value: limit}},
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
	}

	cursor, err := r.collection().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []struct {
		ID        bson.ObjectID `bson:"_id"`
		Content   string        `bson:"content"`
		Video     bson.ObjectID `bson:"video"`
		Owner     ownerDoc      `bson:"owner"`
		CreatedAt time.Time     `bson:"createdAt"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	comments := make([]dto.CommentWithOwner, 0, len(docs))
	for _, d := range docs {
		comments = append(comments, dto.CommentWithOwner{
			ID:        d.ID.Hex(),
			Content:   d.Content,
			Video:     d.Video.Hex(),
			Owner:     d.Owner.toDTO(),
			CreatedAt: d.CreatedAt,
		})
	}

	return &dto.CommentPage{
		Docs:       comments,
		TotalDocs:  total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}
