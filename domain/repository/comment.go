package repository

import (
	"context"

	"videotube/domain/dto"
	"videotube/domain/model"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type IComment interface {
	Create(ctx context.Context, comment model.Comment) (*model.Comment, error)
	GetByID(ctx context.Context, id bson.ObjectID) (*model.Comment, error)
	UpdateContent(ctx context.Context, id bson.ObjectID, content string) (*model.Comment, error)
	Delete(ctx context.Context, id bson.ObjectID) error
	ListIDsByVideo(ctx context.Context, videoID bson.ObjectID) ([]bson.ObjectID, error)
	DeleteByVideo(ctx context.Context, videoID bson.ObjectID) error
	ListByVideo(ctx context.Context, videoID bson.ObjectID, page, limit int64) (*dto.CommentPage, error)
}
