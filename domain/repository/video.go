package repository

import (
	"context"

	"videotube/domain/dto"
	"videotube/domain/model"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type IVideo interface {
	Create(ctx context.Context, video model.Video) (*model.Video, error)
	GetByID(ctx context.Context, id bson.ObjectID) (*model.Video, error)
	Update(ctx context.Context, id bson.ObjectID, patch dto.VideoPatch) (*model.Video, error)
	Delete(ctx context.Context, id bson.ObjectID) error
	IncrementViews(ctx context.Context, id bson.ObjectID) error
	List(ctx context.Context, q dto.ListVideosQuery, owner bson.ObjectID) (*dto.VideoPage, error)
	ListByOwner(ctx context.Context, owner bson.ObjectID) ([]model.Video, error)
}
