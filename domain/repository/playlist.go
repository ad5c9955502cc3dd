package repository

import (
	"context"

	"videotube/domain/model"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type IPlaylist interface {
	Create(ctx context.Context, playlist model.Playlist) (*model.Playlist, error)
	GetByID(ctx context.Context, id bson.ObjectID) (*model.Playlist, error)
	ListByOwner(ctx context.Context, owner bson.ObjectID) ([]model.Playlist, error)
	// AddVideo uses $addToSet so repeating the call never duplicates.
	AddVideo(ctx context.Context, id, videoID bson.ObjectID) (*model.Playlist, error)
	RemoveVideo(ctx context.Context, id, videoID bson.ObjectID) (*model.Playlist, error)
	UpdateDetails(ctx context.Context, id bson.ObjectID, name, description string) (*model.Playlist, error)
	Delete(ctx context.Context, id bson.ObjectID) error
	// PullVideoFromAll removes a deleted video from every playlist holding it.
	PullVideoFromAll(ctx context.Context, videoID bson.ObjectID) error
}
