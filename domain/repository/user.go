package repository

import (
	"context"

	"videotube/domain/dto"
	"videotube/domain/model"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type IUser interface {
	Create(ctx context.Context, user model.User) (*model.User, error)
	GetByID(ctx context.Context, id bson.ObjectID) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	// GetByUsernameOrEmail matches either field; used for the duplicate check
	// at registration and the login lookup.
	GetByUsernameOrEmail(ctx context.Context, username, email string) (*model.User, error)
	Update(ctx context.Context, id bson.ObjectID, patch dto.UserPatch) (*model.User, error)
	ClearRefreshToken(ctx context.Context, id bson.ObjectID) error
	AppendWatchHistory(ctx context.Context, userID, videoID bson.ObjectID) error
	// GetChannelProfile joins the subscription graph for one channel and
	// reports whether viewer is among its subscribers.
	GetChannelProfile(ctx context.Context, username string, viewer bson.ObjectID) (*dto.ChannelProfile, error)
	// GetWatchHistory resolves the watched video ids to video records with
	// a minimal owner projection nested in each.
	GetWatchHistory(ctx context.Context, userID bson.ObjectID) ([]dto.VideoWithOwner, error)
}
