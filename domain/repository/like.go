package repository

import (
	"context"

	"videotube/domain/dto"
	"videotube/domain/model"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type ILike interface {
	// Toggle inserts a like for (owner, target) or removes the existing one.
	// Atomicity rests on the unique index: the insert goes first and a
	// duplicate-key error selects the remove branch.
	Toggle(ctx context.Context, owner, target bson.ObjectID, kind model.LikeTargetKind) (added bool, err error)
	DeleteByVideo(ctx context.Context, videoID bson.ObjectID) error
	DeleteByComment(ctx context.Context, commentID bson.ObjectID) error
	DeleteByComments(ctx context.Context, commentIDs []bson.ObjectID) error
	DeleteByTweet(ctx context.Context, tweetID bson.ObjectID) error
	ListLikedVideos(ctx context.Context, owner bson.ObjectID) ([]dto.VideoWithOwner, error)
}
