package usecase

import (
	"context"

	"videotube/domain/dto"
	"videotube/domain/model"
	"videotube/domain/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type ILikeUsecase interface {
	ToggleVideoLike(ctx context.Context, videoID, actorID string) (*dto.ToggleResult, error)
	ToggleCommentLike(ctx context.Context, commentID, actorID string) (*dto.ToggleResult, error)
	ToggleTweetLike(ctx context.Context, tweetID, actorID string) (*dto.ToggleResult, error)
	GetLikedVideos(ctx context.Context, actorID string) ([]dto.VideoWithOwner, error)
}

type likeUsecase struct {
	likeRepository    repository.ILike
	videoRepository   repository.IVideo
	commentRepository repository.IComment
	tweetRepository   repository.ITweet
}

func NewLikeUsecase(
	likeRepository repository.ILike,
	videoRepository repository.IVideo,
	commentRepository repository.IComment,
	tweetRepository repository.ITweet,
) ILikeUsecase {
	return &likeUsecase{
		likeRepository:    likeRepository,
		videoRepository:   videoRepository,
		commentRepository: commentRepository,
		tweetRepository:   tweetRepository,
	}
}

func (u *likeUsecase) ToggleVideoLike(ctx context.Context, videoID, actorID string) (*dto.ToggleResult, error) {
	id, err := parseObjectID(videoID, "videoId")
	if err != nil {
		return nil, err
	}
	actor, err := parseObjectID(actorID, "userId")
	if err != nil {
		return nil, err
	}
	if _, err := u.videoRepository.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return u.toggle(ctx, actor, id, model.LikeTargetVideo)
}

func (u *likeUsecase) ToggleCommentLike(ctx context.Context, commentID, actorID string) (*dto.ToggleResult, error) {
	id, err := parseObjectID(commentID, "commentId")
	if err != nil {
		return nil, err
	}
	actor, err := parseObjectID(actorID, "userId")
	if err != nil {
		return nil, err
	}
	if _, err := u.commentRepository.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return u.toggle(ctx, actor, id, model.LikeTargetComment)
}

func (u *likeUsecase) ToggleTweetLike(ctx context.Context, tweetID, actorID string) (*dto.ToggleResult, error) {
	id, err := parseObjectID(tweetID, "tweetId")
	if err != nil {
		return nil, err
	}
	actor, err := parseObjectID(actorID, "userId")
	if err != nil {
		return nil, err
	}
	if _, err := u.tweetRepository.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return u.toggle(ctx, actor, id, model.LikeTargetTweet)
}

func (u *likeUsecase) toggle(ctx context.Context, actor, target bson.ObjectID, kind model.LikeTargetKind) (*dto.ToggleResult, error) {
	added, err := u.likeRepository.Toggle(ctx, actor, target, kind)
	if err != nil {
		return nil, err
	}
	state := "removed"
	if added {
		state = "added"
	}
	return &dto.ToggleResult{Toggled: true, State: state}, nil
}

func (u *likeUsecase) GetLikedVideos(ctx context.Context, actorID string) ([]dto.VideoWithOwner, error) {
	actor, err := parseObjectID(actorID, "userId")
	if err != nil {
		return nil, err
	}
	return u.likeRepository.ListLikedVideos(ctx, actor)
}
