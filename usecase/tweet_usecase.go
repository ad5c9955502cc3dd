package usecase

import (
	"context"
	"strings"

	"videotube/domain/dto"
	"videotube/domain/model"
	"videotube/domain/repository"
	"videotube/infrastructure/logger"
)

type ITweetUsecase interface {
	Create(ctx context.Context, ownerID string, req dto.ReqTweet) (*model.Tweet, error)
	ListByUser(ctx context.Context, userID string) ([]model.Tweet, error)
	Update(ctx context.Context, tweetID, actorID string, req dto.ReqTweet) (*model.Tweet, error)
	Delete(ctx context.Context, tweetID, actorID string) error
}

type tweetUsecase struct {
	tweetRepository repository.ITweet
	userRepository  repository.IUser
	likeRepository  repository.ILike
}

func NewTweetUsecase(tweetRepository repository.ITweet, userRepository repository.IUser, likeRepository repository.ILike) ITweetUsecase {
	return &tweetUsecase{
		tweetRepository: tweetRepository,
		userRepository:  userRepository,
		likeRepository:  likeRepository,
	}
}

func (u *tweetUsecase) Create(ctx context.Context, ownerID string, req dto.ReqTweet) (*model.Tweet, error) {
	owner, err := parseObjectID(ownerID, "userId")
	if err != nil {
		return nil, err
	}
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, model.NewValidationError("content is required")
	}
	return u.tweetRepository.Create(ctx, model.Tweet{Content: content, Owner: owner})
}

func (u *tweetUsecase) ListByUser(ctx context.Context, userID string) ([]model.Tweet, error) {
	id, err := parseObjectID(userID, "userId")
	if err != nil {
		return nil, err
	}
	if _, err := u.userRepository.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return u.tweetRepository.ListByOwner(ctx, id)
}

func (u *tweetUsecase) Update(ctx context.Context, tweetID, actorID string, req dto.ReqTweet) (*model.Tweet, error) {
	id, err := parseObjectID(tweetID, "tweetId")
	if err != nil {
		return nil, err
	}
	actor, err := parseObjectID(actorID, "userId")
	if err != nil {
		return nil, err
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, model.NewValidationError("content is required")
	}

	tweet, err := u.tweetRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tweet.Owner != actor {
		return nil, model.NewAuthorizationError("You are not the owner of the tweet")
	}

	return u.tweetRepository.UpdateContent(ctx, id, content)
}

func (u *tweetUsecase) Delete(ctx context.Context, tweetID, actorID string) error {
	id, err := parseObjectID(tweetID, "tweetId")
	if err != nil {
		return err
	}
	actor, err := parseObjectID(actorID, "userId")
	if err != nil {
		return err
	}

	tweet, err := u.tweetRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if tweet.Owner != actor {
		return model.NewAuthorizationError("You are not the owner of the tweet")
	}

	if err := u.tweetRepository.Delete(ctx, id); err != nil {
		return err
	}
	if err := u.likeRepository.DeleteByTweet(ctx, id); err != nil {
		logger.GetLogger().WithField("tweetId", tweetID).WithField("error", err).Warn("Error while deleting tweet likes")
	}
	return nil
}
