package usecase

import (
	"context"
	"strings"

	"videotube/domain/dto"
	"videotube/domain/model"
	"videotube/domain/repository"
	"videotube/infrastructure/logger"
)

type ICommentUsecase interface {
	ListByVideo(ctx context.Context, videoID string, page, limit int64) (*dto.CommentPage, error)
	Add(ctx context.Context, videoID, ownerID string, req dto.ReqComment) (*model.Comment, error)
	Update(ctx context.Context, commentID, actorID string, req dto.ReqComment) (*model.Comment, error)
	Delete(ctx context.Context, commentID, actorID string) error
}

type commentUsecase struct {
	commentRepository repository.IComment
	videoRepository   repository.IVideo
	likeRepository    repository.ILike
}

func NewCommentUsecase(commentRepository repository.IComment, videoRepository repository.IVideo, likeRepository repository.ILike) ICommentUsecase {
	return &commentUsecase{
		commentRepository: commentRepository,
		videoRepository:   videoRepository,
		likeRepository:    likeRepository,
	}
}

func (u *commentUsecase) ListByVideo(ctx context.Context, videoID string, page, limit int64) (*dto.CommentPage, error) {
	id, err := parseObjectID(videoID, "videoId")
	if err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > maxPageLimit {
		limit = defaultPageLimit
	}
	if _, err := u.videoRepository.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return u.commentRepository.ListByVideo(ctx, id, page, limit)
}

func (u *commentUsecase) Add(ctx context.Context, videoID, ownerID string, req dto.ReqComment) (*model.Comment, error) {
	id, err := parseObjectID(videoID, "videoId")
	if err != nil {
		return nil, err
	}
	owner, err := parseObjectID(ownerID, "userId")
	if err != nil {
		return nil, err
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, model.NewValidationError("content is required")
	}
	if _, err := u.videoRepository.GetByID(ctx, id); err != nil {
		return nil, err
	}

	return u.commentRepository.Create(ctx, model.Comment{
		Content: content,
		Video:   id,
		Owner:   owner,
	})
}

func (u *commentUsecase) Update(ctx context.Context, commentID, actorID string, req dto.ReqComment) (*model.Comment, error) {
	id, err := parseObjectID(commentID, "commentId")
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

	comment, err := u.commentRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment.Owner != actor {
		return nil, model.NewAuthorizationError("You are not the owner of the comment")
	}

	return u.commentRepository.UpdateContent(ctx, id, content)
}

func (u *commentUsecase) Delete(ctx context.Context, commentID, actorID string) error {
	id, err := parseObjectID(commentID, "commentId")
	if err != nil {
		return err
	}
	actor, err := parseObjectID(actorID, "userId")
	if err != nil {
		return err
	}

	comment, err := u.commentRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if comment.Owner != actor {
		return model.NewAuthorizationError("You are not the owner of the comment")
	}

	if err := u.commentRepository.Delete(ctx, id); err != nil {
		return err
	}
	if err := u.likeRepository.DeleteByComment(ctx, id); err != nil {
		logger.GetLogger().WithField("commentId", commentID).WithField("error", err).Warn("Error while deleting comment likes")
	}
	return nil
}
