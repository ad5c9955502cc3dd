package usecase

import (
	"context"
	"fmt"
	"strings"

	"videotube/domain/dto"
	"videotube/domain/model"
	"videotube/domain/repository"
	"videotube/infrastructure/logger"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

type IVideoUsecase interface {
	List(ctx context.Context, q dto.ListVideosQuery) (*dto.VideoPage, error)
	Publish(ctx context.Context, ownerID string, req dto.ReqPublishVideo, videoFilePath, thumbnailPath string) (*model.Video, error)
	Get(ctx context.Context, videoID, viewerID string) (*model.Video, error)
	Update(ctx context.Context, videoID, actorID string, req dto.ReqUpdateVideo, thumbnailPath string) (*model.Video, error)
	Delete(ctx context.Context, videoID, actorID string) error
	TogglePublish(ctx context.Context, videoID, actorID string) (*model.Video, error)
}

type videoUsecase struct {
	videoRepository    repository.IVideo
	userRepository     repository.IUser
	commentRepository  repository.IComment
	likeRepository     repository.ILike
	playlistRepository repository.IPlaylist
	media              repository.IMedia
}

func NewVideoUsecase(
	videoRepository repository.IVideo,
	userRepository repository.IUser,
	commentRepository repository.IComment,
	likeRepository repository.ILike,
	playlistRepository repository.IPlaylist,
	media repository.IMedia,
) IVideoUsecase {
	return &videoUsecase{
		videoRepository:    videoRepository,
		userRepository:     userRepository,
		commentRepository:  commentRepository,
		likeRepository:     likeRepository,
		playlistRepository: playlistRepository,
		media:              media,
	}
}

func (u *videoUsecase) List(ctx context.Context, q dto.ListVideosQuery) (*dto.VideoPage, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 || q.Limit > maxPageLimit {
		q.Limit = defaultPageLimit
	}

	owner, err := parseObjectID(q.OwnerID, "userId")
	if err != nil {
		return nil, err
	}
	if _, err := u.userRepository.GetByID(ctx, owner); err != nil {
		return nil, err
	}

	q.Query = strings.TrimSpace(q.Query)
	return u.videoRepository.List(ctx, q, owner)
}

func (u *videoUsecase) Publish(ctx context.Context, ownerID string, req dto.ReqPublishVideo, videoFilePath, thumbnailPath string) (*model.Video, error) {
	owner, err := parseObjectID(ownerID, "userId")
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(req.Title)
	description := strings.TrimSpace(req.Description)
	if title == "" {
		return nil, model.NewValidationError("title is required")
	}
	if description == "" {
		return nil, model.NewValidationError("description is required")
	}
	if videoFilePath == "" {
		return nil, model.NewValidationError("Video file is required")
	}
	if thumbnailPath == "" {
		return nil, model.NewValidationError("Thumbnail file is required")
	}

	videoAsset, err := u.media.Upload(ctx, videoFilePath)
	if err != nil {
		return nil, err
	}
	thumbnailAsset, err := u.media.Upload(ctx, thumbnailPath)
	if err != nil {
		// Don't orphan the already-stored video file.
		if delErr := u.media.Delete(ctx, videoAsset.AssetID, model.MediaKindVideo); delErr != nil {
			logger.GetLogger().WithField("assetId", videoAsset.AssetID).WithField("error", delErr).Warn("Error while deleting orphaned video asset")
		}
		return nil, err
	}

	video := model.Video{
		VideoFile:   model.Asset{URL: videoAsset.URL, AssetID: videoAsset.AssetID},
		Thumbnail:   model.Asset{URL: thumbnailAsset.URL, AssetID: thumbnailAsset.AssetID},
		Title:       title,
		Description: description,
		Duration:    videoAsset.Duration,
		IsPublished: true,
		Owner:       owner,
	}
	return u.videoRepository.Create(ctx, video)
}

func (u *videoUsecase) Get(ctx context.Context, videoID, viewerID string) (*model.Video, error) {
	id, err := parseObjectID(videoID, "videoId")
	if err != nil {
		return nil, err
	}
	viewer, err := parseObjectID(viewerID, "userId")
	if err != nil {
		return nil, err
	}

	video, err := u.videoRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !video.IsPublished && video.Owner != viewer {
		return nil, model.NewNotFoundError("Video not found")
	}

	// View count and watch history are best effort; a failed bump should not
	// fail the read.
	if err := u.videoRepository.IncrementViews(ctx, id); err != nil {
		logger.GetLogger().WithField("videoId", videoID).WithField("error", err).Warn("Error while incrementing views")
	} else {
		video.Views++
	}
	if err := u.userRepository.AppendWatchHistory(ctx, viewer, id); err != nil {
		logger.GetLogger().WithField("videoId", videoID).WithField("error", err).Warn("Error while appending watch history")
	}

	return video, nil
}

func (u *videoUsecase) Update(ctx context.Context, videoID, actorID string, req dto.ReqUpdateVideo, thumbnailPath string) (*model.Video, error) {
	id, err := parseObjectID(videoID, "videoId")
	if err != nil {
		return nil, err
	}
	actor, err := parseObjectID(actorID, "userId")
	if err != nil {
		return nil, err
	}

	patch := dto.VideoPatch{}
	if title := strings.TrimSpace(req.Title); title != "" {
		patch.Title = &title
	}
	if description := strings.TrimSpace(req.Description); description != "" {
		patch.Description = &description
	}
	if patch.Title == nil && patch.Description == nil && thumbnailPath == "" {
		return nil, model.NewValidationError("Nothing to update")
	}

	video, err := u.videoRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if video.Owner != actor {
		return nil, model.NewAuthorizationError("You are not the owner of the video")
	}

	oldThumbnailID := ""
	if thumbnailPath != "" {
		uploaded, err := u.media.Upload(ctx, thumbnailPath)
		if err != nil {
			return nil, err
		}
		patch.Thumbnail = &model.Asset{URL: uploaded.URL, AssetID: uploaded.AssetID}
		oldThumbnailID = video.Thumbnail.AssetID
	}

	updated, err := u.videoRepository.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	// The replaced thumbnail goes only after the new record is persisted.
	if oldThumbnailID != "" {
		if err := u.media.Delete(ctx, oldThumbnailID, model.MediaKindImage); err != nil {
			logger.GetLogger().WithField("assetId", oldThumbnailID).WithField("error", err).Warn("Error while deleting replaced thumbnail")
		}
	}
	return updated, nil
}

// Delete cascades in a fixed order: likes on the video's comments, the
// comments, likes on the video itself, playlist references, then the video
// record and finally the stored media assets. Any failing step aborts and
// reports how far the cascade got.
func (u *videoUsecase) Delete(ctx context.Context, videoID, actorID string) error {
	id, err := parseObjectID(videoID, "videoId")
	if err != nil {
		return err
	}
	actor, err := parseObjectID(actorID, "userId")
	if err != nil {
		return err
	}

	video, err := u.videoRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if video.Owner != actor {
		return model.NewAuthorizationError("You are not the owner of the video")
	}

	commentIDs, err := u.commentRepository.ListIDsByVideo(ctx, id)
	if err != nil {
		return fmt.Errorf("cascade delete: listing comments: %w", err)
	}
	if err := u.likeRepository.DeleteByComments(ctx, commentIDs); err != nil {
		return fmt.Errorf("cascade delete: comment likes: %w", err)
	}
	if err := u.commentRepository.DeleteByVideo(ctx, id); err != nil {
		return fmt.Errorf("cascade delete: comments: %w", err)
	}
	if err := u.likeRepository.DeleteByVideo(ctx, id); err != nil {
		return fmt.Errorf("cascade delete: video likes: %w", err)
	}
	if err := u.playlistRepository.PullVideoFromAll(ctx, id); err != nil {
		return fmt.Errorf("cascade delete: playlists: %w", err)
	}
	if err := u.videoRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("cascade delete: video record: %w", err)
	}

	// Asset removal comes last; the records are already gone, so failures
	// here only leak storage and are logged, not surfaced.
	if err := u.media.Delete(ctx, video.Thumbnail.AssetID, model.MediaKindImage); err != nil {
		logger.GetLogger().WithField("assetId", video.Thumbnail.AssetID).WithField("error", err).Warn("Error while deleting thumbnail asset")
	}
	if err := u.media.Delete(ctx, video.VideoFile.AssetID, model.MediaKindVideo); err != nil {
		logger.GetLogger().WithField("assetId", video.VideoFile.AssetID).WithField("error", err).Warn("Error while deleting video asset")
	}
	return nil
}

func (u *videoUsecase) TogglePublish(ctx context.Context, videoID, actorID string) (*model.Video, error) {
	id, err := parseObjectID(videoID, "videoId")
	if err != nil {
		return nil, err
	}
	actor, err := parseObjectID(actorID, "userId")
	if err != nil {
		return nil, err
	}

	video, err := u.videoRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if video.Owner != actor {
		return nil, model.NewAuthorizationError("You are not the owner of the video")
	}

	toggled := !video.IsPublished
	return u.videoRepository.Update(ctx, id, dto.VideoPatch{IsPublished: &toggled})
}
