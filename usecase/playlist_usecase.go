package usecase

import (
	"context"
	"strings"

	"videotube/domain/dto"
	"videotube/domain/model"
	"videotube/domain/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type IPlaylistUsecase interface {
	Create(ctx context.Context, ownerID string, req dto.ReqPlaylist) (*model.Playlist, error)
	Get(ctx context.Context, playlistID string) (*model.Playlist, error)
	ListByUser(ctx context.Context, userID string) ([]model.Playlist, error)
	AddVideo(ctx context.Context, playlistID, videoID, actorID string) (*model.Playlist, error)
	RemoveVideo(ctx context.Context, playlistID, videoID, actorID string) (*model.Playlist, error)
	Update(ctx context.Context, playlistID, actorID string, req dto.ReqPlaylist) (*model.Playlist, error)
	Delete(ctx context.Context, playlistID, actorID string) error
}

type playlistUsecase struct {
	playlistRepository repository.IPlaylist
	videoRepository    repository.IVideo
	userRepository     repository.IUser
}

func NewPlaylistUsecase(playlistRepository repository.IPlaylist, videoRepository repository.IVideo, userRepository repository.IUser) IPlaylistUsecase {
	return &playlistUsecase{
		playlistRepository: playlistRepository,
		videoRepository:    videoRepository,
		userRepository:     userRepository,
	}
}

func (u *playlistUsecase) Create(ctx context.Context, ownerID string, req dto.ReqPlaylist) (*model.Playlist, error) {
	owner, err := parseObjectID(ownerID, "userId")
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	description := strings.TrimSpace(req.Description)
	if name == "" {
		return nil, model.NewValidationError("name is required")
	}
	if description == "" {
		return nil, model.NewValidationError("description is required")
	}

	return u.playlistRepository.Create(ctx, model.Playlist{
		Name:        name,
		Description: description,
		Videos:      []bson.ObjectID{},
		Owner:       owner,
	})
}

func (u *playlistUsecase) Get(ctx context.Context, playlistID string) (*model.Playlist, error) {
	id, err := parseObjectID(playlistID, "playlistId")
	if err != nil {
		return nil, err
	}
	return u.playlistRepository.GetByID(ctx, id)
}

func (u *playlistUsecase) ListByUser(ctx context.Context, userID string) ([]model.Playlist, error) {
	id, err := parseObjectID(userID, "userId")
	if err != nil {
		return nil, err
	}
	if _, err := u.userRepository.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return u.playlistRepository.ListByOwner(ctx, id)
}

func (u *playlistUsecase) AddVideo(ctx context.Context, playlistID, videoID, actorID string) (*model.Playlist, error) {
	playlist, video, err := u.authorize(ctx, playlistID, videoID, actorID)
	if err != nil {
		return nil, err
	}
	return u.playlistRepository.AddVideo(ctx, playlist.ID, video.ID)
}

func (u *playlistUsecase) RemoveVideo(ctx context.Context, playlistID, videoID, actorID string) (*model.Playlist, error) {
	playlist, video, err := u.authorize(ctx, playlistID, videoID, actorID)
	if err != nil {
		return nil, err
	}
	return u.playlistRepository.RemoveVideo(ctx, playlist.ID, video.ID)
}

// authorize loads both records and requires the actor to own the playlist.
func (u *playlistUsecase) authorize(ctx context.Context, playlistID, videoID, actorID string) (*model.Playlist, *model.Video, error) {
	pid, err := parseObjectID(playlistID, "playlistId")
	if err != nil {
		return nil, nil, err
	}
	vid, err := parseObjectID(videoID, "videoId")
	if err != nil {
		return nil, nil, err
	}
	actor, err := parseObjectID(actorID, "userId")
	if err != nil {
		return nil, nil, err
	}

	playlist, err := u.playlistRepository.GetByID(ctx, pid)
	if err != nil {
		return nil, nil, err
	}
	if playlist.Owner != actor {
		return nil, nil, model.NewAuthorizationError("You are not the owner of the playlist")
	}
	video, err := u.videoRepository.GetByID(ctx, vid)
	if err != nil {
		return nil, nil, err
	}
	return playlist, video, nil
}

func (u *playlistUsecase) Update(ctx context.Context, playlistID, actorID string, req dto.ReqPlaylist) (*model.Playlist, error) {
	id, err := parseObjectID(playlistID, "playlistId")
	if err != nil {
		return nil, err
	}
	actor, err := parseObjectID(actorID, "userId")
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	description := strings.TrimSpace(req.Description)
	if name == "" {
		return nil, model.NewValidationError("name is required")
	}
	if description == "" {
		return nil, model.NewValidationError("description is required")
	}

	playlist, err := u.playlistRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if playlist.Owner != actor {
		return nil, model.NewAuthorizationError("You are not the owner of the playlist")
	}

	return u.playlistRepository.UpdateDetails(ctx, id, name, description)
}

func (u *playlistUsecase) Delete(ctx context.Context, playlistID, actorID string) error {
	id, err := parseObjectID(playlistID, "playlistId")
	if err != nil {
		return err
	}
	actor, err := parseObjectID(actorID, "userId")
	if err != nil {
		return err
	}

	playlist, err := u.playlistRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if playlist.Owner != actor {
		return model.NewAuthorizationError("You are not the owner of the playlist")
	}

	return u.playlistRepository.Delete(ctx, id)
}
