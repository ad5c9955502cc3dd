package usecase

import (
	"context"

	"videotube/domain/dto"
	"videotube/domain/model"
	"videotube/domain/repository"
)

type IDashboardUsecase interface {
	GetChannelStats(ctx context.Context, ownerID string) (*dto.ChannelStats, error)
	GetChannelVideos(ctx context.Context, ownerID string) ([]model.Video, error)
}

type dashboardUsecase struct {
	dashboardRepository repository.IDashboard
	videoRepository     repository.IVideo
	statsCache          repository.IStatsCache
}

func NewDashboardUsecase(dashboardRepository repository.IDashboard, videoRepository repository.IVideo, statsCache repository.IStatsCache) IDashboardUsecase {
	return &dashboardUsecase{
		dashboardRepository: dashboardRepository,
		videoRepository:     videoRepository,
		statsCache:          statsCache,
	}
}

func (u *dashboardUsecase) GetChannelStats(ctx context.Context, ownerID string) (*dto.ChannelStats, error) {
	owner, err := parseObjectID(ownerID, "userId")
	if err != nil {
		return nil, err
	}

	if stats, ok := u.statsCache.GetChannelStats(ctx, ownerID); ok {
		return stats, nil
	}

	stats, err := u.dashboardRepository.GetChannelStats(ctx, owner)
	if err != nil {
		return nil, err
	}
	u.statsCache.SetChannelStats(ctx, ownerID, stats)
	return stats, nil
}

func (u *dashboardUsecase) GetChannelVideos(ctx context.Context, ownerID string) ([]model.Video, error) {
	owner, err := parseObjectID(ownerID, "userId")
	if err != nil {
		return nil, err
	}
	return u.videoRepository.ListByOwner(ctx, owner)
}
