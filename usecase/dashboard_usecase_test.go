package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/v2/bson"

	"videotube/domain/dto"
	"videotube/usecase"
)

func TestDashboardUsecase_GetChannelStats_CacheHit(t *testing.T) {
	mockDashboardRepository := new(MockDashboardRepository)
	mockStatsCache := new(MockStatsCache)

	owner := bson.NewObjectID()
	cached := &dto.ChannelStats{TotalVideos: 3, TotalViews: 15, TotalSubscribers: 2, TotalLikes: 4}
	mockStatsCache.On("GetChannelStats", mock.Anything, owner.Hex()).
		Return(cached, true).
		Once()

	dashboardUsecase := usecase.NewDashboardUsecase(mockDashboardRepository, new(MockVideoRepository), mockStatsCache)
	stats, err := dashboardUsecase.GetChannelStats(context.Background(), owner.Hex())

	assert.NoError(t, err)
	assert.Equal(t, cached, stats)
	mockDashboardRepository.AssertNotCalled(t, "GetChannelStats", mock.Anything, mock.Anything)
}

func TestDashboardUsecase_GetChannelStats_CacheMiss(t *testing.T) {
	mockDashboardRepository := new(MockDashboardRepository)
	mockStatsCache := new(MockStatsCache)

	owner := bson.NewObjectID()
	fresh := &dto.ChannelStats{TotalVideos: 3, TotalViews: 15, TotalSubscribers: 2, TotalLikes: 4}
	mockStatsCache.On("GetChannelStats", mock.Anything, owner.Hex()).
		Return(nil, false).
		Once()
	mockDashboardRepository.On("GetChannelStats", mock.Anything, owner).
		Return(fresh, nil).
		Once()
	mockStatsCache.On("SetChannelStats", mock.Anything, owner.Hex(), fresh).
		Once()

	dashboardUsecase := usecase.NewDashboardUsecase(mockDashboardRepository, new(MockVideoRepository), mockStatsCache)
	stats, err := dashboardUsecase.GetChannelStats(context.Background(), owner.Hex())

	assert.NoError(t, err)
	assert.Equal(t, int64(15), stats.TotalViews)
	mockStatsCache.AssertExpectations(t)
	mockDashboardRepository.AssertExpectations(t)
}
