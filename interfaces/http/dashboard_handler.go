package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"videotube/usecase"
)

type IDashboardHandler interface {
	ChannelStats(c *gin.Context)
	ChannelVideos(c *gin.Context)
}

type DashboardHandler struct {
	dashboardUsecase usecase.IDashboardUsecase
}

func NewDashboardHandler(dashboardUsecase usecase.IDashboardUsecase) IDashboardHandler {
	return &DashboardHandler{dashboardUsecase: dashboardUsecase}
}

func (dashboardHandler *DashboardHandler) ChannelStats(c *gin.Context) {
	stats, err := dashboardHandler.dashboardUsecase.GetChannelStats(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, stats, "Channel stats fetched successfully")
}

func (dashboardHandler *DashboardHandler) ChannelVideos(c *gin.Context) {
	videos, err := dashboardHandler.dashboardUsecase.GetChannelVideos(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, videos, "Channel videos fetched successfully")
}
