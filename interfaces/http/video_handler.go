package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"videotube/domain/dto"
	"videotube/infrastructure/logger"
	"videotube/usecase"
)

type IVideoHandler interface {
	List(c *gin.Context)
	Publish(c *gin.Context)
	Get(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	TogglePublish(c *gin.Context)
}

type VideoHandler struct {
	videoUsecase usecase.IVideoUsecase
}

func NewVideoHandler(videoUsecase usecase.IVideoUsecase) IVideoHandler {
	return &VideoHandler{videoUsecase: videoUsecase}
}

func (videoHandler *VideoHandler) List(c *gin.Context) {
	q := dto.ListVideosQuery{
		Page:     queryInt64(c, "page", 1),
		Limit:    queryInt64(c, "limit", 10),
		Query:    c.Query("query"),
		SortBy:   c.Query("sortBy"),
		SortType: c.Query("sortType"),
		OwnerID:  c.Query("userId"),
	}

	page, err := videoHandler.videoUsecase.List(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, page, "Videos fetched successfully")
}

func (videoHandler *VideoHandler) Publish(c *gin.Context) {
	var req dto.ReqPublishVideo
	if err := c.ShouldBind(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		respond(c, http.StatusBadRequest, nil, "Invalid request body")
		return
	}

	videoFilePath, err := saveUploadedFile(c, "videoFile")
	if err != nil {
		respondError(c, err)
		return
	}
	thumbnailPath, err := saveUploadedFile(c, "thumbnail")
	if err != nil {
		respondError(c, err)
		return
	}

	video, err := videoHandler.videoUsecase.Publish(c.Request.Context(), currentUserID(c), req, videoFilePath, thumbnailPath)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, video, "Video published successfully")
}

func (videoHandler *VideoHandler) Get(c *gin.Context) {
	video, err := videoHandler.videoUsecase.Get(c.Request.Context(), c.Param("videoId"), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, video, "Video fetched successfully")
}

func (videoHandler *VideoHandler) Update(c *gin.Context) {
	var req dto.ReqUpdateVideo
	if err := c.ShouldBind(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		respond(c, http.StatusBadRequest, nil, "Invalid request body")
		return
	}

	thumbnailPath, err := saveUploadedFile(c, "thumbnail")
	if err != nil {
		respondError(c, err)
		return
	}

	video, err := videoHandler.videoUsecase.Update(c.Request.Context(), c.Param("videoId"), currentUserID(c), req, thumbnailPath)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, video, "Video updated successfully")
}

func (videoHandler *VideoHandler) Delete(c *gin.Context) {
	if err := videoHandler.videoUsecase.Delete(c.Request.Context(), c.Param("videoId"), currentUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, nil, "Video deleted successfully")
}

func (videoHandler *VideoHandler) TogglePublish(c *gin.Context) {
	video, err := videoHandler.videoUsecase.TogglePublish(c.Request.Context(), c.Param("videoId"), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, video, "Publish status toggled successfully")
}

func queryInt64(c *gin.Context, key string, fallback int64) int64 {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fallback
	}
	return v
}
