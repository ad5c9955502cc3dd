package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"videotube/domain/dto"
	"videotube/infrastructure/logger"
	"videotube/usecase"
)

type IPlaylistHandler interface {
	Create(c *gin.Context)
	Get(c *gin.Context)
	ListByUser(c *gin.Context)
	AddVideo(c *gin.Context)
	RemoveVideo(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type PlaylistHandler struct {
	playlistUsecase usecase.IPlaylistUsecase
}

func NewPlaylistHandler(playlistUsecase usecase.IPlaylistUsecase) IPlaylistHandler {
	return &PlaylistHandler{playlistUsecase: playlistUsecase}
}

func (playlistHandler *PlaylistHandler) Create(c *gin.Context) {
	var req dto.ReqPlaylist
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		respond(c, http.StatusBadRequest, nil, "Invalid request body")
		return
	}

	playlist, err := playlistHandler.playlistUsecase.Create(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, playlist, "Playlist created successfully")
}

func (playlistHandler *PlaylistHandler) Get(c *gin.Context) {
	playlist, err := playlistHandler.playlistUsecase.Get(c.Request.Context(), c.Param("playlistId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, playlist, "Playlist fetched successfully")
}

func (playlistHandler *PlaylistHandler) ListByUser(c *gin.Context) {
	playlists, err := playlistHandler.playlistUsecase.ListByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, playlists, "Playlists fetched successfully")
}

func (playlistHandler *PlaylistHandler) AddVideo(c *gin.Context) {
	playlist, err := playlistHandler.playlistUsecase.AddVideo(c.Request.Context(), c.Param("playlistId"), c.Param("videoId"), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, playlist, "Video added to playlist successfully")
}

func (playlistHandler *PlaylistHandler) RemoveVideo(c *gin.Context) {
	playlist, err := playlistHandler.playlistUsecase.RemoveVideo(c.Request.Context(), c.Param("playlistId"), c.Param("videoId"), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, playlist, "Video removed from playlist successfully")
}

func (playlistHandler *PlaylistHandler) Update(c *gin.Context) {
	var req dto.ReqPlaylist
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		respond(c, http.StatusBadRequest, nil, "Invalid request body")
		return
	}

	playlist, err := playlistHandler.playlistUsecase.Update(c.Request.Context(), c.Param("playlistId"), currentUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, playlist, "Playlist updated successfully")
}

func (playlistHandler *PlaylistHandler) Delete(c *gin.Context) {
	if err := playlistHandler.playlistUsecase.Delete(c.Request.Context(), c.Param("playlistId"), currentUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, nil, "Playlist deleted successfully")
}
