package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"videotube/usecase"
)

type ILikeHandler interface {
	ToggleVideoLike(c *gin.Context)
	ToggleCommentLike(c *gin.Context)
	ToggleTweetLike(c *gin.Context)
	LikedVideos(c *gin.Context)
}

type LikeHandler struct {
	likeUsecase usecase.ILikeUsecase
}

func NewLikeHandler(likeUsecase usecase.ILikeUsecase) ILikeHandler {
	return &LikeHandler{likeUsecase: likeUsecase}
}

func (likeHandler *LikeHandler) ToggleVideoLike(c *gin.Context) {
	result, err := likeHandler.likeUsecase.ToggleVideoLike(c.Request.Context(), c.Param("videoId"), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, result, "Video like toggled successfully")
}

func (likeHandler *LikeHandler) ToggleCommentLike(c *gin.Context) {
	result, err := likeHandler.likeUsecase.ToggleCommentLike(c.Request.Context(), c.Param("commentId"), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, result, "Comment like toggled successfully")
}

func (likeHandler *LikeHandler) ToggleTweetLike(c *gin.Context) {
	result, err := likeHandler.likeUsecase.ToggleTweetLike(c.Request.Context(), c.Param("tweetId"), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, result, "Tweet like toggled successfully")
}

func (likeHandler *LikeHandler) LikedVideos(c *gin.Context) {
	videos, err := likeHandler.likeUsecase.GetLikedVideos(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, videos, "Liked videos fetched successfully")
}
