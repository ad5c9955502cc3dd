package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"videotube/domain/dto"
	"videotube/infrastructure/logger"
	"videotube/usecase"
)

type ICommentHandler interface {
	List(c *gin.Context)
	Add(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type CommentHandler struct {
	commentUsecase usecase.ICommentUsecase
}

func NewCommentHandler(commentUsecase usecase.ICommentUsecase) ICommentHandler {
	return &CommentHandler{commentUsecase: commentUsecase}
}

func (commentHandler *CommentHandler) List(c *gin.Context) {
	page, err := commentHandler.commentUsecase.ListByVideo(
		c.Request.Context(),
		c.Param("videoId"),
		queryInt64(c, "page", 1),
		queryInt64(c, "limit", 10),
	)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, page, "Comments fetched successfully")
}

func (commentHandler *CommentHandler) Add(c *gin.Context) {
	var req dto.ReqComment
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		respond(c, http.StatusBadRequest, nil, "Invalid request body")
		return
	}

	comment, err := commentHandler.commentUsecase.Add(c.Request.Context(), c.Param("videoId"), currentUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, comment, "Comment added successfully")
}

func (commentHandler *CommentHandler) Update(c *gin.Context) {
	var req dto.ReqComment
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		respond(c, http.StatusBadRequest, nil, "Invalid request body")
		return
	}

	comment, err := commentHandler.commentUsecase.Update(c.Request.Context(), c.Param("commentId"), currentUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, comment, "Comment updated successfully")
}

func (commentHandler *CommentHandler) Delete(c *gin.Context) {
	if err := commentHandler.commentUsecase.Delete(c.Request.Context(), c.Param("commentId"), currentUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, nil, "Comment deleted successfully")
}
