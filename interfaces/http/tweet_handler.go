package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"videotube/domain/dto"
	"videotube/infrastructure/logger"
	"videotube/usecase"
)

type ITweetHandler interface {
	Create(c *gin.Context)
	ListByUser(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type TweetHandler struct {
	tweetUsecase usecase.ITweetUsecase
}

func NewTweetHandler(tweetUsecase usecase.ITweetUsecase) ITweetHandler {
	return &TweetHandler{tweetUsecase: tweetUsecase}
}

func (tweetHandler *TweetHandler) Create(c *gin.Context) {
	var req dto.ReqTweet
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		respond(c, http.StatusBadRequest, nil, "Invalid request body")
		return
	}

	tweet, err := tweetHandler.tweetUsecase.Create(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, tweet, "Tweet created successfully")
}

func (tweetHandler *TweetHandler) ListByUser(c *gin.Context) {
	tweets, err := tweetHandler.tweetUsecase.ListByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, tweets, "Tweets fetched successfully")
}

func (tweetHandler *TweetHandler) Update(c *gin.Context) {
	var req dto.ReqTweet
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		respond(c, http.StatusBadRequest, nil, "Invalid request body")
		return
	}

	tweet, err := tweetHandler.tweetUsecase.Update(c.Request.Context(), c.Param("tweetId"), currentUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, tweet, "Tweet updated successfully")
}

func (tweetHandler *TweetHandler) Delete(c *gin.Context) {
	if err := tweetHandler.tweetUsecase.Delete(c.Request.Context(), c.Param("tweetId"), currentUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, nil, "Tweet deleted successfully")
}
