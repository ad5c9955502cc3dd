package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"videotube/usecase"
)

type ISubscriptionHandler interface {
	Toggle(c *gin.Context)
	ListSubscribers(c *gin.Context)
	ListSubscribedChannels(c *gin.Context)
}

type SubscriptionHandler struct {
	subscriptionUsecase usecase.ISubscriptionUsecase
}

func NewSubscriptionHandler(subscriptionUsecase usecase.ISubscriptionUsecase) ISubscriptionHandler {
	return &SubscriptionHandler{subscriptionUsecase: subscriptionUsecase}
}

func (subscriptionHandler *SubscriptionHandler) Toggle(c *gin.Context) {
	result, err := subscriptionHandler.subscriptionUsecase.Toggle(c.Request.Context(), c.Param("channelId"), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, result, "Subscription toggled successfully")
}

func (subscriptionHandler *SubscriptionHandler) ListSubscribers(c *gin.Context) {
	subscribers, err := subscriptionHandler.subscriptionUsecase.ListSubscribers(c.Request.Context(), c.Param("channelId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, subscribers, "Subscribers fetched successfully")
}

func (subscriptionHandler *SubscriptionHandler) ListSubscribedChannels(c *gin.Context) {
	channels, err := subscriptionHandler.subscriptionUsecase.ListSubscribedChannels(c.Request.Context(), c.Param("subscriberId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, channels, "Subscribed channels fetched successfully")
}
