package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type IHealthcheckHandler interface {
	Healthcheck(c *gin.Context)
}

type HealthcheckHandler struct{}

func NewHealthcheckHandler() IHealthcheckHandler {
	return &HealthcheckHandler{}
}

func (healthcheckHandler *HealthcheckHandler) Healthcheck(c *gin.Context) {
	respond(c, http.StatusOK, gin.H{"status": "OK"}, "Service is healthy")
}
