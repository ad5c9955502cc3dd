package http

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"videotube/domain/dto"
	"videotube/domain/model"
	"videotube/infrastructure/configuration"
	"videotube/infrastructure/logger"
)

const ErrorUnmarshal = "Error while unmarshal"

func respond(c *gin.Context, statusCode int, data interface{}, message string) {
	c.JSON(statusCode, dto.NewResponse(statusCode, data, message))
}

// respondError translates a usecase error into the envelope. Anything that is
// not an ApiError is an internal failure and stays opaque to the client.
func respondError(c *gin.Context, err error) {
	if apiErr, ok := model.AsApiError(err); ok {
		c.JSON(apiErr.StatusCode, dto.NewErrorResponse(apiErr.StatusCode, apiErr.Message, apiErr.Errs))
		return
	}
	logger.GetLogger().WithField("error", err).Error("Unhandled error")
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Something went wrong", nil))
}

// saveUploadedFile spools a multipart file into the temp dir and returns the
// local path, or "" when the part is absent.
func saveUploadedFile(c *gin.Context, field string) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		if err == http.ErrMissingFile {
			return "", nil
		}
		return "", model.NewValidationError("Invalid " + field + " file")
	}
	dst := filepath.Join(configuration.C.App.TempDir, uuid.NewString()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, dst); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while saving uploaded file")
		return "", model.NewApiError(http.StatusInternalServerError, "Something went wrong")
	}
	return dst, nil
}

func currentUserID(c *gin.Context) string {
	return c.GetString("user_id")
}
