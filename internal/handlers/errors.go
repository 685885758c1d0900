package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/bcorey85/timestamp-api/internal/services"
	"github.com/bcorey85/timestamp-api/internal/utils"
)

// respondServiceError maps the service error taxonomy onto HTTP responses.
// Anything outside the taxonomy is a server failure and gets logged.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		utils.NotFound(c, "")
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.Unauthorized(c, err.Error())
	case errors.Is(err, services.ErrEmailInUse), errors.Is(err, services.ErrBadRequest):
		utils.Error(c, http.StatusBadRequest, err.Error())
	default:
		logrus.WithError(err).Error("unhandled service error")
		utils.InternalError(c)
	}
}
