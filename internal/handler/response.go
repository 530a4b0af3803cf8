package handler

import (
	"errors"
	"net/http"

	"contact_api/internal/middleware"
	"contact_api/internal/model"
	"contact_api/internal/service"
	"contact_api/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func respondData(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"data": data})
}

func respondError(c *gin.Context, status int, errs any) {
	c.JSON(status, gin.H{"errors": errs})
}

// writeError maps a service error onto the response envelope
func writeError(c *gin.Context, log *logrus.Logger, err error) {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		respondError(c, http.StatusBadRequest, verr.Fields)
	case errors.Is(err, service.ErrUnauthorized), errors.Is(err, service.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrContactNotFound):
		respondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrUsernameTaken):
		respondError(c, http.StatusConflict, err.Error())
	default:
		log.WithError(err).WithField("path", c.FullPath()).Error("Unhandled error")
		respondError(c, http.StatusInternalServerError, "internal server error")
	}
}

// Helper to get the authenticated user from context
func getAuthUser(c *gin.Context) (*model.User, bool) {
	user, ok := middleware.AuthUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, service.ErrUnauthorized.Error())
	}
	return user, ok
}
