package middleware

import (
	"errors"
	"net/http"

	"contact_api/internal/model"
	"contact_api/internal/service"
	"contact_api/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const AuthUserKey = "authUser"

// TokenAuthMiddleware resolves the Authorization header to a user through the
// store on every request
func TokenAuthMiddleware(users service.UserService, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := utils.ExtractToken(c.GetHeader("Authorization"))
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": service.ErrUnauthorized.Error()})
			return
		}

		user, err := users.Authenticate(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, service.ErrUnauthorized) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": service.ErrUnauthorized.Error()})
				return
			}
			log.WithError(err).Error("Failed to authenticate request")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"errors": "internal server error"})
			return
		}

		c.Set(AuthUserKey, user)
		c.Next()
	}
}

// AuthUser returns the user stored by TokenAuthMiddleware
func AuthUser(c *gin.Context) (*model.User, bool) {
	val, exists := c.Get(AuthUserKey)
	if !exists {
		return nil, false
	}
	user, ok := val.(*model.User)
	return user, ok && user != nil
}
