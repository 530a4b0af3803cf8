package handler

import (
	"context"
	"net/http"

	"contact_api/internal/middleware"
	"contact_api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Pinger reports database availability for the health check
type Pinger interface {
	Ping(ctx context.Context) error
}

// NewRouter wires middlewares and every API route onto a gin engine
func NewRouter(users service.UserService, contacts service.ContactService, db Pinger, log *logrus.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(log), middleware.CORS())

	authMW := middleware.TokenAuthMiddleware(users, log)

	apiGroup := router.Group("/api")
	NewUserHandler(users, log).RegisterUserRoutes(apiGroup, authMW)
	NewContactHandler(contacts, log).RegisterContactRoutes(apiGroup, authMW)

	router.GET("/health", func(c *gin.Context) {
		if err := db.Ping(c.Request.Context()); err != nil {
			log.WithError(err).Warn("Health check failed")
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "db": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "healthy"})
	})

	return router
}
