package handler

import (
	"net/http"

	"contact_api/internal/model"
	"contact_api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// UserHandler handles account and session requests
type UserHandler struct {
	service service.UserService
	log     *logrus.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(s service.UserService, log *logrus.Logger) *UserHandler {
	return &UserHandler{service: s, log: log}
}

func (h *UserHandler) Register(c *gin.Context) {
	var req model.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	resp, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	respondData(c, resp)
}

func (h *UserHandler) Login(c *gin.Context) {
	var req model.LoginUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	respondData(c, resp)
}

func (h *UserHandler) Current(c *gin.Context) {
	user, ok := getAuthUser(c)
	if !ok {
		return
	}

	resp, err := h.service.Current(c.Request.Context(), user)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	respondData(c, resp)
}

func (h *UserHandler) Update(c *gin.Context) {
	user, ok := getAuthUser(c)
	if !ok {
		return
	}

	var req model.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	resp, err := h.service.Update(c.Request.Context(), user, req)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	respondData(c, resp)
}

func (h *UserHandler) Logout(c *gin.Context) {
	user, ok := getAuthUser(c)
	if !ok {
		return
	}

	if err := h.service.Logout(c.Request.Context(), user); err != nil {
		writeError(c, h.log, err)
		return
	}
	respondData(c, true)
}

// RegisterUserRoutes registers user routes
func (h *UserHandler) RegisterUserRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	userGroup := rg.Group("/users")
	{
		userGroup.POST("", h.Register)
		userGroup.POST("/login", h.Login)

		current := userGroup.Group("/current", authMW)
		current.GET("", h.Current)
		current.PATCH("", h.Update)
		current.DELETE("", h.Logout)
	}
}
