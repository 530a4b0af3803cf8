package handler

import (
	"net/http"
	"strconv"

	"contact_api/internal/model"
	"contact_api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ContactHandler handles contact requests of the authenticated user
type ContactHandler struct {
	service service.ContactService
	log     *logrus.Logger
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(s service.ContactService, log *logrus.Logger) *ContactHandler {
	return &ContactHandler{service: s, log: log}
}

// A malformed id cannot name an existing contact, so it is a 404 rather than a 400
func parseContactID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusNotFound, service.ErrContactNotFound.Error())
		return 0, false
	}
	return id, true
}

func (h *ContactHandler) Create(c *gin.Context) {
	user, ok := getAuthUser(c)
	if !ok {
		return
	}

	var req model.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	contact, err := h.service.Create(c.Request.Context(), user, req)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	respondData(c, contact)
}

func (h *ContactHandler) Get(c *gin.Context) {
	user, ok := getAuthUser(c)
	if !ok {
		return
	}
	contactID, ok := parseContactID(c)
	if !ok {
		return
	}

	contact, err := h.service.Get(c.Request.Context(), user, contactID)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	respondData(c, contact)
}

func (h *ContactHandler) Update(c *gin.Context) {
	user, ok := getAuthUser(c)
	if !ok {
		return
	}
	contactID, ok := parseContactID(c)
	if !ok {
		return
	}

	var req model.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	contact, err := h.service.Update(c.Request.Context(), user, contactID, req)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	respondData(c, contact)
}

func (h *ContactHandler) Delete(c *gin.Context) {
	user, ok := getAuthUser(c)
	if !ok {
		return
	}
	contactID, ok := parseContactID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), user, contactID); err != nil {
		writeError(c, h.log, err)
		return
	}
	respondData(c, true)
}

func (h *ContactHandler) Search(c *gin.Context) {
	user, ok := getAuthUser(c)
	if !ok {
		return
	}

	var req model.SearchContactRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid query: "+err.Error())
		return
	}

	contacts, paging, err := h.service.Search(c.Request.Context(), user, req)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": contacts, "paging": paging})
}

// RegisterContactRoutes registers contact routes, all behind authMW
func (h *ContactHandler) RegisterContactRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	contactGroup := rg.Group("/contacts", authMW)
	{
		contactGroup.POST("", h.Create)
		contactGroup.GET("", h.Search)
		contactGroup.GET("/:id", h.Get)
		contactGroup.PUT("/:id", h.Update)
		contactGroup.DELETE("/:id", h.Delete)
	}
}
