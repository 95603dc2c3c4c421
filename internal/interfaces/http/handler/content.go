package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	storeapp "github.com/jkhopkins39/sxnctuary/internal/application/store"
	"github.com/jkhopkins39/sxnctuary/internal/interfaces/http/dto"
)

// ContentHandler handles content API endpoints
type ContentHandler struct {
	BaseHandler
	contentService *storeapp.ContentService
}

// NewContentHandler creates a new ContentHandler
func NewContentHandler(contentService *storeapp.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

// RegisterRoutes registers the content routes
func (h *ContentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/content", h.List)
	rg.POST("/content", h.Upsert)
	rg.POST("/seed-content", h.Seed)
}

// UpsertContentRequest sets the value for a well-known content key
type UpsertContentRequest struct {
	ID    string `json:"id" binding:"required,max=100"`
	Value string `json:"value"`
}

// List returns all content rows
func (h *ContentHandler) List(c *gin.Context) {
	contents, err := h.contentService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err, "Failed to fetch content")
		return
	}
	c.JSON(http.StatusOK, contents)
}

// Upsert creates or overwrites one content value
func (h *ContentHandler) Upsert(c *gin.Context) {
	var req UpsertContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	content, err := h.contentService.Upsert(c.Request.Context(), req.ID, req.Value)
	if err != nil {
		h.HandleError(c, err, "Failed to save content")
		return
	}
	c.JSON(http.StatusOK, content)
}

// Seed populates the default content keys once
func (h *ContentHandler) Seed(c *gin.Context) {
	seeded, err := h.contentService.Seed(c.Request.Context())
	if err != nil {
		h.HandleError(c, err, "Failed to seed content")
		return
	}

	message := "Content already seeded"
	if seeded {
		message = "Content seeded successfully"
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: message})
}
