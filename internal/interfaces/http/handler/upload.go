package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jkhopkins39/sxnctuary/internal/application/upload"
	"github.com/jkhopkins39/sxnctuary/internal/interfaces/http/dto"
)

// UploadHandler relays image uploads to the external host
type UploadHandler struct {
	BaseHandler
	uploadService *upload.Service
}

// NewUploadHandler creates a new UploadHandler
func NewUploadHandler(uploadService *upload.Service) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// RegisterRoutes registers the upload route
func (h *UploadHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/upload", h.Upload)
}

// Upload accepts multipart files under the "images" field and returns
// hosted URLs in submission order.
func (h *UploadHandler) Upload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		h.BadRequest(c, "Invalid multipart form")
		return
	}

	urls, err := h.uploadService.Relay(c.Request.Context(), form.File["images"])
	if err != nil {
		h.HandleError(c, err, "Failed to upload images")
		return
	}

	message := fmt.Sprintf("%d file(s) uploaded successfully", len(urls))
	c.JSON(http.StatusOK, dto.NewUploadResponse(urls, message))
}
