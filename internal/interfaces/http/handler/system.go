package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Pinger is anything that can report whether its backing store is alive
type Pinger interface {
	Ping() error
}

// SystemHandler exposes operational endpoints
type SystemHandler struct {
	BaseHandler
	db Pinger
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(db Pinger) *SystemHandler {
	return &SystemHandler{db: db}
}

// Health reports liveness of the service and its database
func (h *SystemHandler) Health(c *gin.Context) {
	if err := h.db.Ping(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
