package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jkhopkins39/sxnctuary/internal/domain/shared"
	"github.com/jkhopkins39/sxnctuary/internal/infrastructure/logger"
	"github.com/jkhopkins39/sxnctuary/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// BaseHandler provides common handler utilities. Every failure path
// funnels through here so no handler lets an error propagate unhandled.
type BaseHandler struct{}

// Error sends an error response with the given status code
func (h *BaseHandler) Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.NewErrorResponse(message))
}

// BadRequest sends a 400 bad request response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	h.Error(c, http.StatusBadRequest, message)
}

// NotFound sends a 404 not found response
func (h *BaseHandler) NotFound(c *gin.Context, message string) {
	h.Error(c, http.StatusNotFound, message)
}

// InternalError sends a 500 response with a generic message
func (h *BaseHandler) InternalError(c *gin.Context, message string) {
	h.Error(c, http.StatusInternalServerError, message)
}

// HandleError translates domain errors to HTTP responses. Anything that
// is not a DomainError is a persistence or upstream failure: it is
// logged with detail and answered with a generic message so internals
// never reach the wire.
func (h *BaseHandler) HandleError(c *gin.Context, err error, fallback string) {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		h.Error(c, dto.GetHTTPStatus(domainErr.Code), domainErr.Message)
		return
	}

	logger.FromGin(c).Error(fallback, zap.Error(err))
	h.InternalError(c, fallback)
}

// BindError translates a gin binding failure into a 400 response,
// naming the offending fields when the validator produced them.
func (h *BaseHandler) BindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		h.BadRequest(c, "Invalid value for field "+verrs[0].Field())
		return
	}
	h.BadRequest(c, "Invalid request payload")
}
