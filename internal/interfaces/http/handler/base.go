package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/realestate/backend/internal/domain/shared"
	"github.com/realestate/backend/internal/infrastructure/logger"
	"github.com/realestate/backend/internal/interfaces/http/dto"
	"github.com/realestate/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// MsgUnexpectedError is returned for errors that are neither domain,
// validation nor persistence failures
const MsgUnexpectedError = "An unexpected error occurred"

// BaseHandler provides common handler utilities
type BaseHandler struct {
	logger *zap.Logger
}

// NewBaseHandler creates a BaseHandler logging through logger
func NewBaseHandler(logger *zap.Logger) BaseHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return BaseHandler{logger: logger}
}

// log returns the request-scoped logger when the logging middleware set one
func (h *BaseHandler) log(c *gin.Context) *zap.Logger {
	if l := logger.FromContext(c.Request.Context()); l.Core().Enabled(zap.ErrorLevel) {
		return logger.L(c.Request.Context())
	}
	if h.logger == nil {
		return zap.NewNop()
	}
	return h.logger
}

// getRequestID extracts the request ID from the context
func getRequestID(c *gin.Context) string {
	if id := c.GetString(logger.GinRequestIDKey); id != "" {
		return id
	}
	return c.GetHeader(middleware.RequestIDHeader)
}

// OK sends a 200 response with the bare result value
func (h *BaseHandler) OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Error sends an error response with the appropriate status code
func (h *BaseHandler) Error(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, dto.NewErrorResponseWithRequestID(code, message, getRequestID(c)))
}

// BadRequest sends a 400 bad request response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	h.Error(c, http.StatusBadRequest, dto.ErrCodeBadRequest, message)
}

// ValidationError sends a 400 validation error response with details
func (h *BaseHandler) ValidationError(c *gin.Context, details []dto.ValidationDetail) {
	c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(
		"Request validation failed",
		getRequestID(c),
		details,
	))
}

// BindError answers a body that could not be read or decoded: 413 when the
// body limit cut it off, 400 otherwise
func (h *BaseHandler) BindError(c *gin.Context, err error) {
	if middleware.IsRequestTooLarge(err) {
		middleware.AbortRequestTooLarge(c)
		return
	}
	h.BadRequest(c, "Invalid request body: "+err.Error())
}

// HandleError converts an error returned by a command or query into the
// HTTP response. action completes "An error occurred while ..." for
// persistence failures, e.g. "creating the property".
func (h *BaseHandler) HandleError(c *gin.Context, err error, action string) {
	if err == nil {
		return
	}

	var validationErr *shared.ValidationError
	if errors.As(err, &validationErr) {
		details := make([]dto.ValidationDetail, 0, len(validationErr.Errors))
		for _, fe := range validationErr.Errors {
			details = append(details, dto.ValidationDetail{Field: fe.Field, Message: fe.Message})
		}
		h.ValidationError(c, details)
		return
	}

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		code := dto.NormalizeErrorCode(domainErr.Code)
		h.Error(c, dto.GetHTTPStatus(code), code, domainErr.Message)
		return
	}

	var persistenceErr *shared.PersistenceError
	if errors.As(err, &persistenceErr) {
		h.log(c).Error("Persistence failure",
			zap.String("action", action),
			zap.String("op", persistenceErr.Op),
			zap.String("entity", persistenceErr.Entity),
			zap.Error(persistenceErr.Err))
		h.Error(c, http.StatusInternalServerError, dto.ErrCodePersistence, "An error occurred while "+action)
		return
	}

	h.log(c).Error("Unexpected error", zap.String("action", action), zap.Error(err))
	h.Error(c, http.StatusInternalServerError, dto.ErrCodeInternal, MsgUnexpectedError)
}
