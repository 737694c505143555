package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Health status values
const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// DefaultHealthCheckTimeout bounds each dependency check
const DefaultHealthCheckTimeout = 2 * time.Second

// HealthCheck probes one dependency
type HealthCheck func(ctx context.Context) error

// HealthHandler reports the health of the service's dependencies
type HealthHandler struct {
	BaseHandler
	names   []string
	checks  map[string]HealthCheck
	timeout time.Duration
}

// HealthResponse is the body of GET /health
// @name HealthResponse
type HealthResponse struct {
	Status string            `json:"status" example:"healthy"`
	Checks map[string]string `json:"checks,omitempty"`
}

// NewHealthHandler creates a HealthHandler without checks
func NewHealthHandler(logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		BaseHandler: NewBaseHandler(logger),
		checks:      make(map[string]HealthCheck),
		timeout:     DefaultHealthCheckTimeout,
	}
}

// AddCheck registers a named check; checks run in registration order
func (h *HealthHandler) AddCheck(name string, check HealthCheck) *HealthHandler {
	if _, exists := h.checks[name]; !exists {
		h.names = append(h.names, name)
	}
	h.checks[name] = check
	return h
}

// WithTimeout overrides the per-check timeout
func (h *HealthHandler) WithTimeout(timeout time.Duration) *HealthHandler {
	if timeout > 0 {
		h.timeout = timeout
	}
	return h
}

// Health godoc
// @Summary      Health check
// @Description  Pings the database, and Redis when the image cache uses it
// @Tags         system
// @Produce      json
// @Success      200 {object} HealthResponse
// @Failure      503 {object} HealthResponse
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	resp := HealthResponse{Status: StatusHealthy, Checks: make(map[string]string, len(h.names))}

	for _, name := range h.names {
		ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
		err := h.checks[name](ctx)
		cancel()

		if err != nil {
			h.log(c).Warn("Health check failed", zap.String("check", name), zap.Error(err))
			resp.Status = StatusUnhealthy
			resp.Checks[name] = err.Error()
			continue
		}
		resp.Checks[name] = "ok"
	}

	status := http.StatusOK
	if resp.Status != StatusHealthy {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, resp)
}
