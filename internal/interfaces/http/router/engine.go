package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/realestate/backend/internal/infrastructure/config"
	"github.com/realestate/backend/internal/infrastructure/logger"
	"github.com/realestate/backend/internal/interfaces/http/dto"
	"github.com/realestate/backend/internal/interfaces/http/middleware"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// EngineConfig holds what the middleware stack needs
type EngineConfig struct {
	Logger *zap.Logger
	HTTP   config.HTTPConfig
	// TracerProvider enables request tracing when set
	TracerProvider trace.TracerProvider
	ServiceName    string
	// RateLimiter enables per client IP limiting when set
	RateLimiter *middleware.RateLimiter
}

// NewEngine creates a gin engine with the middleware stack applied, in
// order: request id, tracing, request logging, panic recovery, span error
// marking, security headers, CORS, body limit, rate limit.
func NewEngine(cfg EngineConfig) (*gin.Engine, error) {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		return nil, err
	}

	engine.Use(middleware.RequestID())
	if cfg.TracerProvider != nil {
		engine.Use(
			middleware.TracingWithConfig(middleware.TracingConfig{
				ServiceName:    cfg.ServiceName,
				Enabled:        true,
				TracerProvider: cfg.TracerProvider,
			}),
			middleware.TracingAttributeInjector(),
		)
	}
	engine.Use(
		logger.GinMiddleware(log),
		logger.Recovery(log),
		middleware.SpanErrorMarker(),
		middleware.Secure(),
		middleware.CORSWithConfig(middleware.CORSConfigFromApp(cfg.HTTP)),
	)
	if cfg.HTTP.MaxBodySize > 0 {
		engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))
	}
	if cfg.RateLimiter != nil {
		engine.Use(middleware.RateLimit(cfg.RateLimiter))
	}

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponseWithRequestID(
			dto.ErrCodeNotFound, "Route not found", c.GetString(logger.GinRequestIDKey)))
	})

	return engine, nil
}
