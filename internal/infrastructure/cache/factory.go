package cache

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/realestate/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// ImageCache is the behaviour shared by both cache implementations
type ImageCache interface {
	Get(ctx context.Context, propertyID, imageID uuid.UUID) ([]byte, bool, error)
	Set(ctx context.Context, propertyID, imageID uuid.UUID, data []byte) error
	Delete(ctx context.Context, propertyID, imageID uuid.UUID) error
	Close() error
}

// ImageCacheFactory chooses the image cache from configuration
type ImageCacheFactory struct {
	redisConfig           config.RedisConfig
	logger                *zap.Logger
	allowInMemoryFallback bool
}

// ImageCacheFactoryOption is a functional option for configuring the factory
type ImageCacheFactoryOption func(*ImageCacheFactory)

// WithLogger sets the logger for the factory and the caches it creates
func WithLogger(logger *zap.Logger) ImageCacheFactoryOption {
	return func(f *ImageCacheFactory) {
		f.logger = logger
	}
}

// WithInMemoryFallback controls whether an unreachable Redis falls back to
// the in-memory cache. Default is true.
func WithInMemoryFallback(allow bool) ImageCacheFactoryOption {
	return func(f *ImageCacheFactory) {
		f.allowInMemoryFallback = allow
	}
}

// NewImageCacheFactory creates a new factory
func NewImageCacheFactory(cfg config.RedisConfig, opts ...ImageCacheFactoryOption) *ImageCacheFactory {
	f := &ImageCacheFactory{
		redisConfig:           cfg,
		logger:                zap.NewNop(),
		allowInMemoryFallback: true,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// CreateCache returns the Redis cache when Redis is enabled and reachable,
// otherwise the in-memory cache
func (f *ImageCacheFactory) CreateCache() (ImageCache, error) {
	if !f.redisConfig.Enabled {
		f.logger.Info("Redis disabled, using in-memory image cache")
		return NewInMemoryImageCache(f.redisConfig.ImageTTL), nil
	}

	redisCache, err := NewRedisImageCache(f.redisConfig, WithRedisLogger(f.logger))
	if err == nil {
		f.logger.Info("Using Redis image cache", zap.String("addr", f.redisConfig.Addr()))
		return redisCache, nil
	}

	if !f.allowInMemoryFallback {
		return nil, fmt.Errorf("redis image cache unavailable: %w", err)
	}

	f.logger.Warn("Redis unavailable, falling back to in-memory image cache", zap.Error(err))
	return NewInMemoryImageCache(f.redisConfig.ImageTTL), nil
}
