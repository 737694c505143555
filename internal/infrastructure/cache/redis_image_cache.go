package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/realestate/backend/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	defaultKeyPrefix = "realestate:image:"
	defaultImageTTL  = time.Hour
	connectTimeout   = 5 * time.Second
)

// RedisImageCache implements the image cache port using Redis
type RedisImageCache struct {
	client     *redis.Client
	ownsClient bool
	keyPrefix  string
	ttl        time.Duration
	logger     *zap.Logger
}

// RedisImageCacheOption is a functional option for configuring the cache
type RedisImageCacheOption func(*RedisImageCache)

// WithKeyPrefix sets the prefix prepended to every key
func WithKeyPrefix(prefix string) RedisImageCacheOption {
	return func(c *RedisImageCache) {
		if prefix != "" {
			c.keyPrefix = prefix
		}
	}
}

// WithTTL sets how long cached images live
func WithTTL(ttl time.Duration) RedisImageCacheOption {
	return func(c *RedisImageCache) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithRedisLogger sets the logger for the cache
func WithRedisLogger(logger *zap.Logger) RedisImageCacheOption {
	return func(c *RedisImageCache) {
		c.logger = logger
	}
}

// NewRedisImageCache connects to Redis and returns a cache that owns the client
func NewRedisImageCache(cfg config.RedisConfig, opts ...RedisImageCacheOption) (*RedisImageCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	opts = append([]RedisImageCacheOption{WithKeyPrefix(cfg.KeyPrefix), WithTTL(cfg.ImageTTL)}, opts...)
	c := NewRedisImageCacheWithClient(client, opts...)
	c.ownsClient = true
	return c, nil
}

// NewRedisImageCacheWithClient creates a cache over an existing client.
// The caller keeps ownership of the client.
func NewRedisImageCacheWithClient(client *redis.Client, opts ...RedisImageCacheOption) *RedisImageCache {
	c := &RedisImageCache{
		client:    client,
		keyPrefix: defaultKeyPrefix,
		ttl:       defaultImageTTL,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *RedisImageCache) key(propertyID, imageID uuid.UUID) string {
	return c.keyPrefix + propertyID.String() + ":" + imageID.String()
}

// Get returns the cached bytes and whether they were present
func (c *RedisImageCache) Get(ctx context.Context, propertyID, imageID uuid.UUID) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, c.key(propertyID, imageID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		c.logger.Warn("Failed to read image from cache",
			zap.String("property_id", propertyID.String()),
			zap.String("image_id", imageID.String()),
			zap.Error(err))
		return nil, false, fmt.Errorf("failed to get image from cache: %w", err)
	}
	return data, true, nil
}

// Set stores data with the configured TTL
func (c *RedisImageCache) Set(ctx context.Context, propertyID, imageID uuid.UUID, data []byte) error {
	if err := c.client.Set(ctx, c.key(propertyID, imageID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set image in cache: %w", err)
	}
	return nil
}

// Delete evicts one image
func (c *RedisImageCache) Delete(ctx context.Context, propertyID, imageID uuid.UUID) error {
	if err := c.client.Del(ctx, c.key(propertyID, imageID)).Err(); err != nil {
		return fmt.Errorf("failed to delete image from cache: %w", err)
	}
	return nil
}

// Ping checks the Redis connection
func (c *RedisImageCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the client when the cache created it
func (c *RedisImageCache) Close() error {
	if c.ownsClient {
		return c.client.Close()
	}
	return nil
}
