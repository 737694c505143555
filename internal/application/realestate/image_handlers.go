package realestate

import (
	"context"

	"github.com/google/uuid"
	"github.com/realestate/backend/internal/domain/realestate"
	"github.com/realestate/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ImageNotFoundMessage is returned when no enabled image matches
const ImageNotFoundMessage = "Image not found"

// ImageCache keeps stored image bytes close to the HTTP boundary.
// Stored images never change, so entries need no invalidation.
type ImageCache interface {
	Get(ctx context.Context, propertyID, imageID uuid.UUID) ([]byte, bool, error)
	Set(ctx context.Context, propertyID, imageID uuid.UUID, data []byte) error
}

// AddPropertyImageHandler handles AddPropertyImageCommand
type AddPropertyImageHandler struct {
	images     realestate.PropertyImageRepository
	properties realestate.PropertyRepository
	normalizer realestate.ImageNormalizer
	validator  Validator[AddPropertyImageCommand]
}

// NewAddPropertyImageHandler creates a new AddPropertyImageHandler
func NewAddPropertyImageHandler(
	images realestate.PropertyImageRepository,
	properties realestate.PropertyRepository,
	normalizer realestate.ImageNormalizer,
	validator Validator[AddPropertyImageCommand],
) *AddPropertyImageHandler {
	return &AddPropertyImageHandler{
		images:     images,
		properties: properties,
		normalizer: normalizer,
		validator:  validator,
	}
}

// Handle normalizes the picture and stores it for an existing property.
// It returns the new image id.
func (h *AddPropertyImageHandler) Handle(ctx context.Context, cmd AddPropertyImageCommand) (uuid.UUID, error) {
	if err := h.validator.Validate(cmd); err != nil {
		return uuid.Nil, err
	}

	propertyID, err := parseID(cmd.PropertyID)
	if err != nil {
		return uuid.Nil, err
	}
	if _, err := requireProperty(ctx, h.properties, propertyID); err != nil {
		return uuid.Nil, err
	}

	data, err := h.normalizer.Normalize(ctx, cmd.Image, cmd.ImageName)
	if err != nil {
		return uuid.Nil, err
	}

	enabled := true
	if cmd.Enabled != nil {
		enabled = *cmd.Enabled
	}

	image := realestate.NewPropertyImage(propertyID, data, enabled)
	created, err := h.images.Create(ctx, image)
	if err != nil {
		return uuid.Nil, err
	}
	return created.ID, nil
}

// GetPropertyImageHandler handles GetPropertyImageQuery
type GetPropertyImageHandler struct {
	images realestate.PropertyImageRepository
	cache  ImageCache
	logger *zap.Logger
}

// NewGetPropertyImageHandler creates a new GetPropertyImageHandler
func NewGetPropertyImageHandler(images realestate.PropertyImageRepository, logger *zap.Logger) *GetPropertyImageHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GetPropertyImageHandler{
		images: images,
		logger: logger,
	}
}

// WithCache sets the cache consulted before the database
func (h *GetPropertyImageHandler) WithCache(cache ImageCache) *GetPropertyImageHandler {
	h.cache = cache
	return h
}

// Handle returns the bytes of an enabled image of the property.
// Disabled and missing images are both reported as NOT_FOUND.
func (h *GetPropertyImageHandler) Handle(ctx context.Context, q GetPropertyImageQuery) ([]byte, error) {
	if h.cache != nil {
		data, ok, err := h.cache.Get(ctx, q.PropertyID, q.ImageID)
		if err != nil {
			h.logger.Warn("image cache read failed", zap.Error(err))
		} else if ok {
			return data, nil
		}
	}

	image, err := h.images.FindEnabled(ctx, q.PropertyID, q.ImageID)
	if err != nil {
		return nil, err
	}
	if image == nil || len(image.Data) == 0 {
		return nil, shared.NewDomainError(shared.CodeNotFound, ImageNotFoundMessage)
	}

	if h.cache != nil {
		if err := h.cache.Set(ctx, q.PropertyID, q.ImageID, image.Data); err != nil {
			h.logger.Warn("image cache write failed", zap.Error(err))
		}
	}
	return image.Data, nil
}
