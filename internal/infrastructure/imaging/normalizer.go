// Package imaging implements the picture normalization applied to owner
// photos and property images before they are stored.
package imaging

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/realestate/backend/internal/domain/realestate"
	"github.com/realestate/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// Error messages returned as INVALID_INPUT
const (
	MsgInvalidExtension = "Invalid file extension."
	MsgInvalidImage     = "Invalid image content."
)

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// Normalizer implements realestate.ImageNormalizer
type Normalizer struct {
	maxWidth  int
	maxHeight int
	quality   int
	logger    *zap.Logger
}

// Option configures a Normalizer
type Option func(*Normalizer)

// WithBounds overrides the bounding box pictures are fitted into
func WithBounds(width, height int) Option {
	return func(n *Normalizer) {
		n.maxWidth = width
		n.maxHeight = height
	}
}

// WithQuality overrides the JPEG quality
func WithQuality(quality int) Option {
	return func(n *Normalizer) {
		n.quality = quality
	}
}

// NewNormalizer creates a Normalizer using the realestate image limits
func NewNormalizer(logger *zap.Logger, opts ...Option) *Normalizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	n := &Normalizer{
		maxWidth:  realestate.MaxImageWidth,
		maxHeight: realestate.MaxImageHeight,
		quality:   realestate.JPEGQuality,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Normalize decodes data, shrinks it to fit the bounding box and returns
// it re-encoded as JPEG. Pictures already inside the box keep their size.
func (n *Normalizer) Normalize(ctx context.Context, data []byte, filename string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !HasAllowedExtension(filename) {
		return nil, shared.NewInvalidInputError(MsgInvalidExtension)
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		n.logger.Debug("Image decode failed", zap.String("filename", filename), zap.Error(err))
		return nil, shared.NewInvalidInputError(MsgInvalidImage)
	}

	bounds := img.Bounds()
	if bounds.Dx() > n.maxWidth || bounds.Dy() > n.maxHeight {
		img = imaging.Fit(img, n.maxWidth, n.maxHeight, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(n.quality)); err != nil {
		return nil, shared.NewInvalidInputError(MsgInvalidImage)
	}

	n.logger.Debug("Image normalized",
		zap.String("filename", filename),
		zap.Int("source_width", bounds.Dx()),
		zap.Int("source_height", bounds.Dy()),
		zap.Int("width", img.Bounds().Dx()),
		zap.Int("height", img.Bounds().Dy()),
		zap.Int("bytes", buf.Len()),
	)
	return buf.Bytes(), nil
}

// HasAllowedExtension reports whether filename ends in .jpg, .jpeg or .png,
// ignoring case
func HasAllowedExtension(filename string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(filename))]
}

var _ realestate.ImageNormalizer = (*Normalizer)(nil)
