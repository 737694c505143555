package realestate

import "context"

// Image limits applied to every uploaded picture
const (
	MaxImageSizeBytes = 10 * 1024 * 1024
	MaxImageWidth     = 1920
	MaxImageHeight    = 1080
	JPEGQuality       = 80
)

// ImageNormalizer converts an uploaded picture into the stored form.
//
// Normalize accepts .jpg, .jpeg and .png file names, fits the picture into
// MaxImageWidth x MaxImageHeight keeping its aspect ratio and re-encodes it
// as JPEG at JPEGQuality. Unsupported names or undecodable bytes fail with
// an INVALID_INPUT domain error.
type ImageNormalizer interface {
	Normalize(ctx context.Context, data []byte, filename string) ([]byte, error)
}
