package realestate

import (
	"context"

	"github.com/google/uuid"
	"github.com/realestate/backend/internal/domain/shared"
)

// OwnerRepository persists owners
type OwnerRepository interface {
	shared.Repository[Owner]
}

// PropertyRepository persists properties and runs the filtered search
type PropertyRepository interface {
	shared.Repository[Property]

	// Search returns the properties matching every filter, one page at a
	// time, with Owner, Images and Traces loaded. Results are ordered by
	// creation time, then id.
	Search(ctx context.Context, filters []PropertyFilter, page Page) ([]Property, error)
}

// PropertyImageRepository persists property images
type PropertyImageRepository interface {
	shared.Repository[PropertyImage]

	// FindEnabled returns the enabled image with the given ids, or nil
	FindEnabled(ctx context.Context, propertyID, imageID uuid.UUID) (*PropertyImage, error)
}

// PropertyTraceRepository persists property traces
type PropertyTraceRepository interface {
	shared.Repository[PropertyTrace]
}
