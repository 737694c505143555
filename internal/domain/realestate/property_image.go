package realestate

import (
	"github.com/google/uuid"
	"github.com/realestate/backend/internal/domain/shared"
)

// PropertyImage is a normalized picture attached to a property.
// Disabled images stay stored but are hidden from every read path.
type PropertyImage struct {
	shared.BaseEntity
	PropertyID uuid.UUID
	Data       []byte
	Enabled    bool
}

// NewPropertyImage creates an image with a freshly generated id
func NewPropertyImage(propertyID uuid.UUID, data []byte, enabled bool) *PropertyImage {
	return &PropertyImage{
		BaseEntity: shared.NewBaseEntity(),
		PropertyID: propertyID,
		Data:       data,
		Enabled:    enabled,
	}
}
