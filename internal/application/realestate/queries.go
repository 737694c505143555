package realestate

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GetPropertyImageQuery fetches the bytes of one enabled image
type GetPropertyImageQuery struct {
	PropertyID uuid.UUID
	ImageID    uuid.UUID
}

// GetPropertiesQuery is the filtered, paginated property search.
// Every filter is optional; nil and empty-string filters are ignored.
type GetPropertiesQuery struct {
	Name         *string
	Address      *string
	MinPrice     *decimal.Decimal
	MaxPrice     *decimal.Decimal
	CodeInternal *string
	MinYear      *int
	MaxYear      *int
	OwnerID      *uuid.UUID
	OwnerName    *string
	MinDateSale  *time.Time
	MaxDateSale  *time.Time
	HasImages    *bool
	PageNumber   int
	PageSize     int
}
