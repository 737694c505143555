package realestate

import (
	"time"

	"github.com/google/uuid"
	"github.com/realestate/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PropertyTrace is an append-only sale record of a property.
// No operation updates or deletes a trace once written.
type PropertyTrace struct {
	shared.BaseEntity
	PropertyID uuid.UUID
	DateSale   time.Time
	Name       string
	Value      decimal.Decimal
	Tax        decimal.Decimal
}

// NewPropertyTrace creates a trace with a freshly generated id
func NewPropertyTrace(propertyID uuid.UUID, dateSale time.Time, name string, value, tax decimal.Decimal) *PropertyTrace {
	return &PropertyTrace{
		BaseEntity: shared.NewBaseEntity(),
		PropertyID: propertyID,
		DateSale:   dateSale.UTC(),
		Name:       name,
		Value:      value,
		Tax:        tax,
	}
}
