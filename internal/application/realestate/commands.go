package realestate

import (
	"time"

	"github.com/shopspring/decimal"
)

// ChangePriceResult is returned by a successful ChangePropertyPriceCommand
const ChangePriceResult = "Property price changed successfully."

// CreateOwnerCommand creates an owner, optionally with a photo
type CreateOwnerCommand struct {
	Name      string
	Address   string
	Birthday  time.Time
	Photo     []byte // nil when no photo was uploaded
	PhotoName string
}

// CreatePropertyCommand creates a property for an existing owner
type CreatePropertyCommand struct {
	Name         string          `json:"name"`
	Address      string          `json:"address"`
	Price        decimal.Decimal `json:"price"`
	CodeInternal string          `json:"codeInternal"`
	Year         int             `json:"year"`
	OwnerID      string          `json:"idOwner"`
}

// CreatePropertyTraceCommand appends a sale trace to a property
type CreatePropertyTraceCommand struct {
	PropertyID string           `json:"propertyId"`
	DateSale   time.Time        `json:"dateSale"`
	Name       string           `json:"name"`
	Value      *decimal.Decimal `json:"value"`
	Tax        *decimal.Decimal `json:"tax"`
}

// AddPropertyImageCommand attaches an image to a property.
// Enabled defaults to true when nil.
type AddPropertyImageCommand struct {
	PropertyID string
	Image      []byte
	ImageName  string
	Enabled    *bool
}

// ChangePropertyPriceCommand overwrites the price of a property
type ChangePropertyPriceCommand struct {
	ID    string          `json:"id"`
	Price decimal.Decimal `json:"price"`
}

// PropertyTraceInfo is the trace recorded alongside a property update
type PropertyTraceInfo struct {
	DateSale time.Time       `json:"dateSale"`
	Name     string          `json:"name"`
	Value    decimal.Decimal `json:"value"`
	Tax      decimal.Decimal `json:"tax"`
}

// UpdatePropertyCommand is a partial update; nil fields are neither
// validated nor modified. A non-nil Trace appends one new trace.
type UpdatePropertyCommand struct {
	PropertyID   string             `json:"propertyId"`
	Name         *string            `json:"name,omitempty"`
	Address      *string            `json:"address,omitempty"`
	Price        *decimal.Decimal   `json:"price,omitempty"`
	CodeInternal *string            `json:"codeInternal,omitempty"`
	Year         *int               `json:"year,omitempty"`
	OwnerID      *string            `json:"idOwner,omitempty"`
	Trace        *PropertyTraceInfo `json:"trace,omitempty"`
}
