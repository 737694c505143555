package realestate

import (
	"github.com/google/uuid"
	"github.com/realestate/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Property is a real-estate listing owned by exactly one Owner.
//
// Owner, Images and Traces are only populated by read paths that load the
// related rows (the property search); writes persist the scalar fields.
type Property struct {
	shared.BaseEntity
	Name         string
	Address      string
	Price        *decimal.Decimal
	CodeInternal string
	Year         int
	OwnerID      uuid.UUID

	Owner  *Owner
	Images []PropertyImage
	Traces []PropertyTrace
}

// NewProperty creates a property with a freshly generated id
func NewProperty(name, address string, price decimal.Decimal, codeInternal string, year int, ownerID uuid.UUID) *Property {
	return &Property{
		BaseEntity:   shared.NewBaseEntity(),
		Name:         name,
		Address:      address,
		Price:        &price,
		CodeInternal: codeInternal,
		Year:         year,
		OwnerID:      ownerID,
	}
}

// ChangePrice overwrites the current price
func (p *Property) ChangePrice(price decimal.Decimal) {
	p.Price = &price
	p.Touch()
}

// PropertyPatch is a partial update; nil fields are left untouched
type PropertyPatch struct {
	Name         *string
	Address      *string
	Price        *decimal.Decimal
	CodeInternal *string
	Year         *int
	OwnerID      *uuid.UUID
}

// IsEmpty reports whether the patch sets no field
func (pp PropertyPatch) IsEmpty() bool {
	return pp.Name == nil && pp.Address == nil && pp.Price == nil &&
		pp.CodeInternal == nil && pp.Year == nil && pp.OwnerID == nil
}

// Apply merges the non-nil fields of the patch into the property
func (p *Property) Apply(patch PropertyPatch) {
	if patch.IsEmpty() {
		return
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Address != nil {
		p.Address = *patch.Address
	}
	if patch.Price != nil {
		price := *patch.Price
		p.Price = &price
	}
	if patch.CodeInternal != nil {
		p.CodeInternal = *patch.CodeInternal
	}
	if patch.Year != nil {
		p.Year = *patch.Year
	}
	if patch.OwnerID != nil {
		p.OwnerID = *patch.OwnerID
	}
	p.Touch()
}

// EnabledImages returns the loaded images that are visible
func (p *Property) EnabledImages() []PropertyImage {
	images := make([]PropertyImage, 0, len(p.Images))
	for _, img := range p.Images {
		if img.Enabled {
			images = append(images, img)
		}
	}
	return images
}
