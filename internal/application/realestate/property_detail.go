package realestate

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/realestate/backend/internal/domain/realestate"
	"github.com/shopspring/decimal"
)

// PropertyDetail is the search projection of a property
type PropertyDetail struct {
	ID           uuid.UUID            `json:"idProperty"`
	Name         string               `json:"name"`
	Address      string               `json:"address"`
	Price        *decimal.Decimal     `json:"price"`
	CodeInternal string               `json:"codeInternal"`
	Year         int                  `json:"year"`
	Owner        *OwnerSummary        `json:"owner"`
	Images       []PropertyImageRef   `json:"images"`
	Traces       []PropertyTraceEntry `json:"traces"`
}

// OwnerSummary identifies the owner of a property
type OwnerSummary struct {
	ID   uuid.UUID `json:"idOwner"`
	Name string    `json:"name"`
}

// PropertyImageRef points at an image without carrying its bytes
type PropertyImageRef struct {
	ID       uuid.UUID `json:"idPropertyImage"`
	ImageURL string    `json:"imageUrl"`
}

// PropertyTraceEntry is one sale trace of a property
type PropertyTraceEntry struct {
	ID       uuid.UUID       `json:"idPropertyTrace"`
	DateSale time.Time       `json:"dateSale"`
	Name     string          `json:"name"`
	Value    decimal.Decimal `json:"value"`
	Tax      decimal.Decimal `json:"tax"`
}

// ImageURL returns the HTTP path serving an image
func ImageURL(propertyID, imageID uuid.UUID) string {
	return fmt.Sprintf("/api/property/%s/image/%s", propertyID, imageID)
}

// ToPropertyDetail projects a property with its loaded relations.
// Disabled images are left out.
func ToPropertyDetail(p *realestate.Property) PropertyDetail {
	detail := PropertyDetail{
		ID:           p.ID,
		Name:         p.Name,
		Address:      p.Address,
		Price:        p.Price,
		CodeInternal: p.CodeInternal,
		Year:         p.Year,
		Images:       []PropertyImageRef{},
		Traces:       []PropertyTraceEntry{},
	}
	if p.Owner != nil {
		detail.Owner = &OwnerSummary{ID: p.Owner.ID, Name: p.Owner.Name}
	}
	for _, img := range p.EnabledImages() {
		detail.Images = append(detail.Images, PropertyImageRef{
			ID:       img.ID,
			ImageURL: ImageURL(p.ID, img.ID),
		})
	}
	for _, t := range p.Traces {
		detail.Traces = append(detail.Traces, PropertyTraceEntry{
			ID:       t.ID,
			DateSale: t.DateSale,
			Name:     t.Name,
			Value:    t.Value,
			Tax:      t.Tax,
		})
	}
	return detail
}
