package realestate

import (
	"context"

	"github.com/realestate/backend/internal/domain/realestate"
)

// BuildPropertyFilters turns the optional query parameters into filter
// specs. Nil parameters and empty strings produce no filter.
func BuildPropertyFilters(q GetPropertiesQuery) []realestate.PropertyFilter {
	var filters []realestate.PropertyFilter

	if q.Name != nil && *q.Name != "" {
		filters = append(filters, realestate.NameContains{Value: *q.Name})
	}
	if q.Address != nil && *q.Address != "" {
		filters = append(filters, realestate.AddressContains{Value: *q.Address})
	}
	if q.CodeInternal != nil && *q.CodeInternal != "" {
		filters = append(filters, realestate.CodeInternalContains{Value: *q.CodeInternal})
	}
	if q.MinPrice != nil || q.MaxPrice != nil {
		filters = append(filters, realestate.PriceBetween{Min: q.MinPrice, Max: q.MaxPrice})
	}
	if q.MinYear != nil || q.MaxYear != nil {
		filters = append(filters, realestate.YearBetween{Min: q.MinYear, Max: q.MaxYear})
	}
	if q.OwnerID != nil {
		filters = append(filters, realestate.OwnerIs{OwnerID: *q.OwnerID})
	}
	if q.OwnerName != nil && *q.OwnerName != "" {
		filters = append(filters, realestate.OwnerNameContains{Value: *q.OwnerName})
	}
	if q.MinDateSale != nil || q.MaxDateSale != nil {
		filters = append(filters, realestate.TraceSoldBetween{From: q.MinDateSale, To: q.MaxDateSale})
	}
	if q.HasImages != nil {
		filters = append(filters, realestate.HasImages{Value: *q.HasImages})
	}

	return filters
}

// GetPropertiesHandler handles GetPropertiesQuery
type GetPropertiesHandler struct {
	properties realestate.PropertyRepository
}

// NewGetPropertiesHandler creates a new GetPropertiesHandler
func NewGetPropertiesHandler(properties realestate.PropertyRepository) *GetPropertiesHandler {
	return &GetPropertiesHandler{properties: properties}
}

// Handle runs the filtered search and projects one page of results
func (h *GetPropertiesHandler) Handle(ctx context.Context, q GetPropertiesQuery) ([]PropertyDetail, error) {
	filters := BuildPropertyFilters(q)
	page := realestate.NewPage(q.PageNumber, q.PageSize)

	properties, err := h.properties.Search(ctx, filters, page)
	if err != nil {
		return nil, err
	}

	details := make([]PropertyDetail, 0, len(properties))
	for i := range properties {
		details = append(details, ToPropertyDetail(&properties[i]))
	}
	return details, nil
}
