package handler

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/realestate/backend/internal/application/realestate"
	"github.com/realestate/backend/internal/domain/shared"
	"github.com/realestate/backend/internal/interfaces/http/middleware"
	"github.com/shopspring/decimal"
)

// GetPropertiesRequest holds the query parameters of the property search.
// Parameters are bound as strings so that format errors are reported per
// parameter; absent and empty parameters mean "no filter".
// @Description Query parameters for the filtered property search
type GetPropertiesRequest struct {
	Name         string `form:"name" example:"beach"`
	Address      string `form:"address" example:"ocean"`
	MinPrice     string `form:"minPrice" binding:"omitempty,numeric" example:"100000"`
	MaxPrice     string `form:"maxPrice" binding:"omitempty,numeric" example:"500000.50"`
	CodeInternal string `form:"codeInternal" example:"BH-"`
	MinYear      string `form:"minYear" binding:"omitempty,numeric" example:"1990"`
	MaxYear      string `form:"maxYear" binding:"omitempty,numeric" example:"2020"`
	OwnerID      string `form:"ownerId" binding:"omitempty,uuid" example:"550e8400-e29b-41d4-a716-446655440000"`
	OwnerName    string `form:"ownerName" example:"smith"`
	MinDateSale  string `form:"minDateSale" binding:"omitempty,flexdate" example:"2020-01-01"`
	MaxDateSale  string `form:"maxDateSale" binding:"omitempty,flexdate" example:"2020-12-31T23:59:59Z"`
	HasImages    string `form:"hasImages" binding:"omitempty,boolean" example:"true"`
	PageNumber   string `form:"pageNumber" binding:"omitempty,numeric" example:"1"`
	PageSize     string `form:"pageSize" binding:"omitempty,numeric" example:"10"`
}

// ToQuery converts the bound parameters into a GetPropertiesQuery. The
// binding tags have already checked every format; what remains, like a
// fractional year, is reported as a *shared.ValidationError.
func (r GetPropertiesRequest) ToQuery() (realestate.GetPropertiesQuery, error) {
	p := queryParser{}
	q := realestate.GetPropertiesQuery{
		Name:         optionalString(r.Name),
		Address:      optionalString(r.Address),
		CodeInternal: optionalString(r.CodeInternal),
		OwnerName:    optionalString(r.OwnerName),
		MinPrice:     p.parseDecimal("minPrice", r.MinPrice),
		MaxPrice:     p.parseDecimal("maxPrice", r.MaxPrice),
		MinYear:      p.parseInt("minYear", r.MinYear),
		MaxYear:      p.parseInt("maxYear", r.MaxYear),
		OwnerID:      p.parseUUID("ownerId", r.OwnerID),
		MinDateSale:  p.parseDate("minDateSale", r.MinDateSale),
		MaxDateSale:  p.parseDate("maxDateSale", r.MaxDateSale),
		HasImages:    p.parseBool("hasImages", r.HasImages),
	}
	if n := p.parseInt("pageNumber", r.PageNumber); n != nil {
		q.PageNumber = *n
	}
	if n := p.parseInt("pageSize", r.PageSize); n != nil {
		q.PageSize = *n
	}

	if len(p.errs) > 0 {
		return q, shared.NewValidationError(p.errs...)
	}
	return q, nil
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// queryParser converts optional string parameters, collecting a field
// error for every value it cannot parse
type queryParser struct {
	errs []shared.FieldError
}

func (p *queryParser) fail(field, message string) {
	p.errs = append(p.errs, shared.FieldError{Field: field, Message: message})
}

func (p *queryParser) parseDecimal(field, s string) *decimal.Decimal {
	if s == "" {
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		p.fail(field, field+" must be a valid number")
		return nil
	}
	return &d
}

func (p *queryParser) parseInt(field, s string) *int {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		p.fail(field, field+" must be an integer")
		return nil
	}
	return &n
}

func (p *queryParser) parseUUID(field, s string) *uuid.UUID {
	if s == "" {
		return nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		p.fail(field, field+" must be a valid UUID")
		return nil
	}
	return &id
}

func (p *queryParser) parseDate(field, s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := middleware.ParseFlexDate(s)
	if err != nil {
		p.fail(field, field+" must be a valid date")
		return nil
	}
	return &t
}

func (p *queryParser) parseBool(field, s string) *bool {
	if s == "" {
		return nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		p.fail(field, field+" must be true or false")
		return nil
	}
	return &b
}
