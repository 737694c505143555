package realestate

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
)

// PropertyFilter is one predicate of the property search.
//
// Filters are combined with AND and are independent of each other, so the
// order of a filter list never changes the result set. Matches evaluates
// the predicate in memory against a property with Owner, Images and Traces
// loaded; the persistence adapter translates the same specs into SQL.
type PropertyFilter interface {
	Matches(p *Property) bool
}

// MatchesAll reports whether p satisfies every filter
func MatchesAll(filters []PropertyFilter, p *Property) bool {
	for _, f := range filters {
		if !f.Matches(p) {
			return false
		}
	}
	return true
}

// containsFold is a case-insensitive substring test
func containsFold(s, substr string) bool {
	fold := cases.Fold()
	return strings.Contains(fold.String(s), fold.String(substr))
}

// NameContains matches properties whose name contains Value, ignoring case
type NameContains struct {
	Value string
}

func (f NameContains) Matches(p *Property) bool {
	return containsFold(p.Name, f.Value)
}

// AddressContains matches properties whose address contains Value, ignoring case
type AddressContains struct {
	Value string
}

func (f AddressContains) Matches(p *Property) bool {
	return containsFold(p.Address, f.Value)
}

// CodeInternalContains matches properties whose internal code contains Value, ignoring case
type CodeInternalContains struct {
	Value string
}

func (f CodeInternalContains) Matches(p *Property) bool {
	return containsFold(p.CodeInternal, f.Value)
}

// PriceBetween is an inclusive price range; either bound may be nil.
// Properties without a price never match.
type PriceBetween struct {
	Min *decimal.Decimal
	Max *decimal.Decimal
}

func (f PriceBetween) Matches(p *Property) bool {
	if p.Price == nil {
		return false
	}
	if f.Min != nil && p.Price.LessThan(*f.Min) {
		return false
	}
	if f.Max != nil && p.Price.GreaterThan(*f.Max) {
		return false
	}
	return true
}

// YearBetween is an inclusive construction year range; either bound may be nil
type YearBetween struct {
	Min *int
	Max *int
}

func (f YearBetween) Matches(p *Property) bool {
	if f.Min != nil && p.Year < *f.Min {
		return false
	}
	if f.Max != nil && p.Year > *f.Max {
		return false
	}
	return true
}

// OwnerIs matches properties of one owner
type OwnerIs struct {
	OwnerID uuid.UUID
}

func (f OwnerIs) Matches(p *Property) bool {
	return p.OwnerID == f.OwnerID
}

// OwnerNameContains matches properties whose owner name contains Value, ignoring case
type OwnerNameContains struct {
	Value string
}

func (f OwnerNameContains) Matches(p *Property) bool {
	return p.Owner != nil && containsFold(p.Owner.Name, f.Value)
}

// TraceSoldBetween matches properties with at least one trace whose sale
// date lies inside the inclusive range. Both bounds apply to the same trace.
type TraceSoldBetween struct {
	From *time.Time
	To   *time.Time
}

func (f TraceSoldBetween) Matches(p *Property) bool {
	for _, t := range p.Traces {
		if f.From != nil && t.DateSale.Before(*f.From) {
			continue
		}
		if f.To != nil && t.DateSale.After(*f.To) {
			continue
		}
		return true
	}
	return false
}

// HasImages matches properties with (true) or without (false) enabled images
type HasImages struct {
	Value bool
}

func (f HasImages) Matches(p *Property) bool {
	return (len(p.EnabledImages()) > 0) == f.Value
}
