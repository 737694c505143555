package persistence

import (
	"context"
	"fmt"
	"strings"

	"github.com/realestate/backend/internal/domain/realestate"
	"github.com/realestate/backend/internal/domain/shared"
	"github.com/realestate/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormPropertyRepository implements realestate.PropertyRepository using GORM
type GormPropertyRepository struct {
	gormRepository[realestate.Property, models.PropertyModel]
}

// NewGormPropertyRepository creates a new GormPropertyRepository
func NewGormPropertyRepository(db *gorm.DB) *GormPropertyRepository {
	return &GormPropertyRepository{
		gormRepository: newGormRepository(db, "property",
			(*models.PropertyModel).ToDomain, models.PropertyModelFromDomain),
	}
}

// Search returns one page of the properties matching every filter with
// their owner, images and traces loaded
func (r *GormPropertyRepository) Search(ctx context.Context, filters []realestate.PropertyFilter, page realestate.Page) ([]realestate.Property, error) {
	query := r.Queryable(ctx).Model(&models.PropertyModel{})
	for _, f := range filters {
		var err error
		if query, err = applyPropertyFilter(query, f); err != nil {
			return nil, shared.NewPersistenceError("search", "properties", err)
		}
	}

	var rows []models.PropertyModel
	err := query.
		Preload("Owner").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, id ASC")
		}).
		Preload("Traces", func(db *gorm.DB) *gorm.DB {
			return db.Order("date_sale ASC, id ASC")
		}).
		Order("properties.created_at ASC, properties.id ASC").
		Offset(page.Offset()).
		Limit(page.Limit()).
		Find(&rows).Error
	if err != nil {
		return nil, shared.NewPersistenceError("search", "properties", err)
	}

	properties := make([]realestate.Property, len(rows))
	for i := range rows {
		properties[i] = *rows[i].ToDomain()
	}
	return properties, nil
}

// applyPropertyFilter adds the SQL form of one property filter to query
func applyPropertyFilter(query *gorm.DB, f realestate.PropertyFilter) (*gorm.DB, error) {
	switch f := f.(type) {
	case realestate.NameContains:
		return query.Where(`LOWER(properties.name) LIKE ? ESCAPE '\'`, likePattern(f.Value)), nil
	case realestate.AddressContains:
		return query.Where(`LOWER(properties.address) LIKE ? ESCAPE '\'`, likePattern(f.Value)), nil
	case realestate.CodeInternalContains:
		return query.Where(`LOWER(properties.code_internal) LIKE ? ESCAPE '\'`, likePattern(f.Value)), nil
	case realestate.PriceBetween:
		query = query.Where("properties.price IS NOT NULL")
		if f.Min != nil {
			query = query.Where("properties.price >= ?", *f.Min)
		}
		if f.Max != nil {
			query = query.Where("properties.price <= ?", *f.Max)
		}
		return query, nil
	case realestate.YearBetween:
		if f.Min != nil {
			query = query.Where("properties.year >= ?", *f.Min)
		}
		if f.Max != nil {
			query = query.Where("properties.year <= ?", *f.Max)
		}
		return query, nil
	case realestate.OwnerIs:
		return query.Where("properties.owner_id = ?", f.OwnerID), nil
	case realestate.OwnerNameContains:
		return query.Where(
			`EXISTS (SELECT 1 FROM owners o WHERE o.id = properties.owner_id AND LOWER(o.name) LIKE ? ESCAPE '\')`,
			likePattern(f.Value)), nil
	case realestate.TraceSoldBetween:
		cond := []string{"t.property_id = properties.id"}
		var args []any
		if f.From != nil {
			cond = append(cond, "t.date_sale >= ?")
			args = append(args, f.From.UTC())
		}
		if f.To != nil {
			cond = append(cond, "t.date_sale <= ?")
			args = append(args, f.To.UTC())
		}
		return query.Where(
			"EXISTS (SELECT 1 FROM property_traces t WHERE "+strings.Join(cond, " AND ")+")",
			args...), nil
	case realestate.HasImages:
		exists := "EXISTS (SELECT 1 FROM property_images i WHERE i.property_id = properties.id AND i.enabled = ?)"
		if !f.Value {
			exists = "NOT " + exists
		}
		return query.Where(exists, true), nil
	default:
		return nil, fmt.Errorf("unsupported property filter %T", f)
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern lowercases v and escapes LIKE wildcards for a substring match
func likePattern(v string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(v)) + "%"
}

var _ realestate.PropertyRepository = (*GormPropertyRepository)(nil)
