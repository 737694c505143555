package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/realestate/backend/internal/domain/realestate"
	"github.com/realestate/backend/internal/domain/shared"
	"github.com/realestate/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormPropertyImageRepository implements realestate.PropertyImageRepository using GORM
type GormPropertyImageRepository struct {
	gormRepository[realestate.PropertyImage, models.PropertyImageModel]
}

// NewGormPropertyImageRepository creates a new GormPropertyImageRepository
func NewGormPropertyImageRepository(db *gorm.DB) *GormPropertyImageRepository {
	return &GormPropertyImageRepository{
		gormRepository: newGormRepository(db, "property image",
			(*models.PropertyImageModel).ToDomain, models.PropertyImageModelFromDomain),
	}
}

// FindEnabled returns the enabled image with imageID that belongs to
// propertyID, or nil when there is none
func (r *GormPropertyImageRepository) FindEnabled(ctx context.Context, propertyID, imageID uuid.UUID) (*realestate.PropertyImage, error) {
	var model models.PropertyImageModel
	err := r.Queryable(ctx).
		Where("id = ? AND property_id = ? AND enabled = ?", imageID, propertyID, true).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, shared.NewPersistenceError("get", "property image", err)
	}
	return model.ToDomain(), nil
}

var _ realestate.PropertyImageRepository = (*GormPropertyImageRepository)(nil)
