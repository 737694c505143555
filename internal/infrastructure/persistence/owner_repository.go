package persistence

import (
	"github.com/realestate/backend/internal/domain/realestate"
	"github.com/realestate/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormOwnerRepository implements realestate.OwnerRepository using GORM
type GormOwnerRepository struct {
	gormRepository[realestate.Owner, models.OwnerModel]
}

// NewGormOwnerRepository creates a new GormOwnerRepository
func NewGormOwnerRepository(db *gorm.DB) *GormOwnerRepository {
	return &GormOwnerRepository{
		gormRepository: newGormRepository(db, "owner",
			(*models.OwnerModel).ToDomain, models.OwnerModelFromDomain),
	}
}

var _ realestate.OwnerRepository = (*GormOwnerRepository)(nil)
