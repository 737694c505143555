package persistence

import (
	"github.com/realestate/backend/internal/domain/realestate"
	"github.com/realestate/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormPropertyTraceRepository implements realestate.PropertyTraceRepository using GORM
type GormPropertyTraceRepository struct {
	gormRepository[realestate.PropertyTrace, models.PropertyTraceModel]
}

// NewGormPropertyTraceRepository creates a new GormPropertyTraceRepository
func NewGormPropertyTraceRepository(db *gorm.DB) *GormPropertyTraceRepository {
	return &GormPropertyTraceRepository{
		gormRepository: newGormRepository(db, "property trace",
			(*models.PropertyTraceModel).ToDomain, models.PropertyTraceModelFromDomain),
	}
}

var _ realestate.PropertyTraceRepository = (*GormPropertyTraceRepository)(nil)
