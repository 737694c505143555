package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/realestate/backend/internal/domain/shared"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// gormRepository implements shared.Repository[T] over the persistence model M.
// Relations are never written through it; each entity has its own table.
type gormRepository[T any, M any] struct {
	db         *gorm.DB
	entity     string
	toDomain   func(*M) *T
	fromDomain func(*T) *M
}

func newGormRepository[T any, M any](db *gorm.DB, entity string, toDomain func(*M) *T, fromDomain func(*T) *M) gormRepository[T, M] {
	return gormRepository[T, M]{
		db:         db,
		entity:     entity,
		toDomain:   toDomain,
		fromDomain: fromDomain,
	}
}

// Queryable returns a context-bound handle for composing reads
func (r *gormRepository[T, M]) Queryable(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

// GetByID returns the entity or nil when no row has the id
func (r *gormRepository[T, M]) GetByID(ctx context.Context, id uuid.UUID) (*T, error) {
	var model M
	if err := r.Queryable(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, shared.NewPersistenceError("get", r.entity, err)
	}
	return r.toDomain(&model), nil
}

// GetAll returns every entity in creation order
func (r *gormRepository[T, M]) GetAll(ctx context.Context) ([]T, error) {
	var rows []M
	if err := r.Queryable(ctx).Order("created_at ASC, id ASC").Find(&rows).Error; err != nil {
		return nil, shared.NewPersistenceError("list", r.entity, err)
	}
	entities := make([]T, len(rows))
	for i := range rows {
		entities[i] = *r.toDomain(&rows[i])
	}
	return entities, nil
}

// Create inserts the entity and returns it as stored
func (r *gormRepository[T, M]) Create(ctx context.Context, entity *T) (*T, error) {
	model := r.fromDomain(entity)
	if err := r.Queryable(ctx).Omit(clause.Associations).Create(model).Error; err != nil {
		return nil, shared.NewPersistenceError("create", r.entity, err)
	}
	return r.toDomain(model), nil
}

// Update overwrites every column of the entity's row
func (r *gormRepository[T, M]) Update(ctx context.Context, entity *T) error {
	model := r.fromDomain(entity)
	result := r.Queryable(ctx).Model(model).Select("*").Omit(clause.Associations).Updates(model)
	if result.Error != nil {
		return shared.NewPersistenceError("update", r.entity, result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.NewPersistenceError("update", r.entity, gorm.ErrRecordNotFound)
	}
	return nil
}

// Delete removes the entity's row
func (r *gormRepository[T, M]) Delete(ctx context.Context, entity *T) error {
	if err := r.Queryable(ctx).Delete(r.fromDomain(entity)).Error; err != nil {
		return shared.NewPersistenceError("delete", r.entity, err)
	}
	return nil
}
