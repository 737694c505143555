package shared

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the persistence port shared by every entity type.
//
// GetByID returns (nil, nil) when no row matches; callers decide whether
// absence is an error. Create, Update and Delete return *PersistenceError
// on storage failures.
type Repository[T any] interface {
	GetByID(ctx context.Context, id uuid.UUID) (*T, error)
	GetAll(ctx context.Context) ([]T, error)
	Create(ctx context.Context, entity *T) (*T, error)
	Update(ctx context.Context, entity *T) error
	Delete(ctx context.Context, entity *T) error
}
