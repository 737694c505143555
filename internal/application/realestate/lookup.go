package realestate

import (
	"context"

	"github.com/google/uuid"
	"github.com/realestate/backend/internal/domain/realestate"
	"github.com/realestate/backend/internal/domain/shared"
)

// parseID converts an id that already passed validation
func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, shared.NewInvalidInputError("Invalid identifier: " + raw)
	}
	return id, nil
}

func requireOwner(ctx context.Context, owners realestate.OwnerRepository, id uuid.UUID) (*realestate.Owner, error) {
	owner, err := owners.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, shared.NewNotFoundError("Owner", id)
	}
	return owner, nil
}

func requireProperty(ctx context.Context, properties realestate.PropertyRepository, id uuid.UUID) (*realestate.Property, error) {
	property, err := properties.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, shared.NewNotFoundError("Property", id)
	}
	return property, nil
}
