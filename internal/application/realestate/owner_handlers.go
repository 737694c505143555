package realestate

import (
	"context"

	"github.com/google/uuid"
	"github.com/realestate/backend/internal/domain/realestate"
)

// CreateOwnerHandler handles CreateOwnerCommand
type CreateOwnerHandler struct {
	owners     realestate.OwnerRepository
	normalizer realestate.ImageNormalizer
	validator  Validator[CreateOwnerCommand]
}

// NewCreateOwnerHandler creates a new CreateOwnerHandler
func NewCreateOwnerHandler(
	owners realestate.OwnerRepository,
	normalizer realestate.ImageNormalizer,
	validator Validator[CreateOwnerCommand],
) *CreateOwnerHandler {
	return &CreateOwnerHandler{
		owners:     owners,
		normalizer: normalizer,
		validator:  validator,
	}
}

// Handle validates the command, normalizes the photo if one was sent and
// stores the owner. It returns the new owner id.
func (h *CreateOwnerHandler) Handle(ctx context.Context, cmd CreateOwnerCommand) (uuid.UUID, error) {
	if err := h.validator.Validate(cmd); err != nil {
		return uuid.Nil, err
	}

	var photo []byte
	if len(cmd.Photo) > 0 {
		normalized, err := h.normalizer.Normalize(ctx, cmd.Photo, cmd.PhotoName)
		if err != nil {
			return uuid.Nil, err
		}
		photo = normalized
	}

	owner := realestate.NewOwner(cmd.Name, cmd.Address, cmd.Birthday, photo)
	created, err := h.owners.Create(ctx, owner)
	if err != nil {
		return uuid.Nil, err
	}
	return created.ID, nil
}
