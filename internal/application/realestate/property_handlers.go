package realestate

import (
	"context"

	"github.com/google/uuid"
	"github.com/realestate/backend/internal/domain/realestate"
)

// CreatePropertyHandler handles CreatePropertyCommand
type CreatePropertyHandler struct {
	properties realestate.PropertyRepository
	owners     realestate.OwnerRepository
	validator  Validator[CreatePropertyCommand]
}

// NewCreatePropertyHandler creates a new CreatePropertyHandler
func NewCreatePropertyHandler(
	properties realestate.PropertyRepository,
	owners realestate.OwnerRepository,
	validator Validator[CreatePropertyCommand],
) *CreatePropertyHandler {
	return &CreatePropertyHandler{
		properties: properties,
		owners:     owners,
		validator:  validator,
	}
}

// Handle creates a property for an existing owner and returns its id
func (h *CreatePropertyHandler) Handle(ctx context.Context, cmd CreatePropertyCommand) (uuid.UUID, error) {
	if err := h.validator.Validate(cmd); err != nil {
		return uuid.Nil, err
	}

	ownerID, err := parseID(cmd.OwnerID)
	if err != nil {
		return uuid.Nil, err
	}
	if _, err := requireOwner(ctx, h.owners, ownerID); err != nil {
		return uuid.Nil, err
	}

	property := realestate.NewProperty(cmd.Name, cmd.Address, cmd.Price, cmd.CodeInternal, cmd.Year, ownerID)
	created, err := h.properties.Create(ctx, property)
	if err != nil {
		return uuid.Nil, err
	}
	return created.ID, nil
}

// ChangePropertyPriceHandler handles ChangePropertyPriceCommand
type ChangePropertyPriceHandler struct {
	properties realestate.PropertyRepository
	validator  Validator[ChangePropertyPriceCommand]
}

// NewChangePropertyPriceHandler creates a new ChangePropertyPriceHandler
func NewChangePropertyPriceHandler(
	properties realestate.PropertyRepository,
	validator Validator[ChangePropertyPriceCommand],
) *ChangePropertyPriceHandler {
	return &ChangePropertyPriceHandler{
		properties: properties,
		validator:  validator,
	}
}

// Handle overwrites the price of an existing property
func (h *ChangePropertyPriceHandler) Handle(ctx context.Context, cmd ChangePropertyPriceCommand) (string, error) {
	if err := h.validator.Validate(cmd); err != nil {
		return "", err
	}

	id, err := parseID(cmd.ID)
	if err != nil {
		return "", err
	}
	property, err := requireProperty(ctx, h.properties, id)
	if err != nil {
		return "", err
	}

	property.ChangePrice(cmd.Price)
	if err := h.properties.Update(ctx, property); err != nil {
		return "", err
	}
	return ChangePriceResult, nil
}

// UpdatePropertyHandler handles UpdatePropertyCommand
type UpdatePropertyHandler struct {
	properties realestate.PropertyRepository
	owners     realestate.OwnerRepository
	traces     realestate.PropertyTraceRepository
	validator  Validator[UpdatePropertyCommand]
}

// NewUpdatePropertyHandler creates a new UpdatePropertyHandler
func NewUpdatePropertyHandler(
	properties realestate.PropertyRepository,
	owners realestate.OwnerRepository,
	traces realestate.PropertyTraceRepository,
	validator Validator[UpdatePropertyCommand],
) *UpdatePropertyHandler {
	return &UpdatePropertyHandler{
		properties: properties,
		owners:     owners,
		traces:     traces,
		validator:  validator,
	}
}

// Handle applies the fields present in the command to the property and,
// when a trace is included, appends it. It returns the property id.
//
// There is no version check: concurrent updates of one property are
// last-write-wins.
func (h *UpdatePropertyHandler) Handle(ctx context.Context, cmd UpdatePropertyCommand) (uuid.UUID, error) {
	if err := h.validator.Validate(cmd); err != nil {
		return uuid.Nil, err
	}

	id, err := parseID(cmd.PropertyID)
	if err != nil {
		return uuid.Nil, err
	}
	property, err := requireProperty(ctx, h.properties, id)
	if err != nil {
		return uuid.Nil, err
	}

	patch := realestate.PropertyPatch{
		Name:         cmd.Name,
		Address:      cmd.Address,
		Price:        cmd.Price,
		CodeInternal: cmd.CodeInternal,
		Year:         cmd.Year,
	}
	if cmd.OwnerID != nil {
		ownerID, err := parseID(*cmd.OwnerID)
		if err != nil {
			return uuid.Nil, err
		}
		if _, err := requireOwner(ctx, h.owners, ownerID); err != nil {
			return uuid.Nil, err
		}
		patch.OwnerID = &ownerID
	}

	property.Apply(patch)
	if err := h.properties.Update(ctx, property); err != nil {
		return uuid.Nil, err
	}

	if t := cmd.Trace; t != nil {
		trace := realestate.NewPropertyTrace(property.ID, t.DateSale, t.Name, t.Value, t.Tax)
		if _, err := h.traces.Create(ctx, trace); err != nil {
			return uuid.Nil, err
		}
	}

	return property.ID, nil
}
