package realestate

import (
	"context"

	"github.com/google/uuid"
	"github.com/realestate/backend/internal/domain/realestate"
)

// CreatePropertyTraceHandler handles CreatePropertyTraceCommand
type CreatePropertyTraceHandler struct {
	traces     realestate.PropertyTraceRepository
	properties realestate.PropertyRepository
	validator  Validator[CreatePropertyTraceCommand]
}

// NewCreatePropertyTraceHandler creates a new CreatePropertyTraceHandler
func NewCreatePropertyTraceHandler(
	traces realestate.PropertyTraceRepository,
	properties realestate.PropertyRepository,
	validator Validator[CreatePropertyTraceCommand],
) *CreatePropertyTraceHandler {
	return &CreatePropertyTraceHandler{
		traces:     traces,
		properties: properties,
		validator:  validator,
	}
}

// Handle appends a trace to an existing property and returns the trace id
func (h *CreatePropertyTraceHandler) Handle(ctx context.Context, cmd CreatePropertyTraceCommand) (uuid.UUID, error) {
	if err := h.validator.Validate(cmd); err != nil {
		return uuid.Nil, err
	}

	propertyID, err := parseID(cmd.PropertyID)
	if err != nil {
		return uuid.Nil, err
	}
	if _, err := requireProperty(ctx, h.properties, propertyID); err != nil {
		return uuid.Nil, err
	}

	trace := realestate.NewPropertyTrace(propertyID, cmd.DateSale, cmd.Name, *cmd.Value, *cmd.Tax)
	created, err := h.traces.Create(ctx, trace)
	if err != nil {
		return uuid.Nil, err
	}
	return created.ID, nil
}
