package realestate

import (
	"errors"

	"github.com/google/uuid"
	"github.com/realestate/backend/internal/application/mediator"
	"github.com/realestate/backend/internal/domain/realestate"
	"go.uber.org/zap"
)

// Dependencies are the ports the real-estate handlers need
type Dependencies struct {
	Owners     realestate.OwnerRepository
	Properties realestate.PropertyRepository
	Images     realestate.PropertyImageRepository
	Traces     realestate.PropertyTraceRepository
	Normalizer realestate.ImageNormalizer
	ImageCache ImageCache // optional
	Clock      Clock      // optional, defaults to SystemClock
	Logger     *zap.Logger
}

// RegisterHandlers binds every real-estate command and query to m
func RegisterHandlers(m *mediator.Mediator, deps Dependencies) error {
	imageHandler := NewGetPropertyImageHandler(deps.Images, deps.Logger)
	if deps.ImageCache != nil {
		imageHandler.WithCache(deps.ImageCache)
	}

	return errors.Join(
		mediator.Register[CreateOwnerCommand, uuid.UUID](m,
			NewCreateOwnerHandler(deps.Owners, deps.Normalizer, NewCreateOwnerValidator(deps.Clock))),
		mediator.Register[CreatePropertyCommand, uuid.UUID](m,
			NewCreatePropertyHandler(deps.Properties, deps.Owners, NewCreatePropertyValidator(deps.Clock))),
		mediator.Register[CreatePropertyTraceCommand, uuid.UUID](m,
			NewCreatePropertyTraceHandler(deps.Traces, deps.Properties, NewCreatePropertyTraceValidator(deps.Clock))),
		mediator.Register[AddPropertyImageCommand, uuid.UUID](m,
			NewAddPropertyImageHandler(deps.Images, deps.Properties, deps.Normalizer, NewAddPropertyImageValidator())),
		mediator.Register[ChangePropertyPriceCommand, string](m,
			NewChangePropertyPriceHandler(deps.Properties, NewChangePropertyPriceValidator())),
		mediator.Register[UpdatePropertyCommand, uuid.UUID](m,
			NewUpdatePropertyHandler(deps.Properties, deps.Owners, deps.Traces, NewUpdatePropertyValidator(deps.Clock))),
		mediator.Register[GetPropertyImageQuery, []byte](m, imageHandler),
		mediator.Register[GetPropertiesQuery, []PropertyDetail](m, NewGetPropertiesHandler(deps.Properties)),
	)
}
