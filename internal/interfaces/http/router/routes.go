package router

import (
	"github.com/realestate/backend/internal/interfaces/http/handler"
)

// Handlers are the endpoint handlers of the API
type Handlers struct {
	Owners     *handler.OwnerHandler
	Properties *handler.PropertyHandler
	Images     *handler.ImageHandler
}

// OwnerRoutes returns the owner endpoints
func OwnerRoutes(h *handler.OwnerHandler) *DomainGroup {
	return NewDomainGroup("owners", "/owner").
		POST("/create_owner", h.CreateOwner)
}

// PropertyRoutes returns the property, trace and image endpoints. The
// paths are flat under the base path, so the group has no prefix.
func PropertyRoutes(p *handler.PropertyHandler, i *handler.ImageHandler) *DomainGroup {
	return NewDomainGroup("properties", "").
		POST("/create_property", p.CreateProperty).
		POST("/create_property_trace", p.CreatePropertyTrace).
		PUT("/change_property_price", p.ChangePropertyPrice).
		PUT("/update_property", p.UpdateProperty).
		GET("/get_properies_by_filters", p.GetProperties).
		POST("/add_property_image", i.AddPropertyImage).
		GET("/property/:propertyId/image/:imageId", i.GetPropertyImage)
}

// RegisterAPI registers every API group on r and mounts them on the engine
func RegisterAPI(r *Router, h Handlers) *Router {
	r.Register(OwnerRoutes(h.Owners)).
		Register(PropertyRoutes(h.Properties, h.Images)).
		Setup()
	return r
}
