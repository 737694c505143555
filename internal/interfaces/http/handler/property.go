package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/realestate/backend/internal/application/mediator"
	"github.com/realestate/backend/internal/application/realestate"
	"github.com/realestate/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// PropertyHandler handles property-related API endpoints
type PropertyHandler struct {
	BaseHandler
	mediator *mediator.Mediator
}

// NewPropertyHandler creates a new PropertyHandler
func NewPropertyHandler(m *mediator.Mediator, logger *zap.Logger) *PropertyHandler {
	return &PropertyHandler{
		BaseHandler: NewBaseHandler(logger),
		mediator:    m,
	}
}

// CreateProperty godoc
// @Summary      Create a property
// @Description  Create a property for an existing owner
// @Tags         properties
// @Accept       json
// @Produce      json
// @Param        request body realestate.CreatePropertyCommand true "Property creation request"
// @Success      200 {string} string "Id of the new property"
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /create_property [post]
func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	var cmd realestate.CreatePropertyCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		h.BindError(c, err)
		return
	}

	id, err := mediator.Send[realestate.CreatePropertyCommand, uuid.UUID](c.Request.Context(), h.mediator, cmd)
	if err != nil {
		h.HandleError(c, err, "creating the property")
		return
	}

	h.OK(c, id)
}

// CreatePropertyTrace godoc
// @Summary      Record a property sale
// @Description  Append a sale trace (date, name, value, tax) to a property
// @Tags         properties
// @Accept       json
// @Produce      json
// @Param        request body realestate.CreatePropertyTraceCommand true "Property trace creation request"
// @Success      200 {string} string "Id of the new trace"
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /create_property_trace [post]
func (h *PropertyHandler) CreatePropertyTrace(c *gin.Context) {
	var cmd realestate.CreatePropertyTraceCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		h.BindError(c, err)
		return
	}

	id, err := mediator.Send[realestate.CreatePropertyTraceCommand, uuid.UUID](c.Request.Context(), h.mediator, cmd)
	if err != nil {
		h.HandleError(c, err, "creating the property trace")
		return
	}

	h.OK(c, id)
}

// ChangePropertyPrice godoc
// @Summary      Change the price of a property
// @Tags         properties
// @Accept       json
// @Produce      json
// @Param        request body realestate.ChangePropertyPriceCommand true "New price"
// @Success      200 {string} string "Property price changed successfully."
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /change_property_price [put]
func (h *PropertyHandler) ChangePropertyPrice(c *gin.Context) {
	var cmd realestate.ChangePropertyPriceCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		h.BindError(c, err)
		return
	}

	msg, err := mediator.Send[realestate.ChangePropertyPriceCommand, string](c.Request.Context(), h.mediator, cmd)
	if err != nil {
		h.HandleError(c, err, "changing the property price")
		return
	}

	h.OK(c, msg)
}

// UpdateProperty godoc
// @Summary      Update a property
// @Description  Partially update a property; omitted fields are left unchanged.
// @Description  A trace in the body is appended as a new sale record.
// @Tags         properties
// @Accept       json
// @Produce      json
// @Param        request body realestate.UpdatePropertyCommand true "Property update request"
// @Success      200 {string} string "Id of the updated property"
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /update_property [put]
func (h *PropertyHandler) UpdateProperty(c *gin.Context) {
	var cmd realestate.UpdatePropertyCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		h.BindError(c, err)
		return
	}

	id, err := mediator.Send[realestate.UpdatePropertyCommand, uuid.UUID](c.Request.Context(), h.mediator, cmd)
	if err != nil {
		h.HandleError(c, err, "updating the property")
		return
	}

	h.OK(c, id)
}

// GetProperties godoc
// @Summary      Search properties
// @Description  Filtered, paginated property search. Text filters are
// @Description  case-insensitive substrings; price, year and sale date
// @Description  filters are inclusive ranges. Results are ordered by
// @Description  creation time; pageSize is clamped to [1, 50].
// @Tags         properties
// @Produce      json
// @Param        name         query string  false "Name contains"
// @Param        address      query string  false "Address contains"
// @Param        minPrice     query number  false "Minimum price"
// @Param        maxPrice     query number  false "Maximum price"
// @Param        codeInternal query string  false "Internal code contains"
// @Param        minYear      query int     false "Minimum year"
// @Param        maxYear      query int     false "Maximum year"
// @Param        ownerId      query string  false "Owner id" format(uuid)
// @Param        ownerName    query string  false "Owner name contains"
// @Param        minDateSale  query string  false "Earliest sale date (RFC3339 or YYYY-MM-DD)"
// @Param        maxDateSale  query string  false "Latest sale date (RFC3339 or YYYY-MM-DD)"
// @Param        hasImages    query boolean false "Only properties with (true) or without (false) enabled images"
// @Param        pageNumber   query int     false "Page number" default(1)
// @Param        pageSize     query int     false "Page size" default(10)
// @Success      200 {array}  realestate.PropertyDetail
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /get_properies_by_filters [get]
func (h *PropertyHandler) GetProperties(c *gin.Context) {
	var req GetPropertiesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	query, err := req.ToQuery()
	if err != nil {
		h.HandleError(c, err, "retrieving properties")
		return
	}

	properties, err := mediator.Send[realestate.GetPropertiesQuery, []realestate.PropertyDetail](c.Request.Context(), h.mediator, query)
	if err != nil {
		h.HandleError(c, err, "retrieving properties")
		return
	}

	h.OK(c, properties)
}
