package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/realestate/backend/internal/application/mediator"
	"github.com/realestate/backend/internal/application/realestate"
	"github.com/realestate/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ImageContentType is the content type of every stored image
const ImageContentType = "image/jpeg"

// ImageHandler handles property image endpoints
type ImageHandler struct {
	BaseHandler
	mediator *mediator.Mediator
}

// NewImageHandler creates a new ImageHandler
func NewImageHandler(m *mediator.Mediator, logger *zap.Logger) *ImageHandler {
	return &ImageHandler{
		BaseHandler: NewBaseHandler(logger),
		mediator:    m,
	}
}

// AddPropertyImage godoc
// @Summary      Add an image to a property
// @Description  Upload a .jpg, .jpeg or .png image of at most 10 MiB. The
// @Description  image is stored as a JPEG fitted into 1920x1080.
// @Tags         images
// @Accept       multipart/form-data
// @Produce      json
// @Param        propertyId formData string  true  "Property id" format(uuid)
// @Param        image      formData file    true  "Image file"
// @Param        enabled    formData boolean false "Whether the image is listed" default(true)
// @Success      200 {string} string "Id of the new image"
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      413 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /add_property_image [post]
func (h *ImageHandler) AddPropertyImage(c *gin.Context) {
	if err := parseMultipart(c); err != nil {
		h.BindError(c, err)
		return
	}

	cmd := realestate.AddPropertyImageCommand{
		PropertyID: c.PostForm("propertyId"),
	}

	if raw := c.PostForm("enabled"); raw != "" {
		enabled, err := strconv.ParseBool(raw)
		if err != nil {
			h.HandleError(c, shared.NewValidationError(shared.FieldError{
				Field:   "enabled",
				Message: "Enabled must be true or false",
			}), "adding the property image")
			return
		}
		cmd.Enabled = &enabled
	}

	image, imageName, err := readFormFile(c, "image")
	if err != nil {
		h.BindError(c, err)
		return
	}
	cmd.Image, cmd.ImageName = image, imageName

	id, err := mediator.Send[realestate.AddPropertyImageCommand, uuid.UUID](c.Request.Context(), h.mediator, cmd)
	if err != nil {
		h.HandleError(c, err, "adding the property image")
		return
	}

	h.OK(c, id)
}

// GetPropertyImage godoc
// @Summary      Download a property image
// @Description  Returns the JPEG bytes of an enabled image of the property
// @Tags         images
// @Produce      image/jpeg
// @Param        propertyId path string true "Property id" format(uuid)
// @Param        imageId    path string true "Image id" format(uuid)
// @Success      200 {file}   binary
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /property/{propertyId}/image/{imageId} [get]
func (h *ImageHandler) GetPropertyImage(c *gin.Context) {
	propertyID, err := uuid.Parse(c.Param("propertyId"))
	if err != nil {
		h.BadRequest(c, "Invalid property ID format")
		return
	}
	imageID, err := uuid.Parse(c.Param("imageId"))
	if err != nil {
		h.BadRequest(c, "Invalid image ID format")
		return
	}

	data, err := mediator.Send[realestate.GetPropertyImageQuery, []byte](c.Request.Context(), h.mediator,
		realestate.GetPropertyImageQuery{PropertyID: propertyID, ImageID: imageID})
	if err != nil {
		h.HandleError(c, err, "retrieving the image")
		return
	}

	c.Data(http.StatusOK, ImageContentType, data)
}
