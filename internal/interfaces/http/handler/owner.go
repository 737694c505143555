package handler

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/realestate/backend/internal/application/mediator"
	"github.com/realestate/backend/internal/application/realestate"
	"github.com/realestate/backend/internal/domain/shared"
	"github.com/realestate/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// MsgInvalidBirthday is reported when the birthday form field does not parse
const MsgInvalidBirthday = "Birthday must be a valid date"

// OwnerHandler handles owner-related API endpoints
type OwnerHandler struct {
	BaseHandler
	mediator *mediator.Mediator
}

// NewOwnerHandler creates a new OwnerHandler
func NewOwnerHandler(m *mediator.Mediator, logger *zap.Logger) *OwnerHandler {
	return &OwnerHandler{
		BaseHandler: NewBaseHandler(logger),
		mediator:    m,
	}
}

// CreateOwner godoc
// @Summary      Create an owner
// @Description  Create an owner from a multipart form. The optional photo
// @Description  is normalized to a JPEG of at most 1920x1080.
// @Tags         owners
// @Accept       multipart/form-data
// @Produce      json
// @Param        name     formData string true  "Owner name"
// @Param        address  formData string true  "Owner address"
// @Param        birthday formData string true  "Birthday (RFC3339 or YYYY-MM-DD)"
// @Param        photo    formData file   false "Photo (.jpg, .jpeg or .png, at most 10 MiB)"
// @Success      200 {string} string "Id of the new owner"
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      413 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /owner/create_owner [post]
func (h *OwnerHandler) CreateOwner(c *gin.Context) {
	if err := parseMultipart(c); err != nil {
		h.BindError(c, err)
		return
	}

	cmd := realestate.CreateOwnerCommand{
		Name:    c.PostForm("name"),
		Address: c.PostForm("address"),
	}

	// An empty birthday is left zero for the validator to report as required
	if raw := strings.TrimSpace(c.PostForm("birthday")); raw != "" {
		birthday, err := middleware.ParseFlexDate(raw)
		if err != nil {
			h.HandleError(c, shared.NewValidationError(shared.FieldError{
				Field:   "birthday",
				Message: MsgInvalidBirthday,
			}), "creating the owner")
			return
		}
		cmd.Birthday = birthday
	}

	photo, photoName, err := readFormFile(c, "photo")
	if err != nil {
		h.BindError(c, err)
		return
	}
	cmd.Photo, cmd.PhotoName = photo, photoName

	id, err := mediator.Send[realestate.CreateOwnerCommand, uuid.UUID](c.Request.Context(), h.mediator, cmd)
	if err != nil {
		h.HandleError(c, err, "creating the owner")
		return
	}

	h.OK(c, id)
}
