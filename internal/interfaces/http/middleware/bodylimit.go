package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/realestate/backend/internal/interfaces/http/dto"
)

// MsgRequestTooLarge is the message of the 413 envelope
const MsgRequestTooLarge = "Request body exceeds maximum allowed size"

// BodyLimit returns a middleware that limits request body size. Requests
// announcing a larger Content-Length are rejected up front; streamed bodies
// are cut off by http.MaxBytesReader and surface as *http.MaxBytesError.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			AbortRequestTooLarge(c)
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// IsRequestTooLarge reports whether err came from an exhausted body limit
func IsRequestTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}

// AbortRequestTooLarge writes the 413 envelope
func AbortRequestTooLarge(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge,
		dto.NewErrorResponseWithRequestID(dto.ErrCodeRequestTooLarge, MsgRequestTooLarge, requestIDFrom(c)))
}
