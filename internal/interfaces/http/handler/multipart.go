package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// maxMultipartMemory is the part of a multipart body kept in memory; the
// rest spills to temporary files
const maxMultipartMemory = 32 << 20

// parseMultipart parses the multipart body once so later form reads are
// cheap. Errors come from a malformed or over-limit body.
func parseMultipart(c *gin.Context) error {
	return c.Request.ParseMultipartForm(maxMultipartMemory)
}

// readFormFile returns the content and name of an uploaded file. A missing
// field yields nil content and no error.
func readFormFile(c *gin.Context, field string) ([]byte, string, error) {
	fh, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", err
	}

	f, err := fh.Open()
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, "", err
	}
	return data, fh.Filename, nil
}
