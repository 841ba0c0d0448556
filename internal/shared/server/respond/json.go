package respond

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"prism-backend/internal/shared/util"
)

// JSON writes a JSON response with the given status.
func JSON(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, payload)
}

// OK writes a 200 OK JSON response.
func OK(c *gin.Context, payload interface{}) {
	JSON(c, http.StatusOK, payload)
}

// Attachment writes data as a downloadable file named filename.
func Attachment(c *gin.Context, filename, contentType string, data []byte) {
	filename = util.SanitizeFileName(filename, "download")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Length", strconv.Itoa(len(data)))
	c.Data(http.StatusOK, contentType, data)
}
