package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shoply/backend/internal/interfaces/http/dto"
)

// BodyLimit caps the request body size. Reads past the limit fail and
// the client gets a 413.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge,
				dto.NewErrorResponse("FILE_TOO_LARGE", "Request body too large", GetRequestID(c)))
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
