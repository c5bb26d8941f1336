package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"todolist/pkg/log"
)

const HeaderRequestID = "X-Request-ID"

// RequestID reuses the inbound X-Request-ID or generates one, stores it in the
// request context for the logger and echoes it on the response.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}

		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}
