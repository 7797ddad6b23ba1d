package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDKey is the gin context key RequestID stores the id under.
const RequestIDKey = "request_id"

// RequestID attaches a unique identifier to every request: an
// incoming X-Request-ID header is reused when it looks plausible
// (non-empty, at most 64 bytes), otherwise a fresh UUID is minted. The
// id is echoed back as a response header and stashed in the gin
// context so later middleware and handlers can log against it.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if !plausibleRequestID(id) {
			id = uuid.New().String()
		}
		c.Header("X-Request-ID", id)
		c.Set(RequestIDKey, id)
		c.Next()
	}
}

func plausibleRequestID(id string) bool {
	return len(id) >= 1 && len(id) <= 64
}

// GetRequestID retrieves the id RequestID stashed in c, or "" if the
// middleware never ran.
func GetRequestID(c *gin.Context) string {
	v, ok := c.Get(RequestIDKey)
	if !ok {
		return ""
	}
	id, _ := v.(string)
	return id
}
