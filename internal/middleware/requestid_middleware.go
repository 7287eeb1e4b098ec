package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"
const requestIDKey = "requestID"

// RequestIDMiddleware tags every request with an id, honoring one supplied
// by the client and minting a UUID otherwise. The id is echoed back on the
// response for log correlation.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}

// RequestID returns the request id set by RequestIDMiddleware, or "" when
// the middleware did not run.
func RequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
