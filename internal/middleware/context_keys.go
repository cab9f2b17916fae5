package middleware

import "github.com/gin-gonic/gin"

// contextKey is the type of keys this package stores in contexts.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerKey    = contextKey("logger")
	requestIDKey = contextKey("requestID")
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

// GetRequestIDFromContext retrieves the request id set by
// StructuredLoggingMiddleware.
func GetRequestIDFromContext(c *gin.Context) (string, bool) {
	requestID, exists := c.Get(string(requestIDKey))
	if !exists {
		return "", false
	}
	id, ok := requestID.(string)
	return id, ok
}
