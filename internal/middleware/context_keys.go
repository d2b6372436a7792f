package middleware

import "github.com/gin-gonic/gin"

// userIDKey stores the authenticated operator's ID. A custom type prevents
// collisions with other context values.
const userIDKey = contextKey("userID")

// GetUserIDFromContext retrieves the operator ID that AuthMiddleware placed
// in the request context. Manual sync triggers record it as TriggeredBy.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if v := c.Request.Context().Value(userIDKey); v != nil {
		id, ok := v.(string)
		return id, ok
	}
	// Handlers exercised outside the middleware chain may set the gin
	// context directly.
	if v, exists := c.Get(string(userIDKey)); exists {
		id, ok := v.(string)
		return id, ok
	}
	return "", false
}
