package middleware

import "github.com/gin-gonic/gin"

// userIDKey is the context key under which the auth middleware stores the
// authenticated user's ID.
const userIDKey = contextKey("userID")

// GetUserIDFromContext retrieves the authenticated user ID. The auth
// middleware stores it in the request's standard context; the gin context is
// checked first so handlers under test can set it directly.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if v, exists := c.Get(string(userIDKey)); exists {
		userID, ok := v.(string)
		return userID, ok
	}
	if v := c.Request.Context().Value(userIDKey); v != nil {
		userID, ok := v.(string)
		return userID, ok
	}
	return "", false
}
