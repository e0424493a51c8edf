package middleware

import (
	"net/http"
	"strings"

	"blog_api/pkg/response"
	"blog_api/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ContextUserIDKey is where AuthMiddleware stores the token subject.
const ContextUserIDKey = "userID"

// AuthMiddleware validates the Bearer token and stores the caller's user
// id in the gin context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Error(c, http.StatusUnauthorized, response.ErrTokenInvalid, "Authorization header is required")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Error(c, http.StatusUnauthorized, response.ErrTokenInvalid, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(parts[1])
		if err != nil {
			response.Error(c, http.StatusUnauthorized, response.ErrTokenInvalid, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Next()
	}
}

// UserID returns the authenticated caller's id, or "" on unauthenticated
// routes.
func UserID(c *gin.Context) string {
	val, _ := c.Get(ContextUserIDKey)
	if id, ok := val.(string); ok {
		return id
	}
	return ""
}
