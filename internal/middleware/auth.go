package middleware

import (
	"net/http"
	"strings"

	"healthcare-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the JWT access token from the Authorization header
// and injects the caller identity into the request context. Every record
// endpoint sits behind this.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Authorization header required")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid authorization format. Use: Bearer <token>")
			c.Abort()
			return
		}

		claims, err := utils.ValidateAccessToken(parts[1])
		if err != nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("username", claims.Username)

		c.Next()
	}
}

// CallerID returns the authenticated user ID set by AuthMiddleware
func CallerID(c *gin.Context) uint {
	userID, _ := c.Get("userID")
	id, _ := userID.(uint)
	return id
}
