package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"paintpro-backend/internal/shared/response"
	"paintpro-backend/pkg/jwt"
)

// AdminAuth guards the mutating admin routes with the session token
// issued by POST /api/auth/login.
func AdminAuth(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := manager.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		c.Set("username", claims.Username)
		c.Next()
	}
}
