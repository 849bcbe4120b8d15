package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"tripboard/pkg/utils"
)

func JWTAuthMiddleware() gin.HandlerFunc {

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		// Requester identity is threaded explicitly from here down; nothing
		// below the handlers reads it from ambient state.
		c.Set("user_id", claims.UserID)
		c.Next()
	}
}

// OptionalJWTAuthMiddleware resolves a requester when a valid token is
// present but lets anonymous visitors through. Public itineraries are
// viewable without an account.
func OptionalJWTAuthMiddleware() gin.HandlerFunc {

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if claims, err := utils.ValidateToken(tokenString); err == nil {
				c.Set("user_id", claims.UserID)
			}
		}
		c.Next()
	}
}
