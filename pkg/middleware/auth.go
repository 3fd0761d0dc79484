package middleware

import (
	"net/http"
	"strings"

	"mld-backend/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// UserResolver reports the current role of a token subject, or an error when
// the subject no longer exists in the credential store.
type UserResolver func(userID string) (role string, err error)

// AuthMiddleware validates the bearer token and re-resolves its subject.
// Every failure aborts with the same generic 401 so callers cannot probe
// which check failed.
func AuthMiddleware(jwtService *jwt.Service, resolve UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			unauthenticated(c)
			return
		}

		claims, err := jwtService.ValidateToken(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			unauthenticated(c)
			return
		}

		role, err := resolve(claims.UserID)
		if err != nil {
			unauthenticated(c)
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_role", role)
		c.Next()
	}
}

// RequireRole gates a route on the role resolved by AuthMiddleware.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("user_role") != role {
			c.JSON(http.StatusForbidden, gin.H{"error": "access denied"})
			c.Abort()
			return
		}
		c.Next()
	}
}

func unauthenticated(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": "please authenticate"})
	c.Abort()
}
