package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mealplan-simple/services"
)

// UserIDKey is the gin context key under which the authenticated user id
// is stored for downstream handlers
const UserIDKey = "userId"

// AuthMiddleware verifies the bearer token on incoming requests and
// attaches the authenticated user id to the context. Requests without a
// valid token are rejected with 401.
func AuthMiddleware(tokens *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "No token, authorization denied",
			})
			return
		}

		// Accept both "Bearer <token>" and a raw token
		token := strings.TrimPrefix(header, "Bearer ")

		claims, err := tokens.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Token is not valid",
			})
			return
		}

		c.Set(UserIDKey, claims.Subject)
		c.Next()
	}
}

// CurrentUserID extracts the authenticated user id set by AuthMiddleware
func CurrentUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get(UserIDKey)
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}
