package middleware

import (
	"crypto/subtle"
	"net/http"

	"jobboard/internal/auth"

	"github.com/gin-gonic/gin"
)

const (
	userIDKey   = "user_id"
	userRoleKey = "user_role"

	// ServiceSecretHeader guards trusted service-to-service calls.
	ServiceSecretHeader = "X-Service-Secret"
)

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"status":  "error",
		"code":    http.StatusUnauthorized,
		"message": message,
	})
}

// RequireUser validates the session cookie and attaches the subject to the
// request context.
func RequireUser(secret string) gin.HandlerFunc {
	key := []byte(secret)
	return func(c *gin.Context) {
		token, err := c.Cookie(auth.CookieName)
		if err != nil || token == "" {
			abortUnauthorized(c, "no token provided")
			return
		}

		userID, role, err := auth.Parse(key, token)
		if err != nil {
			abortUnauthorized(c, "invalid or expired token")
			return
		}

		c.Set(userIDKey, userID)
		c.Set(userRoleKey, role)
		c.Next()
	}
}

// UserID returns the authenticated subject set by RequireUser.
func UserID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

// RequireServiceSecret gates trusted service-to-service endpoints behind a
// shared secret header, independent of the user cookie scheme.
func RequireServiceSecret(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			abortUnauthorized(c, "service auth not configured")
			return
		}
		provided := c.GetHeader(ServiceSecretHeader)
		if provided == "" {
			abortUnauthorized(c, "no secret provided")
			return
		}
		if subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
			abortUnauthorized(c, "invalid secret")
			return
		}
		c.Next()
	}
}
