package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// ContextUserKey is where a verified identity subject is stored on the gin
// context for handlers to pick up.
const ContextUserKey = "user_id"

// Identity verifies an optional bearer token issued by the identity
// provider and exposes its subject as the caller's user id. Requests
// without a token pass through; handlers then fall back to the body field,
// matching the original backend's behavior. A token that is present but
// invalid is rejected.
func Identity(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.Next()
			return
		}

		token, err := jwt.Parse(strings.TrimPrefix(header, "Bearer "), func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid session token"})
			return
		}

		sub, err := token.Claims.GetSubject()
		if err == nil && sub != "" {
			c.Set(ContextUserKey, sub)
		}
		c.Next()
	}
}
