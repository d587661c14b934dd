package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

const (
	// APIKeyHeader carries the client's API key
	APIKeyHeader = "X-EcoAlerta-Key"
	// AuthenticatedKey is set in the context once the key is verified
	AuthenticatedKey = "authenticated"
)

// APIKeyAuth compares the X-EcoAlerta-Key header against a bcrypt hash.
// An empty hash disables authentication.
func APIKeyAuth(keyHash string) gin.HandlerFunc {
	hash := []byte(keyHash)

	return func(c *gin.Context) {
		if len(hash) == 0 {
			c.Next()
			return
		}

		providedKey := c.GetHeader(APIKeyHeader)
		if providedKey == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "API key required",
				"code":  "AUTH_REQUIRED",
			})
			c.Abort()
			return
		}

		if err := bcrypt.CompareHashAndPassword(hash, []byte(providedKey)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Unauthorized",
				"code":  "UNAUTHORIZED",
			})
			c.Abort()
			return
		}

		c.Set(AuthenticatedKey, true)
		c.Next()
	}
}
