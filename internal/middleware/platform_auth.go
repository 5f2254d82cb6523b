package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// PlatformAPIKeyAuth guards operator endpoints with the x-api-key header.
// An empty configured key disables the endpoints entirely.
func PlatformAPIKeyAuth(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())
		if apiKey == "" {
			logger.Warn("Platform API key not configured, rejecting request")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}

		provided := c.GetHeader("x-api-key")
		if provided == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "x-api-key header required"})
			return
		}
		if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
			logger.Warn("Invalid platform API key")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
			return
		}

		c.Set("authMethod", "platform_api_key")
		c.Next()
	}
}
