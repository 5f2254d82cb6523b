package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ValidatePathIDs answers 404 when a route parameter named "*_id" is not a UUID.
// Every entity key is a UUID, so a malformed one can never match a row.
func ValidatePathIDs() gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, p := range c.Params {
			if !strings.HasSuffix(p.Key, "_id") {
				continue
			}
			if _, err := uuid.Parse(p.Value); err != nil {
				GetLoggerFromCtx(c.Request.Context()).Warn("Malformed path identifier",
					slog.String("param", p.Key), slog.String("value", p.Value))
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
				return
			}
		}
		c.Next()
	}
}
