package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/consultancy_admin/internal/apperrors"
	portssvc "github.com/SscSPs/consultancy_admin/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// PrincipalLoader loads the authenticated principal and its roles for the request.
// Missing or deactivated principals are rejected with 401.
func PrincipalLoader(users portssvc.UserReaderSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		userID, ok := GetUserIDFromContext(c)
		tenant, hasTenant := GetTenantFromContext(c)
		if !ok || !hasTenant {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		user, err := users.GetUserByID(c.Request.Context(), tenant.TenantID, userID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				logger.Warn("Principal from token not found")
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
				return
			}
			logger.Error("Failed to load principal", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user"})
			return
		}
		if !user.IsActive {
			logger.Warn("Principal is deactivated")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Account is deactivated"})
			return
		}

		c.Request = c.Request.WithContext(WithPrincipal(c.Request.Context(), user))
		c.Next()
	}
}
