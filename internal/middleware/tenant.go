package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/consultancy_admin/internal/apperrors"
	portssvc "github.com/SscSPs/consultancy_admin/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// TenantGate resolves the tenant owning the request's host and rejects the request
// with 403 when no tenant is bound to it or the tenant is not approved.
func TenantGate(resolver portssvc.TenantResolverSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())
		host := c.Request.Host

		tenant, err := resolver.ResolveTenant(c.Request.Context(), host)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				logger.Warn("No tenant bound to host", slog.String("host", host))
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
				return
			}
			logger.Error("Failed to resolve tenant", slog.String("host", host), slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve tenant"})
			return
		}
		if !tenant.IsApproved {
			logger.Warn("Tenant not approved", slog.String("host", host), slog.String("tenant_id", tenant.TenantID))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}

		c.Request = c.Request.WithContext(WithTenant(c.Request.Context(), tenant))
		enrichLogger(c, slog.String("tenant_id", tenant.TenantID))
		c.Next()
	}
}
