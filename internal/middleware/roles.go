package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/consultancy_admin/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// DashboardPath returns the dashboard route of a namespace under basePath.
func DashboardPath(basePath string, route domain.DashboardRoute) string {
	return NamespacePath(basePath, route) + "/dashboard"
}

// NamespacePath returns the route prefix owned by a namespace.
func NamespacePath(basePath string, route domain.DashboardRoute) string {
	return strings.TrimRight(basePath, "/") + "/" + route.Namespace
}

// RoleRedirect sends principals landing outside their authoritative namespace to
// that namespace's dashboard. Requests without a principal, and principals holding
// none of the recognised roles, pass through unchanged.
func RoleRedirect(basePath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := GetPrincipalFromContext(c)
		if !ok {
			c.Next()
			return
		}
		route, ok := domain.ResolveDashboard(user.Roles)
		if !ok {
			c.Next()
			return
		}

		prefix := NamespacePath(basePath, route)
		path := c.Request.URL.Path
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			c.Next()
			return
		}

		target := DashboardPath(basePath, route)
		GetLoggerFromCtx(c.Request.Context()).Info("Redirecting to role dashboard",
			slog.String("role", string(route.Role)), slog.String("location", target))
		c.Redirect(http.StatusFound, target)
		c.Abort()
	}
}

// RequireRole rejects principals that hold none of roles with 403.
func RequireRole(roles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := GetPrincipalFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		for _, r := range roles {
			if user.HasRole(r) {
				c.Next()
				return
			}
		}
		GetLoggerFromCtx(c.Request.Context()).Warn("Principal lacks required role", slog.Any("required", roles))
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	}
}
