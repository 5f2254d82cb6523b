package middleware

import (
	"context"

	"github.com/SscSPs/consultancy_admin/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// Keys used to store request-scoped values. Using a custom type prevents collisions.
const (
	userIDKey    = contextKey("userID")
	tenantKey    = contextKey("tenant")
	principalKey = contextKey("principal")
)

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get(string(userIDKey))
	if !exists {
		// check in the request context as well
		if userID, ok := c.Request.Context().Value(userIDKey).(string); ok {
			return userID, true
		}
		return "", false
	}

	userID, ok := userIDVal.(string)
	return userID, ok
}

// TenantFromCtx returns the tenant resolved by TenantGate.
func TenantFromCtx(ctx context.Context) (*domain.Tenant, bool) {
	tenant, ok := ctx.Value(tenantKey).(*domain.Tenant)
	return tenant, ok && tenant != nil
}

// GetTenantFromContext returns the tenant resolved for the current request.
func GetTenantFromContext(c *gin.Context) (*domain.Tenant, bool) {
	return TenantFromCtx(c.Request.Context())
}

// WithTenant stores tenant in ctx.
func WithTenant(ctx context.Context, tenant *domain.Tenant) context.Context {
	return context.WithValue(ctx, tenantKey, tenant)
}

// PrincipalFromCtx returns the principal loaded by PrincipalLoader.
func PrincipalFromCtx(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(principalKey).(*domain.User)
	return user, ok && user != nil
}

// GetPrincipalFromContext returns the authenticated principal with its roles.
func GetPrincipalFromContext(c *gin.Context) (*domain.User, bool) {
	return PrincipalFromCtx(c.Request.Context())
}

// WithPrincipal stores user in ctx along with its ID.
func WithPrincipal(ctx context.Context, user *domain.User) context.Context {
	ctx = context.WithValue(ctx, userIDKey, user.UserID)
	return context.WithValue(ctx, principalKey, user)
}
