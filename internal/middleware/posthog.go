package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/consultancy_admin/internal/utils"
	"github.com/gin-gonic/gin"
)

// PosthogMiddleware tracks successful mutating admin actions with PostHog.
// Reads are not tracked.
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if posthogClient == nil || !posthogClient.IsInitialized() || c.Request.Method == http.MethodGet {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		userID, exists := GetUserIDFromContext(c)
		if !exists {
			return
		}

		// "/api/v1/super-admin/branches/:branch_id" -> "POST super-admin_branches_:branch_id"
		eventName := EventName(c.Request.Method, c.FullPath())
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
		}
		if tenant, ok := GetTenantFromContext(c); ok {
			props["tenant_id"] = tenant.TenantID
		}
		if len(c.Params) > 0 {
			params := make(map[string]string)
			for _, param := range c.Params {
				params[param.Key] = param.Value
			}
			props["params"] = params
		}

		posthogClient.Enqueue(userID, eventName, props)
	}
}

// EventName derives an analytics event name from a route template.
// The leading api prefix segments are dropped; empty routes (404s) yield "".
func EventName(method, fullPath string) string {
	segments := strings.Split(strings.Trim(fullPath, "/"), "/")
	for len(segments) > 0 && (segments[0] == "api" || strings.HasPrefix(segments[0], "v") && len(segments[0]) <= 3) {
		segments = segments[1:]
	}
	if len(segments) == 0 || segments[0] == "" {
		return ""
	}
	return method + " " + strings.Join(segments, "_")
}
