package handlers

import (
	"net/http"

	"github.com/SscSPs/consultancy_admin/internal/core/domain"
	"github.com/SscSPs/consultancy_admin/internal/dto"
	"github.com/SscSPs/consultancy_admin/internal/middleware"
	"github.com/gin-gonic/gin"
)

// getHealth godoc
// @Summary Show the status of server.
// @Tags root
// @Produce plain
// @Success 200 {string} string "OK"
// @Router /health [get]
func getHealth(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

// dashboardHandler answers GET {namespace}/dashboard for one role.
// @Summary Role dashboard
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /{namespace}/dashboard [get]
func dashboardHandler(route domain.DashboardRoute) gin.HandlerFunc {
	return func(c *gin.Context) {
		tenant, hasTenant := middleware.GetTenantFromContext(c)
		user, hasUser := middleware.GetPrincipalFromContext(c)
		if !hasTenant || !hasUser {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
			return
		}

		c.JSON(http.StatusOK, dto.DashboardResponse{
			Namespace: route.Namespace,
			Role:      route.Role,
			Tenant:    dto.ToTenantResponse(tenant),
			User:      dto.ToUserResponse(user),
		})
	}
}
