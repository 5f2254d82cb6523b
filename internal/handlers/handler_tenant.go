package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/consultancy_admin/internal/core/ports/services"
	"github.com/SscSPs/consultancy_admin/internal/dto"
	"github.com/SscSPs/consultancy_admin/internal/middleware"
	"github.com/gin-gonic/gin"
)

// platformActor is recorded as the updater of operator-driven changes.
const platformActor = "platform"

type tenantHandler struct {
	tenantService portssvc.TenantSvcFacade
}

// SignupTenantResponse is returned after a tenant registers.
type SignupTenantResponse struct {
	Tenant dto.TenantResponse `json:"tenant"`
	Admin  dto.UserResponse   `json:"admin"`
}

// registerTenantSignupRoutes registers the public signup route. It is not tenant-gated:
// the tenant being created has no approved domain yet.
func registerTenantSignupRoutes(rg *gin.RouterGroup, tenantService portssvc.TenantSvcFacade, limit gin.HandlerFunc) {
	h := &tenantHandler{tenantService: tenantService}
	rg.POST("/tenants/signup", limit, h.signup)
}

// registerPlatformRoutes registers operator routes. rg must carry the platform key guard.
func registerPlatformRoutes(rg *gin.RouterGroup, tenantService portssvc.TenantSvcFacade) {
	h := &tenantHandler{tenantService: tenantService}
	tenants := rg.Group("/tenants/:tenant_id")
	{
		tenants.GET("", h.getTenant)
		tenants.POST("/approve", h.setApproval(true))
		tenants.POST("/revoke", h.setApproval(false))
	}
}

// signup godoc
// @Summary Register a tenant
// @Description Creates an unapproved tenant, binds its domain and creates its first super admin.
// @Tags tenants
// @Accept json
// @Produce json
// @Param signup body dto.SignupTenantRequest true "Tenant and admin details"
// @Success 201 {object} SignupTenantResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Domain or email already taken"
// @Router /tenants/signup [post]
func (h *tenantHandler) signup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SignupTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	tenant, admin, err := h.tenantService.SignupTenant(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err, "Failed to register tenant")
		return
	}

	logger.Info("Tenant registered", slog.String("tenant_id", tenant.TenantID), slog.String("domain", req.Domain))
	c.JSON(http.StatusCreated, SignupTenantResponse{
		Tenant: dto.ToTenantResponse(tenant),
		Admin:  dto.ToUserResponse(admin),
	})
}

// getTenant godoc
// @Summary Get a tenant
// @Tags platform
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Success 200 {object} dto.TenantResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /platform/tenants/{tenant_id} [get]
func (h *tenantHandler) getTenant(c *gin.Context) {
	tenant, err := h.tenantService.GetTenantByID(c.Request.Context(), c.Param("tenant_id"))
	if err != nil {
		respondWithError(c, err, "Failed to retrieve tenant")
		return
	}
	c.JSON(http.StatusOK, dto.ToTenantResponse(tenant))
}

// setApproval godoc
// @Summary Approve or revoke a tenant
// @Tags platform
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Success 200 {object} dto.TenantResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /platform/tenants/{tenant_id}/approve [post]
// @Router /platform/tenants/{tenant_id}/revoke [post]
func (h *tenantHandler) setApproval(approved bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		tenantID := c.Param("tenant_id")
		tenant, err := h.tenantService.SetTenantApproval(c.Request.Context(), tenantID, approved, platformActor)
		if err != nil {
			respondWithError(c, err, "Failed to update tenant approval")
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Info("Tenant approval changed",
			slog.String("tenant_id", tenantID), slog.Bool("approved", approved))
		c.JSON(http.StatusOK, dto.ToTenantResponse(tenant))
	}
}
