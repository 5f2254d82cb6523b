package handlers

import (
	"log/slog"
	"sync"

	"github.com/SscSPs/consultancy_admin/cmd/docs"
	"github.com/SscSPs/consultancy_admin/internal/core/domain"
	portssvc "github.com/SscSPs/consultancy_admin/internal/core/ports/services"
	"github.com/SscSPs/consultancy_admin/internal/dto"
	"github.com/SscSPs/consultancy_admin/internal/middleware"
	"github.com/SscSPs/consultancy_admin/internal/platform/config"
	"github.com/SscSPs/consultancy_admin/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

const defaultLoginRate = "5-M"

var registerValidationsOnce sync.Once

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// analytics may be nil.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	analytics *utils.PosthogClientWrapper,
) {
	registerBindingValidations()

	r.GET("/health", getHealth)

	basePath := cfg.APIBasePath
	api := r.Group(basePath)

	registerTenantSignupRoutes(api, services.Tenant, middleware.GinMiddlewarize(newLimiter(cfg.LoginRateLimit)))
	registerPlatformRoutes(api.Group("/platform", middleware.PlatformAPIKeyAuth(cfg.PlatformAPIKey), middleware.ValidatePathIDs()), services.Tenant)

	gated := api.Group("", middleware.TenantGate(services.Tenant))
	registerAuthRoutes(gated, services, basePath, middleware.RateLimit(newLimiter(cfg.LoginRateLimit)))

	setupNamespaceRoutes(gated, cfg, services, analytics)

	setupSwaggerRoutes(r, cfg)
}

// setupNamespaceRoutes configures the authenticated role namespaces. Principals are
// redirected to their own namespace before the role guard of another one is reached.
func setupNamespaceRoutes(
	gated *gin.RouterGroup,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	analytics *utils.PosthogClientWrapper,
) {
	authed := gated.Group("",
		middleware.AuthMiddleware(cfg.JWTSecret),
		middleware.PrincipalLoader(services.User),
		middleware.RoleRedirect(cfg.APIBasePath),
		middleware.PosthogMiddleware(analytics),
		middleware.ValidatePathIDs(),
	)

	namespaces := make(map[domain.Role]*gin.RouterGroup, len(domain.DashboardPrecedence))
	for _, route := range domain.DashboardPrecedence {
		ns := authed.Group("/"+route.Namespace, middleware.RequireRole(route.Role))
		ns.GET("/dashboard", dashboardHandler(route))
		namespaces[route.Role] = ns
	}

	superAdmin := namespaces[domain.RoleSuperAdmin]
	registerBranchRoutes(superAdmin, services.Branch)
	registerProcessingOfficeRoutes(superAdmin, services.ProcessingOffice)
	registerRepCountryRoutes(superAdmin, services.Pipeline)
	registerInstitutionRoutes(superAdmin, services.Institution)

	registerAssociateRoutes(namespaces[domain.RoleBranchOffice], services.Associate, services.Branch)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = cfg.APIBasePath
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// newLimiter builds an in-memory limiter, falling back to the default rate on a bad format.
func newLimiter(formatted string) *limiter.Limiter {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		slog.Warn("Invalid rate limit, using default", slog.String("rate", formatted), slog.String("default", defaultLoginRate))
		rate, _ = limiter.NewRateFromFormatted(defaultLoginRate)
	}
	return limiter.New(memory.NewStore(), rate)
}

// registerBindingValidations installs the custom validators on gin's validator engine.
func registerBindingValidations() {
	registerValidationsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			slog.Error("Gin validator engine is not go-playground/validator, custom rules not registered")
			return
		}
		if err := dto.RegisterValidations(v); err != nil {
			slog.Error("Failed to register custom validations", slog.String("error", err.Error()))
		}
	})
}
