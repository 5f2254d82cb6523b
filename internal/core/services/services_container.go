package services

import (
	portsrepo "github.com/SscSPs/consultancy_admin/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/consultancy_admin/internal/core/ports/services"
	"github.com/SscSPs/consultancy_admin/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// store backs contract attachments; invalidator may be nil when the tenant cache is disabled.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, store portsrepo.AttachmentStore, invalidator portsrepo.TenantCacheInvalidator) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	var tenantOptions []TenantServiceOption
	if invalidator != nil {
		tenantOptions = append(tenantOptions, WithTenantCacheInvalidator(invalidator))
	}
	container.Tenant = NewTenantService(repos.TxManager, repos.TenantRepo, repos.UserRepo, tenantOptions...)

	container.User = NewUserService(repos.UserRepo)
	container.TokenService = NewTokenService(cfg, container.User)
	container.GoogleOAuthHandler = NewGoogleOAuthHandlerService(cfg)

	container.Branch = NewBranchService(repos.TxManager, repos.BranchRepo, repos.UserRepo)
	container.Associate = NewAssociateService(repos.TxManager, repos.AssociateRepo, repos.UserRepo, repos.AttachmentRepo, store, cfg.AttachmentURLExpiry)
	container.ProcessingOffice = NewProcessingOfficeService(repos.TxManager, repos.ProcessingOfficeRepo, repos.UserRepo, repos.AttachmentRepo, store, cfg.AttachmentURLExpiry)

	container.Pipeline = NewPipelineService(repos.TxManager, repos.PipelineRepo)
	container.Institution = NewInstitutionService(repos.InstitutionRepo)

	return container
}
