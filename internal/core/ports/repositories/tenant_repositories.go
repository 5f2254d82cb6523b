package repositories

import (
	"context"

	"github.com/SscSPs/consultancy_admin/internal/core/domain"
)

// TenantReader defines read operations for tenant data
type TenantReader interface {
	// FindTenantByDomain resolves the tenant bound to a normalised host name.
	FindTenantByDomain(ctx context.Context, domain string) (*domain.Tenant, error)

	// FindTenantByID retrieves a tenant with its bound domains.
	FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error)
}

// TenantWriter defines write operations for tenant data
type TenantWriter interface {
	// SaveTenant persists a tenant and its domains.
	SaveTenant(ctx context.Context, tenant domain.Tenant) error

	// UpdateTenantApproval sets the approval flag.
	UpdateTenantApproval(ctx context.Context, tenantID string, approved bool, updatedBy string) error
}

// TenantRepositoryFacade combines all tenant-related repository interfaces
type TenantRepositoryFacade interface {
	TenantReader
	TenantWriter
}

// TenantCacheInvalidator drops cached tenant lookups for the given domains.
type TenantCacheInvalidator interface {
	Invalidate(ctx context.Context, domains ...string) error
}
