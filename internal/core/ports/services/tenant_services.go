package services

import (
	"context"

	"github.com/SscSPs/consultancy_admin/internal/core/domain"
	"github.com/SscSPs/consultancy_admin/internal/dto"
)

// TenantResolverSvc maps inbound hosts to tenants.
type TenantResolverSvc interface {
	// ResolveTenant returns the tenant bound to host. Unknown hosts yield apperrors.ErrNotFound.
	// Approval is not checked here; the gate decides.
	ResolveTenant(ctx context.Context, host string) (*domain.Tenant, error)

	// GetTenantByID retrieves a tenant with its domains.
	GetTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error)
}

// TenantLifecycleSvc covers signup and out-of-band approval.
type TenantLifecycleSvc interface {
	// SignupTenant creates an unapproved tenant, its domain and its first super admin atomically.
	SignupTenant(ctx context.Context, req dto.SignupTenantRequest) (*domain.Tenant, *domain.User, error)

	// SetTenantApproval approves or revokes a tenant and drops cached lookups for its domains.
	SetTenantApproval(ctx context.Context, tenantID string, approved bool, actor string) (*domain.Tenant, error)
}

// TenantSvcFacade combines all tenant-related service interfaces
type TenantSvcFacade interface {
	TenantResolverSvc
	TenantLifecycleSvc
}
