package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/consultancy_admin/internal/apperrors"
	"github.com/SscSPs/consultancy_admin/internal/core/domain"
	portsrepo "github.com/SscSPs/consultancy_admin/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/consultancy_admin/internal/core/ports/services"
	"github.com/SscSPs/consultancy_admin/internal/dto"
	"github.com/SscSPs/consultancy_admin/internal/utils"
	"github.com/google/uuid"
)

type tenantService struct {
	BaseService
	txManager   portsrepo.TransactionManager
	tenantRepo  portsrepo.TenantRepositoryFacade
	userRepo    portsrepo.UserRepositoryFacade
	invalidator portsrepo.TenantCacheInvalidator
}

// TenantServiceOption is a functional option for configuring the tenant service
type TenantServiceOption func(*tenantService)

// WithTenantCacheInvalidator makes approval changes drop cached domain lookups.
func WithTenantCacheInvalidator(invalidator portsrepo.TenantCacheInvalidator) TenantServiceOption {
	return func(s *tenantService) {
		s.invalidator = invalidator
	}
}

// NewTenantService creates a new tenant service with the provided options
func NewTenantService(txManager portsrepo.TransactionManager, tenantRepo portsrepo.TenantRepositoryFacade, userRepo portsrepo.UserRepositoryFacade, options ...TenantServiceOption) portssvc.TenantSvcFacade {
	svc := &tenantService{
		txManager:  txManager,
		tenantRepo: tenantRepo,
		userRepo:   userRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.TenantSvcFacade = (*tenantService)(nil)

func (s *tenantService) ResolveTenant(ctx context.Context, host string) (*domain.Tenant, error) {
	normalized := domain.NormalizeHost(host)
	if normalized == "" {
		return nil, apperrors.NewNotFoundError("no tenant for empty host")
	}
	tenant, err := s.tenantRepo.FindTenantByDomain(ctx, normalized)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to resolve tenant by domain", slog.String("host", normalized))
		}
		return nil, err
	}
	return tenant, nil
}

func (s *tenantService) GetTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	tenant, err := s.tenantRepo.FindTenantByID(ctx, tenantID)
	if err != nil {
		return nil, wrapUnexpected(err, "failed to get tenant")
	}
	return tenant, nil
}

func (s *tenantService) SignupTenant(ctx context.Context, req dto.SignupTenantRequest) (*domain.Tenant, *domain.User, error) {
	host := domain.NormalizeHost(req.Domain)
	if _, err := s.tenantRepo.FindTenantByDomain(ctx, host); err == nil {
		return nil, nil, apperrors.NewFieldError("domain", "The domain has already been taken.")
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check domain availability", slog.String("domain", host))
		return nil, nil, fmt.Errorf("failed to check domain: %w", err)
	}

	hash, err := utils.HashPassword(req.AdminPassword)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash admin password")
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	ts := now()
	tenantID := uuid.NewString()
	adminID := uuid.NewString()
	tenant := domain.Tenant{
		TenantID:    tenantID,
		Name:        strings.TrimSpace(req.TenantName),
		IsApproved:  false,
		Domains:     []string{host},
		AuditFields: domain.NewAuditFields(adminID, ts),
	}
	admin := domain.User{
		UserID:       adminID,
		TenantID:     tenantID,
		Name:         strings.TrimSpace(req.AdminName),
		Email:        normalizeEmail(req.AdminEmail),
		PasswordHash: hash,
		IsActive:     true,
		Roles:        []domain.Role{domain.RoleSuperAdmin},
		AuditFields:  domain.NewAuditFields(adminID, ts),
	}

	err = s.txManager.WithinTransaction(ctx, func(txCtx context.Context) error {
		if err := s.tenantRepo.SaveTenant(txCtx, tenant); err != nil {
			if errors.Is(err, apperrors.ErrDuplicate) {
				return apperrors.NewFieldError("domain", "The domain has already been taken.")
			}
			return err
		}
		if err := s.userRepo.SaveUser(txCtx, admin); err != nil {
			if errors.Is(err, apperrors.ErrDuplicate) {
				return apperrors.NewFieldError("adminEmail", "The email has already been taken.")
			}
			return err
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to sign up tenant", slog.String("domain", host))
		}
		return nil, nil, wrapUnexpected(err, "failed to sign up tenant")
	}

	s.LogInfo(ctx, "Tenant signed up, awaiting approval", slog.String("tenant_id", tenantID), slog.String("domain", host))
	return &tenant, &admin, nil
}

func (s *tenantService) SetTenantApproval(ctx context.Context, tenantID string, approved bool, actor string) (*domain.Tenant, error) {
	tenant, err := s.tenantRepo.FindTenantByID(ctx, tenantID)
	if err != nil {
		return nil, wrapUnexpected(err, "failed to get tenant")
	}

	if err := s.tenantRepo.UpdateTenantApproval(ctx, tenantID, approved, actor); err != nil {
		s.LogError(ctx, err, "Failed to update tenant approval", slog.String("tenant_id", tenantID), slog.Bool("approved", approved))
		return nil, wrapUnexpected(err, "failed to update tenant approval")
	}
	tenant.IsApproved = approved
	tenant.Touch(actor, now())

	if s.invalidator != nil {
		if err := s.invalidator.Invalidate(ctx, tenant.Domains...); err != nil {
			// Entries expire on their own; a stale gate decision lasts at most one TTL.
			s.LogError(ctx, err, "Failed to invalidate tenant cache", slog.String("tenant_id", tenantID))
		}
	}

	s.LogInfo(ctx, "Tenant approval changed", slog.String("tenant_id", tenantID), slog.Bool("approved", approved))
	return tenant, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
