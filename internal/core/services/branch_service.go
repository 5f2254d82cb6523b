package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/consultancy_admin/internal/apperrors"
	"github.com/SscSPs/consultancy_admin/internal/core/domain"
	portsrepo "github.com/SscSPs/consultancy_admin/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/consultancy_admin/internal/core/ports/services"
	"github.com/SscSPs/consultancy_admin/internal/dto"
	"github.com/SscSPs/consultancy_admin/internal/utils/pagination"
	"github.com/google/uuid"
)

type branchService struct {
	BaseService
	txManager  portsrepo.TransactionManager
	branchRepo portsrepo.BranchRepositoryFacade
	principals principalProvisioner
}

// NewBranchService creates a branch service. Branch writes and principal writes share one transaction.
func NewBranchService(txManager portsrepo.TransactionManager, branchRepo portsrepo.BranchRepositoryFacade, userRepo portsrepo.UserRepositoryFacade) portssvc.BranchSvcFacade {
	return &branchService{
		txManager:  txManager,
		branchRepo: branchRepo,
		principals: principalProvisioner{userRepo: userRepo},
	}
}

var _ portssvc.BranchSvcFacade = (*branchService)(nil)

func (s *branchService) CreateBranch(ctx context.Context, tenantID, actorID string, req dto.ProvisionRequest) (*domain.Branch, error) {
	ts := now()
	var branch domain.Branch

	err := s.txManager.WithinTransaction(ctx, func(txCtx context.Context) error {
		user, err := s.principals.createPrincipal(txCtx, tenantID, actorID, domain.RoleBranchOffice, req, ts)
		if err != nil {
			return err
		}
		branch = domain.Branch{
			BranchID:       uuid.NewString(),
			TenantID:       tenantID,
			UserID:         user.UserID,
			Name:           strings.TrimSpace(req.Name),
			Email:          user.Email,
			ContactDetails: req.ToContactDetails(),
			IsActive:       true,
			AuditFields:    domain.NewAuditFields(actorID, ts),
		}
		return s.branchRepo.SaveBranch(txCtx, branch)
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to create branch", slog.String("tenant_id", tenantID))
		}
		return nil, wrapUnexpected(err, "failed to create branch")
	}

	s.LogInfo(ctx, "Branch created", slog.String("branch_id", branch.BranchID))
	return &branch, nil
}

func (s *branchService) UpdateBranch(ctx context.Context, tenantID, actorID, branchID string, req dto.UpdateProvisionRequest) (*domain.Branch, error) {
	branch, err := s.GetBranch(ctx, tenantID, branchID)
	if err != nil {
		return nil, err
	}
	ts := now()

	err = s.txManager.WithinTransaction(ctx, func(txCtx context.Context) error {
		user, err := s.principals.updatePrincipal(txCtx, tenantID, actorID, branch.UserID, req, ts)
		if err != nil {
			return err
		}
		branch.Name = user.Name
		branch.Email = user.Email
		branch.ContactDetails = req.ToContactDetails()
		branch.IsActive = user.IsActive
		branch.Touch(actorID, ts)
		return s.branchRepo.UpdateBranch(txCtx, *branch)
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to update branch", slog.String("branch_id", branchID))
		}
		return nil, wrapUnexpected(err, "failed to update branch")
	}
	return branch, nil
}

func (s *branchService) GetBranch(ctx context.Context, tenantID, branchID string) (*domain.Branch, error) {
	branch, err := s.branchRepo.FindBranchByID(ctx, tenantID, branchID)
	if err != nil {
		return nil, wrapUnexpected(err, "failed to get branch")
	}
	return branch, nil
}

func (s *branchService) GetBranchForUser(ctx context.Context, tenantID, userID string) (*domain.Branch, error) {
	branch, err := s.branchRepo.FindBranchByUserID(ctx, tenantID, userID)
	if err != nil {
		return nil, wrapUnexpected(err, "failed to get branch for user")
	}
	return branch, nil
}

func (s *branchService) ListBranches(ctx context.Context, tenantID string, params dto.ListParams) (dto.Page[domain.Branch], error) {
	repoParams, err := toRepoListParams(params)
	if err != nil {
		return dto.Page[domain.Branch]{}, err
	}
	branches, err := s.branchRepo.ListBranches(ctx, tenantID, repoParams)
	if err != nil {
		s.LogError(ctx, err, "Failed to list branches")
		return dto.Page[domain.Branch]{}, wrapUnexpected(err, "failed to list branches")
	}
	return dto.Page[domain.Branch]{
		Items: branches,
		NextToken: pagination.NextToken(branches, repoParams.Limit, func(b domain.Branch) (time.Time, string) {
			return b.CreatedAt, b.BranchID
		}),
	}, nil
}
