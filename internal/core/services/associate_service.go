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

type associateService struct {
	BaseService
	txManager     portsrepo.TransactionManager
	associateRepo portsrepo.AssociateRepositoryFacade
	principals    principalProvisioner
	contracts     contractManager
}

// NewAssociateService creates an associate service.
func NewAssociateService(
	txManager portsrepo.TransactionManager,
	associateRepo portsrepo.AssociateRepositoryFacade,
	userRepo portsrepo.UserRepositoryFacade,
	attachmentRepo portsrepo.AttachmentRepositoryFacade,
	store portsrepo.AttachmentStore,
	urlExpiry time.Duration,
) portssvc.AssociateSvcFacade {
	return &associateService{
		txManager:     txManager,
		associateRepo: associateRepo,
		principals:    principalProvisioner{userRepo: userRepo},
		contracts:     contractManager{store: store, repo: attachmentRepo, urlExpiry: urlExpiry},
	}
}

var _ portssvc.AssociateSvcFacade = (*associateService)(nil)

func (s *associateService) CreateAssociate(ctx context.Context, tenantID, actorID, branchID string, req dto.ProvisionRequest, contract *dto.FileUpload) (*domain.Associate, error) {
	ts := now()
	associate := domain.Associate{
		AssociateID:    uuid.NewString(),
		TenantID:       tenantID,
		BranchID:       branchID,
		Name:           strings.TrimSpace(req.Name),
		ContactDetails: req.ToContactDetails(),
		IsActive:       true,
		AuditFields:    domain.NewAuditFields(actorID, ts),
	}

	var uploaded *domain.Attachment
	if contract != nil {
		var err error
		uploaded, err = s.contracts.upload(ctx, tenantID, domain.OwnerTypeAssociate, associate.AssociateID, actorID, contract, ts)
		if err != nil {
			return nil, err
		}
	}

	err := s.txManager.WithinTransaction(ctx, func(txCtx context.Context) error {
		user, err := s.principals.createPrincipal(txCtx, tenantID, actorID, domain.RoleAssociate, req, ts)
		if err != nil {
			return err
		}
		associate.UserID = user.UserID
		associate.Email = user.Email
		if err := s.associateRepo.SaveAssociate(txCtx, associate); err != nil {
			return err
		}
		if uploaded != nil {
			_, err = s.contracts.replace(txCtx, uploaded)
		}
		return err
	})
	if err != nil {
		s.contracts.discard(ctx, uploaded)
		if !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to create associate", slog.String("branch_id", branchID))
		}
		return nil, wrapUnexpected(err, "failed to create associate")
	}

	associate.Contract = uploaded
	s.LogInfo(ctx, "Associate created", slog.String("associate_id", associate.AssociateID), slog.String("branch_id", branchID))
	return &associate, nil
}

func (s *associateService) UpdateAssociate(ctx context.Context, tenantID, actorID, branchID, associateID string, req dto.UpdateProvisionRequest, contract *dto.FileUpload) (*domain.Associate, error) {
	associate, err := s.GetAssociate(ctx, tenantID, branchID, associateID)
	if err != nil {
		return nil, err
	}
	ts := now()

	var uploaded, previous *domain.Attachment
	if contract != nil {
		uploaded, err = s.contracts.upload(ctx, tenantID, domain.OwnerTypeAssociate, associateID, actorID, contract, ts)
		if err != nil {
			return nil, err
		}
	}

	err = s.txManager.WithinTransaction(ctx, func(txCtx context.Context) error {
		user, err := s.principals.updatePrincipal(txCtx, tenantID, actorID, associate.UserID, req, ts)
		if err != nil {
			return err
		}
		associate.Name = user.Name
		associate.Email = user.Email
		associate.ContactDetails = req.ToContactDetails()
		associate.IsActive = user.IsActive
		associate.Touch(actorID, ts)
		if err := s.associateRepo.UpdateAssociate(txCtx, *associate); err != nil {
			return err
		}
		if uploaded != nil {
			previous, err = s.contracts.replace(txCtx, uploaded)
		}
		return err
	})
	if err != nil {
		s.contracts.discard(ctx, uploaded)
		if !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to update associate", slog.String("associate_id", associateID))
		}
		return nil, wrapUnexpected(err, "failed to update associate")
	}

	if uploaded != nil {
		s.contracts.discard(ctx, previous)
		associate.Contract = uploaded
	}
	return associate, nil
}

// GetAssociate returns the associate with its contract. Associates of other branches are not found.
func (s *associateService) GetAssociate(ctx context.Context, tenantID, branchID, associateID string) (*domain.Associate, error) {
	associate, err := s.associateRepo.FindAssociateByID(ctx, tenantID, associateID)
	if err != nil {
		return nil, wrapUnexpected(err, "failed to get associate")
	}
	if associate.BranchID != branchID {
		return nil, apperrors.NewNotFoundError("associate not found")
	}
	associate.Contract, err = s.contracts.current(ctx, tenantID, domain.OwnerTypeAssociate, associateID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load associate contract", slog.String("associate_id", associateID))
		return nil, err
	}
	return associate, nil
}

func (s *associateService) ListAssociates(ctx context.Context, tenantID, branchID string, params dto.ListParams) (dto.Page[domain.Associate], error) {
	repoParams, err := toRepoListParams(params)
	if err != nil {
		return dto.Page[domain.Associate]{}, err
	}
	associates, err := s.associateRepo.ListAssociatesByBranch(ctx, tenantID, branchID, repoParams)
	if err != nil {
		s.LogError(ctx, err, "Failed to list associates", slog.String("branch_id", branchID))
		return dto.Page[domain.Associate]{}, wrapUnexpected(err, "failed to list associates")
	}
	return dto.Page[domain.Associate]{
		Items: associates,
		NextToken: pagination.NextToken(associates, repoParams.Limit, func(a domain.Associate) (time.Time, string) {
			return a.CreatedAt, a.AssociateID
		}),
	}, nil
}

func (s *associateService) GetAssociateContractURL(ctx context.Context, tenantID, branchID, associateID string) (string, time.Time, error) {
	if _, err := s.GetAssociate(ctx, tenantID, branchID, associateID); err != nil {
		return "", time.Time{}, err
	}
	return s.contracts.downloadURL(ctx, tenantID, domain.OwnerTypeAssociate, associateID)
}
