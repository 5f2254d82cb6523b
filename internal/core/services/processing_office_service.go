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

type processingOfficeService struct {
	BaseService
	txManager  portsrepo.TransactionManager
	officeRepo portsrepo.ProcessingOfficeRepositoryFacade
	principals principalProvisioner
	contracts  contractManager
}

// NewProcessingOfficeService creates a processing office service.
func NewProcessingOfficeService(
	txManager portsrepo.TransactionManager,
	officeRepo portsrepo.ProcessingOfficeRepositoryFacade,
	userRepo portsrepo.UserRepositoryFacade,
	attachmentRepo portsrepo.AttachmentRepositoryFacade,
	store portsrepo.AttachmentStore,
	urlExpiry time.Duration,
) portssvc.ProcessingOfficeSvcFacade {
	return &processingOfficeService{
		txManager:  txManager,
		officeRepo: officeRepo,
		principals: principalProvisioner{userRepo: userRepo},
		contracts:  contractManager{store: store, repo: attachmentRepo, urlExpiry: urlExpiry},
	}
}

var _ portssvc.ProcessingOfficeSvcFacade = (*processingOfficeService)(nil)

func (s *processingOfficeService) CreateProcessingOffice(ctx context.Context, tenantID, actorID string, req dto.ProvisionRequest, contract *dto.FileUpload) (*domain.ProcessingOffice, error) {
	ts := now()
	office := domain.ProcessingOffice{
		ProcessingOfficeID: uuid.NewString(),
		TenantID:           tenantID,
		Name:               strings.TrimSpace(req.Name),
		ContactDetails:     req.ToContactDetails(),
		IsActive:           true,
		AuditFields:        domain.NewAuditFields(actorID, ts),
	}

	var uploaded *domain.Attachment
	if contract != nil {
		var err error
		uploaded, err = s.contracts.upload(ctx, tenantID, domain.OwnerTypeProcessingOffice, office.ProcessingOfficeID, actorID, contract, ts)
		if err != nil {
			return nil, err
		}
	}

	err := s.txManager.WithinTransaction(ctx, func(txCtx context.Context) error {
		user, err := s.principals.createPrincipal(txCtx, tenantID, actorID, domain.RoleProcessingOffice, req, ts)
		if err != nil {
			return err
		}
		office.UserID = user.UserID
		office.Email = user.Email
		if err := s.officeRepo.SaveProcessingOffice(txCtx, office); err != nil {
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
			s.LogError(ctx, err, "Failed to create processing office", slog.String("tenant_id", tenantID))
		}
		return nil, wrapUnexpected(err, "failed to create processing office")
	}

	office.Contract = uploaded
	s.LogInfo(ctx, "Processing office created", slog.String("processing_office_id", office.ProcessingOfficeID))
	return &office, nil
}

func (s *processingOfficeService) UpdateProcessingOffice(ctx context.Context, tenantID, actorID, officeID string, req dto.UpdateProvisionRequest, contract *dto.FileUpload) (*domain.ProcessingOffice, error) {
	office, err := s.GetProcessingOffice(ctx, tenantID, officeID)
	if err != nil {
		return nil, err
	}
	ts := now()

	var uploaded, previous *domain.Attachment
	if contract != nil {
		uploaded, err = s.contracts.upload(ctx, tenantID, domain.OwnerTypeProcessingOffice, officeID, actorID, contract, ts)
		if err != nil {
			return nil, err
		}
	}

	err = s.txManager.WithinTransaction(ctx, func(txCtx context.Context) error {
		user, err := s.principals.updatePrincipal(txCtx, tenantID, actorID, office.UserID, req, ts)
		if err != nil {
			return err
		}
		office.Name = user.Name
		office.Email = user.Email
		office.ContactDetails = req.ToContactDetails()
		office.IsActive = user.IsActive
		office.Touch(actorID, ts)
		if err := s.officeRepo.UpdateProcessingOffice(txCtx, *office); err != nil {
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
			s.LogError(ctx, err, "Failed to update processing office", slog.String("processing_office_id", officeID))
		}
		return nil, wrapUnexpected(err, "failed to update processing office")
	}

	if uploaded != nil {
		s.contracts.discard(ctx, previous)
		office.Contract = uploaded
	}
	return office, nil
}

func (s *processingOfficeService) GetProcessingOffice(ctx context.Context, tenantID, officeID string) (*domain.ProcessingOffice, error) {
	office, err := s.officeRepo.FindProcessingOfficeByID(ctx, tenantID, officeID)
	if err != nil {
		return nil, wrapUnexpected(err, "failed to get processing office")
	}
	office.Contract, err = s.contracts.current(ctx, tenantID, domain.OwnerTypeProcessingOffice, officeID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load processing office contract", slog.String("processing_office_id", officeID))
		return nil, err
	}
	return office, nil
}

func (s *processingOfficeService) ListProcessingOffices(ctx context.Context, tenantID string, params dto.ListParams) (dto.Page[domain.ProcessingOffice], error) {
	repoParams, err := toRepoListParams(params)
	if err != nil {
		return dto.Page[domain.ProcessingOffice]{}, err
	}
	offices, err := s.officeRepo.ListProcessingOffices(ctx, tenantID, repoParams)
	if err != nil {
		s.LogError(ctx, err, "Failed to list processing offices")
		return dto.Page[domain.ProcessingOffice]{}, wrapUnexpected(err, "failed to list processing offices")
	}
	return dto.Page[domain.ProcessingOffice]{
		Items: offices,
		NextToken: pagination.NextToken(offices, repoParams.Limit, func(o domain.ProcessingOffice) (time.Time, string) {
			return o.CreatedAt, o.ProcessingOfficeID
		}),
	}, nil
}

func (s *processingOfficeService) GetProcessingOfficeContractURL(ctx context.Context, tenantID, officeID string) (string, time.Time, error) {
	if _, err := s.officeRepo.FindProcessingOfficeByID(ctx, tenantID, officeID); err != nil {
		return "", time.Time{}, wrapUnexpected(err, "failed to get processing office")
	}
	return s.contracts.downloadURL(ctx, tenantID, domain.OwnerTypeProcessingOffice, officeID)
}
