package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/SscSPs/consultancy_admin/internal/apperrors"
	"github.com/SscSPs/consultancy_admin/internal/core/domain"
	portsrepo "github.com/SscSPs/consultancy_admin/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/consultancy_admin/internal/core/ports/services"
	"github.com/SscSPs/consultancy_admin/internal/dto"
	"github.com/google/uuid"
)

const protectedStatusMessage = "This status is protected and its active flag cannot be changed."

type pipelineService struct {
	BaseService
	txManager    portsrepo.TransactionManager
	pipelineRepo portsrepo.PipelineRepositoryFacade
}

// NewPipelineService creates the status-pipeline service.
func NewPipelineService(txManager portsrepo.TransactionManager, pipelineRepo portsrepo.PipelineRepositoryFacade) portssvc.PipelineSvcFacade {
	return &pipelineService{
		txManager:    txManager,
		pipelineRepo: pipelineRepo,
	}
}

var _ portssvc.PipelineSvcFacade = (*pipelineService)(nil)

// --- RepCountry ---

func (s *pipelineService) CreateRepCountry(ctx context.Context, tenantID, actorID string, req dto.CreateRepCountryRequest) (*domain.RepCountry, error) {
	ts := now()
	repCountry := domain.RepCountry{
		RepCountryID: uuid.NewString(),
		TenantID:     tenantID,
		CountryName:  strings.TrimSpace(req.CountryName),
		Description:  req.Description,
		IsActive:     true,
		AuditFields:  domain.NewAuditFields(actorID, ts),
	}
	initial := domain.RepCountryStatus{
		StatusID:     uuid.NewString(),
		RepCountryID: repCountry.RepCountryID,
		StatusName:   domain.DefaultStatusName,
		Order:        domain.NextOrder(0),
		IsActive:     true,
		IsProtected:  true,
		AuditFields:  domain.NewAuditFields(actorID, ts),
	}

	err := s.txManager.WithinTransaction(ctx, func(txCtx context.Context) error {
		if err := s.pipelineRepo.SaveRepCountry(txCtx, repCountry); err != nil {
			if errors.Is(err, apperrors.ErrDuplicate) {
				return apperrors.NewFieldError("countryName", "This country already has a rep country.")
			}
			return err
		}
		return s.pipelineRepo.SaveStatus(txCtx, initial)
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to create rep country", slog.Any("payload", req))
		}
		return nil, wrapUnexpected(err, "failed to create rep country")
	}

	repCountry.Statuses = []domain.RepCountryStatus{initial}
	s.LogInfo(ctx, "Rep country created", slog.String("rep_country_id", repCountry.RepCountryID))
	return &repCountry, nil
}

func (s *pipelineService) ListRepCountries(ctx context.Context, tenantID string) ([]domain.RepCountry, error) {
	repCountries, err := s.pipelineRepo.ListRepCountries(ctx, tenantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list rep countries")
		return nil, wrapUnexpected(err, "failed to list rep countries")
	}
	return repCountries, nil
}

func (s *pipelineService) GetRepCountry(ctx context.Context, tenantID, repCountryID string) (*domain.RepCountry, error) {
	repCountry, err := s.requireRepCountry(ctx, tenantID, repCountryID)
	if err != nil {
		return nil, err
	}

	statuses, err := s.pipelineRepo.ListStatuses(ctx, repCountryID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list statuses", slog.String("rep_country_id", repCountryID))
		return nil, wrapUnexpected(err, "failed to list statuses")
	}
	if len(statuses) > 0 {
		ids := make([]string, len(statuses))
		for i := range statuses {
			ids[i] = statuses[i].StatusID
		}
		subStatuses, err := s.pipelineRepo.ListSubStatuses(ctx, ids)
		if err != nil {
			s.LogError(ctx, err, "Failed to list sub-statuses", slog.String("rep_country_id", repCountryID))
			return nil, wrapUnexpected(err, "failed to list sub-statuses")
		}
		byStatus := make(map[string][]domain.SubStatus, len(statuses))
		for _, sub := range subStatuses {
			byStatus[sub.RepCountryStatusID] = append(byStatus[sub.RepCountryStatusID], sub)
		}
		for i := range statuses {
			statuses[i].SubStatuses = byStatus[statuses[i].StatusID]
		}
	}

	repCountry.Statuses = statuses
	return repCountry, nil
}

// --- Statuses ---

func (s *pipelineService) AddStatus(ctx context.Context, tenantID, actorID, repCountryID string, req dto.AddStatusRequest) (*domain.RepCountryStatus, error) {
	if _, err := s.requireRepCountry(ctx, tenantID, repCountryID); err != nil {
		return nil, err
	}

	maxOrder, err := s.pipelineRepo.MaxStatusOrder(ctx, repCountryID)
	if err != nil {
		s.logPersistenceFailure(ctx, err, "Failed to read status order", repCountryID, req)
		return nil, wrapUnexpected(err, "failed to add status")
	}

	ts := now()
	status := domain.RepCountryStatus{
		StatusID:     uuid.NewString(),
		RepCountryID: repCountryID,
		StatusName:   req.StatusName,
		Order:        domain.NextOrder(maxOrder),
		IsActive:     true,
		Notes:        req.Notes,
		AuditFields:  domain.NewAuditFields(actorID, ts),
	}
	if err := s.pipelineRepo.SaveStatus(ctx, status); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewFieldError("statusName", "A status with this name already exists.")
		}
		s.logPersistenceFailure(ctx, err, "Failed to add status", repCountryID, req)
		return nil, wrapUnexpected(err, "failed to add status")
	}
	return &status, nil
}

func (s *pipelineService) ToggleStatusActive(ctx context.Context, tenantID, actorID, repCountryID, statusID string, isActive bool) (*domain.RepCountryStatus, error) {
	status, err := s.requireStatus(ctx, tenantID, repCountryID, statusID)
	if err != nil {
		return nil, err
	}
	if status.IsProtected {
		return nil, apperrors.NewFieldError("isActive", protectedStatusMessage)
	}

	if err := s.pipelineRepo.UpdateStatusActive(ctx, repCountryID, statusID, isActive, actorID); err != nil {
		s.logPersistenceFailure(ctx, err, "Failed to toggle status", repCountryID, map[string]any{"status_id": statusID, "is_active": isActive})
		return nil, wrapUnexpected(err, "failed to toggle status")
	}
	return s.refreshStatus(ctx, repCountryID, statusID)
}

func (s *pipelineService) UpdateStatusNotes(ctx context.Context, tenantID, actorID, repCountryID, statusID string, req dto.UpdateStatusNotesRequest) (*domain.RepCountryStatus, error) {
	if _, err := s.requireStatus(ctx, tenantID, repCountryID, statusID); err != nil {
		return nil, err
	}
	if err := s.pipelineRepo.UpdateStatusNotes(ctx, repCountryID, statusID, req.Notes, actorID); err != nil {
		s.logPersistenceFailure(ctx, err, "Failed to update status notes", repCountryID, req)
		return nil, wrapUnexpected(err, "failed to update status notes")
	}
	return s.refreshStatus(ctx, repCountryID, statusID)
}

// SaveStatusOrder applies the whole batch in one transaction, so a failure leaves the previous order intact.
func (s *pipelineService) SaveStatusOrder(ctx context.Context, tenantID, actorID, repCountryID string, req dto.SaveStatusOrderRequest) error {
	if _, err := s.requireRepCountry(ctx, tenantID, repCountryID); err != nil {
		return err
	}

	orders := req.ToStatusOrders()
	err := s.txManager.WithinTransaction(ctx, func(txCtx context.Context) error {
		for _, item := range orders {
			affected, err := s.pipelineRepo.UpdateStatusOrderByName(txCtx, repCountryID, item.StatusName, item.Order, actorID)
			if err != nil {
				return err
			}
			if affected == 0 {
				s.LogDebug(ctx, "Status order entry matched no status", slog.String("rep_country_id", repCountryID), slog.String("status_name", item.StatusName))
			}
		}
		return nil
	})
	if err != nil {
		s.logPersistenceFailure(ctx, err, "Failed to save status order", repCountryID, req)
		return wrapUnexpected(err, "failed to save status order")
	}
	return nil
}

// --- Sub-statuses ---

func (s *pipelineService) AddSubStatus(ctx context.Context, tenantID, actorID, repCountryID, statusID string, req dto.AddSubStatusRequest) (*domain.SubStatus, error) {
	if _, err := s.requireStatus(ctx, tenantID, repCountryID, statusID); err != nil {
		return nil, err
	}

	maxOrder, err := s.pipelineRepo.MaxSubStatusOrder(ctx, statusID)
	if err != nil {
		s.logPersistenceFailure(ctx, err, "Failed to read sub-status order", repCountryID, req)
		return nil, wrapUnexpected(err, "failed to add sub-status")
	}

	sub := domain.SubStatus{
		SubStatusID:        uuid.NewString(),
		RepCountryStatusID: statusID,
		Name:               req.Name,
		Order:              domain.NextOrder(maxOrder),
		IsActive:           true,
		Description:        req.Description,
		AuditFields:        domain.NewAuditFields(actorID, now()),
	}
	if err := s.pipelineRepo.SaveSubStatus(ctx, sub); err != nil {
		s.logPersistenceFailure(ctx, err, "Failed to add sub-status", repCountryID, req)
		return nil, wrapUnexpected(err, "failed to add sub-status")
	}
	return &sub, nil
}

// EditSubStatus renames a sub-status. Order and active flag are left as they are.
func (s *pipelineService) EditSubStatus(ctx context.Context, tenantID, actorID, repCountryID, statusID, subStatusID string, req dto.EditSubStatusRequest) (*domain.SubStatus, error) {
	if _, err := s.requireSubStatus(ctx, tenantID, repCountryID, statusID, subStatusID); err != nil {
		return nil, err
	}
	if err := s.pipelineRepo.UpdateSubStatusName(ctx, statusID, subStatusID, req.Name, actorID); err != nil {
		s.logPersistenceFailure(ctx, err, "Failed to edit sub-status", repCountryID, req)
		return nil, wrapUnexpected(err, "failed to edit sub-status")
	}
	return s.refreshSubStatus(ctx, statusID, subStatusID)
}

func (s *pipelineService) ToggleSubStatusActive(ctx context.Context, tenantID, actorID, repCountryID, statusID, subStatusID string, isActive bool) (*domain.SubStatus, error) {
	if _, err := s.requireSubStatus(ctx, tenantID, repCountryID, statusID, subStatusID); err != nil {
		return nil, err
	}
	if err := s.pipelineRepo.UpdateSubStatusActive(ctx, statusID, subStatusID, isActive, actorID); err != nil {
		s.logPersistenceFailure(ctx, err, "Failed to toggle sub-status", repCountryID, map[string]any{"sub_status_id": subStatusID, "is_active": isActive})
		return nil, wrapUnexpected(err, "failed to toggle sub-status")
	}
	return s.refreshSubStatus(ctx, statusID, subStatusID)
}

// --- scoping helpers ---

func (s *pipelineService) requireRepCountry(ctx context.Context, tenantID, repCountryID string) (*domain.RepCountry, error) {
	repCountry, err := s.pipelineRepo.FindRepCountryByID(ctx, tenantID, repCountryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load rep country", slog.String("rep_country_id", repCountryID))
		}
		return nil, wrapUnexpected(err, "failed to load rep country")
	}
	return repCountry, nil
}

func (s *pipelineService) requireStatus(ctx context.Context, tenantID, repCountryID, statusID string) (*domain.RepCountryStatus, error) {
	if _, err := s.requireRepCountry(ctx, tenantID, repCountryID); err != nil {
		return nil, err
	}
	status, err := s.pipelineRepo.FindStatusByID(ctx, repCountryID, statusID)
	if err != nil {
		return nil, wrapUnexpected(err, "failed to load status")
	}
	return status, nil
}

func (s *pipelineService) requireSubStatus(ctx context.Context, tenantID, repCountryID, statusID, subStatusID string) (*domain.SubStatus, error) {
	if _, err := s.requireStatus(ctx, tenantID, repCountryID, statusID); err != nil {
		return nil, err
	}
	sub, err := s.pipelineRepo.FindSubStatusByID(ctx, statusID, subStatusID)
	if err != nil {
		return nil, wrapUnexpected(err, "failed to load sub-status")
	}
	return sub, nil
}

func (s *pipelineService) refreshStatus(ctx context.Context, repCountryID, statusID string) (*domain.RepCountryStatus, error) {
	status, err := s.pipelineRepo.FindStatusByID(ctx, repCountryID, statusID)
	if err != nil {
		return nil, wrapUnexpected(err, "failed to reload status")
	}
	return status, nil
}

func (s *pipelineService) refreshSubStatus(ctx context.Context, statusID, subStatusID string) (*domain.SubStatus, error) {
	sub, err := s.pipelineRepo.FindSubStatusByID(ctx, statusID, subStatusID)
	if err != nil {
		return nil, wrapUnexpected(err, "failed to reload sub-status")
	}
	return sub, nil
}

// logPersistenceFailure records the parent rep country and the raw request before the error is re-raised.
func (s *pipelineService) logPersistenceFailure(ctx context.Context, err error, msg, repCountryID string, payload any) {
	s.LogError(ctx, err, msg,
		slog.String("rep_country_id", repCountryID),
		slog.Any("payload", payload),
	)
}
