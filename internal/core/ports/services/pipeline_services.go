package services

import (
	"context"

	"github.com/SscSPs/consultancy_admin/internal/core/domain"
	"github.com/SscSPs/consultancy_admin/internal/dto"
)

// RepCountrySvc manages rep countries.
type RepCountrySvc interface {
	// CreateRepCountry creates a rep country and seeds its protected initial status.
	CreateRepCountry(ctx context.Context, tenantID, actorID string, req dto.CreateRepCountryRequest) (*domain.RepCountry, error)
	ListRepCountries(ctx context.Context, tenantID string) ([]domain.RepCountry, error)

	// GetRepCountry returns the rep country with its ordered statuses and sub-statuses.
	GetRepCountry(ctx context.Context, tenantID, repCountryID string) (*domain.RepCountry, error)
}

// StatusSvc manages the ordered statuses of a rep country.
type StatusSvc interface {
	AddStatus(ctx context.Context, tenantID, actorID, repCountryID string, req dto.AddStatusRequest) (*domain.RepCountryStatus, error)

	// ToggleStatusActive persists isActive and returns the refreshed status.
	// Protected statuses are rejected with a field error and left unchanged.
	ToggleStatusActive(ctx context.Context, tenantID, actorID, repCountryID, statusID string, isActive bool) (*domain.RepCountryStatus, error)
	UpdateStatusNotes(ctx context.Context, tenantID, actorID, repCountryID, statusID string, req dto.UpdateStatusNotesRequest) (*domain.RepCountryStatus, error)

	// SaveStatusOrder applies each (name, order) pair. Names that match no status are skipped.
	SaveStatusOrder(ctx context.Context, tenantID, actorID, repCountryID string, req dto.SaveStatusOrderRequest) error
}

// SubStatusSvc manages the sub-statuses under a status.
type SubStatusSvc interface {
	AddSubStatus(ctx context.Context, tenantID, actorID, repCountryID, statusID string, req dto.AddSubStatusRequest) (*domain.SubStatus, error)
	EditSubStatus(ctx context.Context, tenantID, actorID, repCountryID, statusID, subStatusID string, req dto.EditSubStatusRequest) (*domain.SubStatus, error)
	ToggleSubStatusActive(ctx context.Context, tenantID, actorID, repCountryID, statusID, subStatusID string, isActive bool) (*domain.SubStatus, error)
}

// PipelineSvcFacade combines the status-pipeline service interfaces
type PipelineSvcFacade interface {
	RepCountrySvc
	StatusSvc
	SubStatusSvc
}
