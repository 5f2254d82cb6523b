package repositories

import (
	"context"

	"github.com/SscSPs/consultancy_admin/internal/core/domain"
)

// RepCountryRepository defines persistence for rep countries.
type RepCountryRepository interface {
	SaveRepCountry(ctx context.Context, repCountry domain.RepCountry) error
	FindRepCountryByID(ctx context.Context, tenantID, repCountryID string) (*domain.RepCountry, error)
	ListRepCountries(ctx context.Context, tenantID string) ([]domain.RepCountry, error)
}

// RepCountryStatusRepository defines persistence for pipeline statuses.
type RepCountryStatusRepository interface {
	SaveStatus(ctx context.Context, status domain.RepCountryStatus) error
	FindStatusByID(ctx context.Context, repCountryID, statusID string) (*domain.RepCountryStatus, error)
	ListStatuses(ctx context.Context, repCountryID string) ([]domain.RepCountryStatus, error)
	MaxStatusOrder(ctx context.Context, repCountryID string) (int, error)

	// UpdateStatusActive sets the active flag of a single status.
	UpdateStatusActive(ctx context.Context, repCountryID, statusID string, isActive bool, updatedBy string) error

	// UpdateStatusNotes replaces the free-text notes.
	UpdateStatusNotes(ctx context.Context, repCountryID, statusID string, notes *string, updatedBy string) error

	// UpdateStatusOrderByName sets the order of the named status and reports rows affected.
	UpdateStatusOrderByName(ctx context.Context, repCountryID, statusName string, order int, updatedBy string) (int64, error)
}

// SubStatusRepository defines persistence for sub-statuses.
type SubStatusRepository interface {
	SaveSubStatus(ctx context.Context, subStatus domain.SubStatus) error
	FindSubStatusByID(ctx context.Context, statusID, subStatusID string) (*domain.SubStatus, error)
	ListSubStatuses(ctx context.Context, statusIDs []string) ([]domain.SubStatus, error)

	// MaxSubStatusOrder returns the highest order under statusID, or 0 when there are none.
	MaxSubStatusOrder(ctx context.Context, statusID string) (int, error)
	UpdateSubStatusName(ctx context.Context, statusID, subStatusID, name, updatedBy string) error
	UpdateSubStatusActive(ctx context.Context, statusID, subStatusID string, isActive bool, updatedBy string) error
}

// PipelineRepositoryFacade combines the pipeline repositories.
type PipelineRepositoryFacade interface {
	RepCountryRepository
	RepCountryStatusRepository
	SubStatusRepository
}
