package services

import (
	"context"
	"time"

	"github.com/SscSPs/consultancy_admin/internal/core/domain"
	"github.com/SscSPs/consultancy_admin/internal/dto"
)

// BranchSvcFacade provisions branches together with their branch-office principal.
type BranchSvcFacade interface {
	CreateBranch(ctx context.Context, tenantID, actorID string, req dto.ProvisionRequest) (*domain.Branch, error)
	UpdateBranch(ctx context.Context, tenantID, actorID, branchID string, req dto.UpdateProvisionRequest) (*domain.Branch, error)
	GetBranch(ctx context.Context, tenantID, branchID string) (*domain.Branch, error)

	// GetBranchForUser returns the branch owned by a branch-office principal.
	GetBranchForUser(ctx context.Context, tenantID, userID string) (*domain.Branch, error)
	ListBranches(ctx context.Context, tenantID string, params dto.ListParams) (dto.Page[domain.Branch], error)
}

// AssociateSvcFacade provisions associates under a branch. Contract is optional on every write.
type AssociateSvcFacade interface {
	CreateAssociate(ctx context.Context, tenantID, actorID, branchID string, req dto.ProvisionRequest, contract *dto.FileUpload) (*domain.Associate, error)
	UpdateAssociate(ctx context.Context, tenantID, actorID, branchID, associateID string, req dto.UpdateProvisionRequest, contract *dto.FileUpload) (*domain.Associate, error)
	GetAssociate(ctx context.Context, tenantID, branchID, associateID string) (*domain.Associate, error)
	ListAssociates(ctx context.Context, tenantID, branchID string, params dto.ListParams) (dto.Page[domain.Associate], error)

	// GetAssociateContractURL returns a presigned download link and its expiry.
	GetAssociateContractURL(ctx context.Context, tenantID, branchID, associateID string) (string, time.Time, error)
}

// ProcessingOfficeSvcFacade provisions processing offices.
type ProcessingOfficeSvcFacade interface {
	CreateProcessingOffice(ctx context.Context, tenantID, actorID string, req dto.ProvisionRequest, contract *dto.FileUpload) (*domain.ProcessingOffice, error)
	UpdateProcessingOffice(ctx context.Context, tenantID, actorID, officeID string, req dto.UpdateProvisionRequest, contract *dto.FileUpload) (*domain.ProcessingOffice, error)
	GetProcessingOffice(ctx context.Context, tenantID, officeID string) (*domain.ProcessingOffice, error)
	ListProcessingOffices(ctx context.Context, tenantID string, params dto.ListParams) (dto.Page[domain.ProcessingOffice], error)
	GetProcessingOfficeContractURL(ctx context.Context, tenantID, officeID string) (string, time.Time, error)
}
