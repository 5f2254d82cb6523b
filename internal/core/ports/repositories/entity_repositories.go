package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/consultancy_admin/internal/core/domain"
)

// ListParams drives keyset pagination: rows strictly after (AfterCreatedAt, AfterID).
type ListParams struct {
	Limit          int
	AfterCreatedAt *time.Time
	AfterID        string
}

// BranchRepositoryFacade defines persistence for branches.
type BranchRepositoryFacade interface {
	SaveBranch(ctx context.Context, branch domain.Branch) error
	UpdateBranch(ctx context.Context, branch domain.Branch) error
	FindBranchByID(ctx context.Context, tenantID, branchID string) (*domain.Branch, error)
	FindBranchByUserID(ctx context.Context, tenantID, userID string) (*domain.Branch, error)
	ListBranches(ctx context.Context, tenantID string, params ListParams) ([]domain.Branch, error)
}

// AssociateRepositoryFacade defines persistence for associates.
type AssociateRepositoryFacade interface {
	SaveAssociate(ctx context.Context, associate domain.Associate) error
	UpdateAssociate(ctx context.Context, associate domain.Associate) error
	FindAssociateByID(ctx context.Context, tenantID, associateID string) (*domain.Associate, error)
	ListAssociatesByBranch(ctx context.Context, tenantID, branchID string, params ListParams) ([]domain.Associate, error)
}

// ProcessingOfficeRepositoryFacade defines persistence for processing offices.
type ProcessingOfficeRepositoryFacade interface {
	SaveProcessingOffice(ctx context.Context, office domain.ProcessingOffice) error
	UpdateProcessingOffice(ctx context.Context, office domain.ProcessingOffice) error
	FindProcessingOfficeByID(ctx context.Context, tenantID, officeID string) (*domain.ProcessingOffice, error)
	ListProcessingOffices(ctx context.Context, tenantID string, params ListParams) ([]domain.ProcessingOffice, error)
}

// AttachmentRepositoryFacade defines persistence for attachment metadata.
type AttachmentRepositoryFacade interface {
	SaveAttachment(ctx context.Context, attachment domain.Attachment) error
	FindAttachment(ctx context.Context, tenantID, ownerType, ownerID, collection string) (*domain.Attachment, error)
	DeleteAttachment(ctx context.Context, tenantID, attachmentID string) error
}
