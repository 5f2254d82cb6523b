package pgsql

import (
	portsrepo "github.com/SscSPs/consultancy_admin/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider builds every pgx repository over a shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TxManager:            newPgxTransactionManager(dbPool),
		TenantRepo:           newPgxTenantRepository(dbPool),
		UserRepo:             newPgxUserRepository(dbPool),
		BranchRepo:           newPgxBranchRepository(dbPool),
		AssociateRepo:        newPgxAssociateRepository(dbPool),
		ProcessingOfficeRepo: newPgxProcessingOfficeRepository(dbPool),
		AttachmentRepo:       newPgxAttachmentRepository(dbPool),
		PipelineRepo:         newPgxPipelineRepository(dbPool),
		InstitutionRepo:      newPgxInstitutionRepository(dbPool),
	}
}
