package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	TxManager            TransactionManager
	TenantRepo           TenantRepositoryFacade
	UserRepo             UserRepositoryFacade
	BranchRepo           BranchRepositoryFacade
	AssociateRepo        AssociateRepositoryFacade
	ProcessingOfficeRepo ProcessingOfficeRepositoryFacade
	AttachmentRepo       AttachmentRepositoryFacade
	PipelineRepo         PipelineRepositoryFacade
	InstitutionRepo      InstitutionRepositoryFacade
}
