package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers and middleware.
type ServiceContainer struct {
	Tenant             TenantSvcFacade
	User               UserSvcFacade
	TokenService       TokenSvcFacade
	GoogleOAuthHandler GoogleOAuthHandlerSvcFacade
	Branch             BranchSvcFacade
	Associate          AssociateSvcFacade
	ProcessingOffice   ProcessingOfficeSvcFacade
	Pipeline           PipelineSvcFacade
	Institution        InstitutionSvcFacade
}
