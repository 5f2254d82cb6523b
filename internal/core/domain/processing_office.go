package domain

// ProcessingOffice handles application processing for the tenant.
type ProcessingOffice struct {
	ProcessingOfficeID string `json:"processingOfficeID"`
	TenantID           string `json:"tenantID"`
	UserID             string `json:"userID"`
	Name               string `json:"name"`
	Email              string `json:"email"`
	ContactDetails
	IsActive bool        `json:"isActive"`
	Contract *Attachment `json:"contract,omitempty"`
	AuditFields
}
