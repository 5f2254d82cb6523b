package domain

// Associate is a partner agent attached to a branch.
type Associate struct {
	AssociateID string `json:"associateID"`
	TenantID    string `json:"tenantID"`
	BranchID    string `json:"branchID"`
	UserID      string `json:"userID"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	ContactDetails
	IsActive bool        `json:"isActive"`
	Contract *Attachment `json:"contract,omitempty"`
	AuditFields
}
