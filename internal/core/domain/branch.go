package domain

// Branch is a branch office, owned by a login principal with the branch-office role.
type Branch struct {
	BranchID string `json:"branchID"`
	TenantID string `json:"tenantID"`
	UserID   string `json:"userID"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ContactDetails
	IsActive bool `json:"isActive"`
	AuditFields
}
